// Package inspect derives display metadata from converted notebook HTML:
// a tab title, a word count, and the dominant content language.
package inspect

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// Metadata describes one converted notebook fragment.
type Metadata struct {
	Title     string
	WordCount int
	Language  string
}

// Inspector extracts fragment metadata. Building the language detector is
// comparatively expensive, so one Inspector is shared across a run.
type Inspector struct {
	detector lingua.LanguageDetector
}

func NewInspector() *Inspector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Hebrew, lingua.Arabic).
		Build()
	return &Inspector{detector: detector}
}

// Inspect reads a full nbconvert HTML document and returns its metadata.
// The title falls back from the document title to the first heading to the
// provided file-derived name.
func (i *Inspector) Inspect(html, fallbackTitle string) Metadata {
	meta := Metadata{Title: fallbackTitle, Language: "unknown"}

	text := ""
	parsedURL, _ := url.Parse("http://localhost/notebook.html")
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err == nil {
		if title := strings.TrimSpace(article.Title); title != "" {
			meta.Title = title
		}
		text = article.TextContent
	}

	doc, docErr := goquery.NewDocumentFromReader(strings.NewReader(html))
	if docErr == nil {
		if meta.Title == fallbackTitle {
			if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
				meta.Title = h1
			}
		}
		if strings.TrimSpace(text) == "" {
			text = doc.Text()
		}
	}

	meta.WordCount = len(strings.Fields(text))
	if lang, ok := i.detector.DetectLanguageOf(text); ok {
		meta.Language = strings.ToLower(lang.String())
	}
	return meta
}
