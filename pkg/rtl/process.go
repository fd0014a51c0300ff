package rtl

import (
	"regexp"
	"strings"
)

// Target element kinds, processed as successive passes in this order.
// Each tag is matched independently, non-greedily up to the nearest
// closing tag of the same kind, across line breaks.
var targetTags = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "th", "pre"}

var tagRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(targetTags))
	for _, tag := range targetTags {
		res[tag] = regexp.MustCompile(`(?s)<` + tag + `(?:\s[^>]*)?>.*?</` + tag + `>`)
	}
	return res
}()

// nbconvert renders markdown cells inside this container; it is processed
// like the tag targets regardless of the rest of its class list.
var renderedMarkdownRe = regexp.MustCompile(`(?s)<div[^>]*class="[^"]*jp-RenderedMarkdown[^"]*"[^>]*>.*?</div>`)

// Structural containers that either already carry correct directionality
// or must not be altered. Matched as class-token prefixes.
var skipClasses = []string{"jp-OutputArea", "jp-Cell", "notebook-content-wrapper"}

// Framework-internal class prefix. Tag-level passes skip any element
// carrying such a class; the rendered-markdown container pass cannot,
// since its own marker class starts with it.
const frameworkClassPrefix = "jp-"

var (
	dirAttrRe   = regexp.MustCompile(`\sdir\s*=`)
	classAttrRe = regexp.MustCompile(`class\s*=\s*["']([^"']*)["']`)
)

// Processor applies RTL segment wrapping to the inner content of target
// elements in an HTML fragment. It is intentionally a self-contained text
// transform so a parse-tree implementation could replace it without
// touching callers.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Process returns fragment with RTL runs inside target elements wrapped in
// marker spans. Fragments with no RTL content are returned unchanged.
func (p *Processor) Process(fragment string) string {
	if !ContainsRTL(fragment) {
		return fragment
	}
	for _, tag := range targetTags {
		fragment = processMatches(fragment, tagRes[tag], "</"+tag+">", true)
	}
	return processMatches(fragment, renderedMarkdownRe, "</div>", false)
}

// processMatches rewrites each element occurrence matched by re, leaving
// the opening and closing tags untouched and skipping occurrences with an
// explicit direction or a structural class. skipFramework additionally
// skips any framework-internal class.
func processMatches(fragment string, re *regexp.Regexp, closing string, skipFramework bool) string {
	return re.ReplaceAllStringFunc(fragment, func(m string) string {
		gt := strings.Index(m, ">")
		if gt < 0 {
			return m
		}
		open := m[:gt+1]
		if skipElement(open, skipFramework) {
			return m
		}
		inner := m[gt+1 : len(m)-len(closing)]
		if !ContainsRTL(inner) {
			return m
		}
		return open + wrapOutsideMarkers(inner) + closing
	})
}

// skipElement reports whether an opening tag declares its own direction or
// marks a structural or framework-internal element.
func skipElement(openTag string, skipFramework bool) bool {
	if dirAttrRe.MatchString(openTag) {
		return true
	}
	for _, tok := range classTokens(openTag) {
		if skipFramework && strings.HasPrefix(tok, frameworkClassPrefix) {
			return true
		}
		for _, class := range skipClasses {
			if strings.HasPrefix(tok, class) {
				return true
			}
		}
	}
	return false
}

func classTokens(openTag string) []string {
	m := classAttrRe.FindStringSubmatch(openTag)
	if m == nil {
		return nil
	}
	return strings.Fields(m[1])
}
