// Package report assembles converted notebook fragments into a single
// self-contained HTML document with client-side tab navigation.
package report

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"nbtabs/models"
)

// Fragment is the HTML produced for one notebook plus its tab name. The
// content is inserted verbatim: it comes from the trusted nbconvert
// process, optionally after RTL processing.
type Fragment struct {
	Name    string
	Content template.HTML
}

// TopicGroup is one top-level tab holding a nested tab set.
type TopicGroup struct {
	Name      string
	Fragments []Fragment
}

// Assembler renders the three page layouts from compiled templates.
type Assembler struct {
	single *template.Template
	flat   *template.Template
	nested *template.Template
}

func NewAssembler() *Assembler {
	return &Assembler{
		single: template.Must(template.New("single").Parse(singleTemplate)),
		flat:   template.Must(template.New("flat").Parse(flatTemplate)),
		nested: template.Must(template.New("nested").Parse(nestedTemplate)),
	}
}

type pageData struct {
	Title       string
	GeneratedAt string
	Single      Fragment
	Tabs        []flatTab
	Topics      []nestedTopic
}

type flatTab struct {
	ID      string
	Name    string
	Active  bool
	Content template.HTML
}

type nestedTopic struct {
	ID     string
	Name   string
	Active bool
	Subs   []flatTab
}

// RenderSingle produces the no-tabs layout for one fragment.
func (a *Assembler) RenderSingle(title string, run models.RunContext, frag Fragment) (string, error) {
	return render(a.single, pageData{
		Title:       title,
		GeneratedAt: run.Timestamp,
		Single:      frag,
	})
}

// RenderFlat produces one tab per fragment; the first tab is active.
func (a *Assembler) RenderFlat(title string, run models.RunContext, frags []Fragment) (string, error) {
	data := pageData{Title: title, GeneratedAt: run.Timestamp}
	for i, frag := range frags {
		data.Tabs = append(data.Tabs, flatTab{
			ID:      fmt.Sprintf("tab%d", i),
			Name:    frag.Name,
			Active:  i == 0,
			Content: frag.Content,
		})
	}
	return render(a.flat, data)
}

// RenderNested produces one top-level tab per topic with a nested tab set
// per fragment; the first tab and each topic's first sub-tab are active.
func (a *Assembler) RenderNested(title string, run models.RunContext, topics []TopicGroup) (string, error) {
	data := pageData{Title: title, GeneratedAt: run.Timestamp}
	for i, topic := range topics {
		nt := nestedTopic{
			ID:     fmt.Sprintf("topic%d", i),
			Name:   topic.Name,
			Active: i == 0,
		}
		for j, frag := range topic.Fragments {
			nt.Subs = append(nt.Subs, flatTab{
				ID:      fmt.Sprintf("topic%d_sub%d", i, j),
				Name:    frag.Name,
				Active:  j == 0,
				Content: frag.Content,
			})
		}
		data.Topics = append(data.Topics, nt)
	}
	return render(a.nested, data)
}

func render(tmpl *template.Template, data pageData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}

// FileName derives the final report name from the title and run timestamp.
func FileName(title string, run models.RunContext) string {
	return strings.ReplaceAll(title, " ", "_") + "_" + run.Timestamp + ".html"
}

// Path returns the full report path under the run's output folder.
func Path(title string, run models.RunContext) string {
	return filepath.Join(run.OutputDir, FileName(title, run))
}
