package report

import (
	"html/template"
	"strings"
	"testing"

	"nbtabs/models"
)

var testRun = models.RunContext{Timestamp: "2025_03_14_09_30_00", OutputDir: "out"}

func TestRenderSingle(t *testing.T) {
	a := NewAssembler()
	out, err := a.RenderSingle("My Report", testRun, Fragment{
		Name:    "Only",
		Content: template.HTML("<p>hello</p>"),
	})
	if err != nil {
		t.Fatalf("RenderSingle() error = %v", err)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Error("fragment content missing from single layout")
	}
	if !strings.Contains(out, "My Report") {
		t.Error("title missing from single layout")
	}
	if strings.Contains(out, `role="tablist"`) {
		t.Error("single layout must not contain tab navigation")
	}
}

func TestRenderFlat_ThreeTabsFirstActive(t *testing.T) {
	a := NewAssembler()
	frags := []Fragment{
		{Name: "Alpha", Content: template.HTML("<p>a</p>")},
		{Name: "Beta", Content: template.HTML("<p>b</p>")},
		{Name: "Gamma", Content: template.HTML("<p>c</p>")},
	}
	out, err := a.RenderFlat("Report", testRun, frags)
	if err != nil {
		t.Fatalf("RenderFlat() error = %v", err)
	}

	if n := strings.Count(out, `class="nav-item"`); n != 3 {
		t.Errorf("nav entry count = %d, want 3", n)
	}
	if n := strings.Count(out, "tab-pane fade"); n != 3 {
		t.Errorf("content pane count = %d, want 3", n)
	}
	if n := strings.Count(out, "nav-link active"); n != 1 {
		t.Errorf("active nav link count = %d, want 1", n)
	}
	if n := strings.Count(out, "show active"); n != 1 {
		t.Errorf("active pane count = %d, want 1", n)
	}
	// First tab is the active one.
	if !strings.Contains(out, `class="nav-link active" id="tab0-link"`) {
		t.Error("tab0 is not the active tab")
	}
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(out, ">"+name+"</a>") {
			t.Errorf("display name %q missing", name)
		}
	}
}

func TestRenderFlat_FragmentContentNotEscaped(t *testing.T) {
	a := NewAssembler()
	out, err := a.RenderFlat("R", testRun, []Fragment{
		{Name: "N", Content: template.HTML(`<span class="rtl-text" dir="rtl">שלום</span>`)},
	})
	if err != nil {
		t.Fatalf("RenderFlat() error = %v", err)
	}
	if !strings.Contains(out, `<span class="rtl-text" dir="rtl">שלום</span>`) {
		t.Error("trusted fragment HTML was escaped")
	}
}

func TestRenderNested_TopicsAndSubTabs(t *testing.T) {
	a := NewAssembler()
	topics := []TopicGroup{
		{Name: "Main", Fragments: []Fragment{
			{Name: "Intro", Content: template.HTML("<p>i</p>")},
		}},
		{Name: "Deep Dive", Fragments: []Fragment{
			{Name: "Part One", Content: template.HTML("<p>1</p>")},
			{Name: "Part Two", Content: template.HTML("<p>2</p>")},
		}},
	}
	out, err := a.RenderNested("Report", testRun, topics)
	if err != nil {
		t.Fatalf("RenderNested() error = %v", err)
	}

	if !strings.Contains(out, ">Main</a>") || !strings.Contains(out, ">Deep Dive</a>") {
		t.Error("topic names missing from top-level tabs")
	}
	if n := strings.Count(out, "nav nav-pills nav-justified"); n != 2 {
		t.Errorf("nested tab set count = %d, want 2", n)
	}
	// One active top-level tab, one active sub-tab per topic.
	if n := strings.Count(out, "nav-link active"); n != 3 {
		t.Errorf("active link count = %d, want 3", n)
	}
	if !strings.Contains(out, `id="topic0-tab"`) || !strings.Contains(out, `id="topic1_sub1"`) {
		t.Error("expected stable topic/sub-tab ids")
	}
}

func TestFileName(t *testing.T) {
	got := FileName("My Great Report", testRun)
	want := "My_Great_Report_2025_03_14_09_30_00.html"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}
