package models

import (
	"testing"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("notebook_dir: ./notebooks\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OutputFolder != DefaultOutputFolder {
		t.Errorf("OutputFolder = %q, want default %q", cfg.OutputFolder, DefaultOutputFolder)
	}
	if cfg.ReportTitle != DefaultReportTitle {
		t.Errorf("ReportTitle = %q, want default %q", cfg.ReportTitle, DefaultReportTitle)
	}
	if cfg.Execute {
		t.Error("Execute should default to false")
	}
	if cfg.Notebooks.Kind != SetEmpty {
		t.Errorf("Notebooks.Kind = %v, want SetEmpty", cfg.Notebooks.Kind)
	}
}

func TestParseConfig_SingleNotebook(t *testing.T) {
	cfg, err := ParseConfig([]byte("notebook_files: analysis.ipynb\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Notebooks.Kind != SetSingle {
		t.Fatalf("Kind = %v, want SetSingle", cfg.Notebooks.Kind)
	}
	if cfg.Notebooks.Single != "analysis.ipynb" {
		t.Errorf("Single = %q, want analysis.ipynb", cfg.Notebooks.Single)
	}
}

func TestParseConfig_FlatList(t *testing.T) {
	raw := `
notebook_files:
  - a.ipynb
  - b.ipynb
tabs_names:
  - Alpha
  - Beta
`
	cfg, err := ParseConfig([]byte(raw))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Notebooks.Kind != SetFlat {
		t.Fatalf("Kind = %v, want SetFlat", cfg.Notebooks.Kind)
	}
	if len(cfg.Notebooks.Flat) != 2 || cfg.Notebooks.Flat[0] != "a.ipynb" {
		t.Errorf("Flat = %v", cfg.Notebooks.Flat)
	}
	if len(cfg.TabsNames.Flat) != 2 || cfg.TabsNames.Flat[1] != "Beta" {
		t.Errorf("TabsNames.Flat = %v", cfg.TabsNames.Flat)
	}
}

func TestParseConfig_NestedPreservesTopicOrder(t *testing.T) {
	raw := `
notebook_files:
  Zeta:
    - z.ipynb
  Alpha:
    - a1.ipynb
    - a2.ipynb
topics_names:
  Zeta: Final Results
`
	cfg, err := ParseConfig([]byte(raw))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Notebooks.Kind != SetNested {
		t.Fatalf("Kind = %v, want SetNested", cfg.Notebooks.Kind)
	}
	topics := cfg.Notebooks.Nested
	if len(topics) != 2 {
		t.Fatalf("topic count = %d, want 2", len(topics))
	}
	// Document order, not lexical order.
	if topics[0].Label != "Zeta" || topics[1].Label != "Alpha" {
		t.Errorf("topic order = [%s, %s], want [Zeta, Alpha]", topics[0].Label, topics[1].Label)
	}
	if len(topics[1].Notebooks) != 2 {
		t.Errorf("Alpha notebook count = %d, want 2", len(topics[1].Notebooks))
	}
	if cfg.TopicsNames["Zeta"] != "Final Results" {
		t.Errorf("TopicsNames[Zeta] = %q", cfg.TopicsNames["Zeta"])
	}
}

func TestParseConfig_JSONCompatibility(t *testing.T) {
	// Legacy config.json files parse as-is: YAML is a JSON superset.
	raw := `{"notebook_files": ["a.ipynb"], "report_title": "Legacy", "execute": true}`
	cfg, err := ParseConfig([]byte(raw))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Notebooks.Kind != SetFlat || cfg.ReportTitle != "Legacy" || !cfg.Execute {
		t.Errorf("parsed config = %+v", cfg)
	}
}

func TestNotebookSet_Count(t *testing.T) {
	cases := []struct {
		name string
		set  NotebookSet
		want int
	}{
		{"empty", NotebookSet{Kind: SetEmpty}, 0},
		{"single", NotebookSet{Kind: SetSingle, Single: "a.ipynb"}, 1},
		{"flat", NotebookSet{Kind: SetFlat, Flat: []string{"a", "b"}}, 2},
		{"nested", NotebookSet{Kind: SetNested, Nested: []Topic{
			{Label: "One", Notebooks: []string{"a"}},
			{Label: "Two", Notebooks: []string{"b", "c"}},
		}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.set.Count(); got != tc.want {
				t.Errorf("Count() = %d, want %d", got, tc.want)
			}
		})
	}
}
