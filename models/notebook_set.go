package models

// SetKind identifies the shape of a notebook collection, fixed once at
// config-parse or discovery time so downstream code can switch on it
// instead of re-inspecting the data.
type SetKind int

const (
	// SetEmpty means no notebooks were configured or discovered.
	SetEmpty SetKind = iota
	SetSingle         // one notebook, no tab navigation
	SetFlat           // ordered list of notebooks, one tab each
	SetNested         // topics with notebooks, two-level tabs
)

// Topic is one named group of notebooks rendered as a top-level tab.
type Topic struct {
	Label     string
	Notebooks []string
}

// NotebookSet is the tagged variant holding the notebooks to render.
// Exactly the field matching Kind is populated.
type NotebookSet struct {
	Kind   SetKind
	Single string
	Flat   []string
	Nested []Topic
}

// IsEmpty reports whether the set holds no notebooks at all.
func (s NotebookSet) IsEmpty() bool {
	switch s.Kind {
	case SetSingle:
		return s.Single == ""
	case SetFlat:
		return len(s.Flat) == 0
	case SetNested:
		return len(s.Nested) == 0
	}
	return true
}

// Count returns the total number of notebooks in the set.
func (s NotebookSet) Count() int {
	switch s.Kind {
	case SetSingle:
		if s.Single != "" {
			return 1
		}
	case SetFlat:
		return len(s.Flat)
	case SetNested:
		n := 0
		for _, t := range s.Nested {
			n += len(t.Notebooks)
		}
		return n
	}
	return 0
}
