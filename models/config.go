// Package models defines shared types for report configuration and layout.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputFolder = "./output"
	DefaultReportTitle  = "Jupyter tabs Notebooks Report"
)

// TabNames holds optional display-name overrides mirroring the shape of
// notebook_files: a scalar for a single notebook, a sequence for a flat
// list, a mapping topic -> names for the nested layout.
type TabNames struct {
	Single string
	Flat   []string
	Nested map[string][]string
}

// Config holds everything a report run needs.
type Config struct {
	Notebooks    NotebookSet
	NotebookDir  string
	OutputFolder string
	ReportTitle  string
	Execute      bool
	RTL          bool
	TabsNames    TabNames
	TopicsNames  map[string]string
}

// rawConfig keeps the polymorphic keys as yaml.Node so their shape can be
// resolved into tagged variants in one place.
type rawConfig struct {
	NotebookFiles yaml.Node         `yaml:"notebook_files"`
	NotebookDir   string            `yaml:"notebook_dir"`
	OutputFolder  string            `yaml:"output_folder"`
	ReportTitle   string            `yaml:"report_title"`
	Execute       bool              `yaml:"execute"`
	RTL           bool              `yaml:"rtl"`
	TabsNames     yaml.Node         `yaml:"tabs_names"`
	TopicsNames   map[string]string `yaml:"topics_names"`
}

// LoadConfig reads and parses the config file at path. YAML is a superset
// of JSON, so legacy config.json files load unchanged.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses config bytes and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	set, err := decodeNotebookSet(&raw.NotebookFiles)
	if err != nil {
		return nil, fmt.Errorf("invalid notebook_files: %w", err)
	}
	names, err := decodeTabNames(&raw.TabsNames)
	if err != nil {
		return nil, fmt.Errorf("invalid tabs_names: %w", err)
	}

	cfg := &Config{
		Notebooks:    set,
		NotebookDir:  raw.NotebookDir,
		OutputFolder: raw.OutputFolder,
		ReportTitle:  raw.ReportTitle,
		Execute:      raw.Execute,
		RTL:          raw.RTL,
		TabsNames:    names,
		TopicsNames:  raw.TopicsNames,
	}
	if cfg.OutputFolder == "" {
		cfg.OutputFolder = DefaultOutputFolder
	}
	if cfg.ReportTitle == "" {
		cfg.ReportTitle = DefaultReportTitle
	}
	return cfg, nil
}

// decodeNotebookSet resolves the scalar/sequence/mapping shapes of
// notebook_files into a tagged NotebookSet. Mapping order is preserved by
// walking the yaml.Node content directly; decoding into a Go map would
// scramble topic order.
func decodeNotebookSet(node *yaml.Node) (NotebookSet, error) {
	switch node.Kind {
	case 0:
		return NotebookSet{Kind: SetEmpty}, nil
	case yaml.ScalarNode:
		var path string
		if err := node.Decode(&path); err != nil {
			return NotebookSet{}, err
		}
		if path == "" {
			return NotebookSet{Kind: SetEmpty}, nil
		}
		return NotebookSet{Kind: SetSingle, Single: path}, nil
	case yaml.SequenceNode:
		var paths []string
		if err := node.Decode(&paths); err != nil {
			return NotebookSet{}, err
		}
		if len(paths) == 0 {
			return NotebookSet{Kind: SetEmpty}, nil
		}
		return NotebookSet{Kind: SetFlat, Flat: paths}, nil
	case yaml.MappingNode:
		var topics []Topic
		for i := 0; i+1 < len(node.Content); i += 2 {
			var label string
			if err := node.Content[i].Decode(&label); err != nil {
				return NotebookSet{}, err
			}
			var notebooks []string
			if err := node.Content[i+1].Decode(&notebooks); err != nil {
				return NotebookSet{}, err
			}
			topics = append(topics, Topic{Label: label, Notebooks: notebooks})
		}
		if len(topics) == 0 {
			return NotebookSet{Kind: SetEmpty}, nil
		}
		return NotebookSet{Kind: SetNested, Nested: topics}, nil
	}
	return NotebookSet{}, fmt.Errorf("unsupported node kind %d", node.Kind)
}

func decodeTabNames(node *yaml.Node) (TabNames, error) {
	var names TabNames
	switch node.Kind {
	case 0:
		return names, nil
	case yaml.ScalarNode:
		return names, node.Decode(&names.Single)
	case yaml.SequenceNode:
		return names, node.Decode(&names.Flat)
	case yaml.MappingNode:
		return names, node.Decode(&names.Nested)
	}
	return names, fmt.Errorf("unsupported node kind %d", node.Kind)
}
