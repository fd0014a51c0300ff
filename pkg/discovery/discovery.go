// Package discovery enumerates notebook files in a directory tree.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"nbtabs/models"
)

// MainTopic is the reserved label for root-level notebooks when a
// directory holds both root and subdirectory notebooks.
const MainTopic = "Main"

var titleCaser = cases.Title(language.English)

// Discover walks dir one level deep and returns the notebooks found.
//
// A missing directory or one with no notebooks yields an empty set, not an
// error. Root notebooks with no subdirectories at all yield a flat set;
// once any subdirectory exists the set is nested, one topic per populated
// subdirectory, root notebooks first under the reserved "Main" topic.
func Discover(dir string) (models.NotebookSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NotebookSet{Kind: models.SetEmpty}, nil
		}
		return models.NotebookSet{}, err
	}

	var rootNotebooks []string
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if !strings.HasPrefix(name, ".") {
				subdirs = append(subdirs, name)
			}
			continue
		}
		if isNotebook(name) {
			rootNotebooks = append(rootNotebooks, filepath.Join(dir, name))
		}
	}

	var topics []models.Topic
	for _, sub := range subdirs {
		notebooks, err := notebooksIn(filepath.Join(dir, sub))
		if err != nil {
			return models.NotebookSet{}, err
		}
		if len(notebooks) > 0 {
			topics = append(topics, models.Topic{
				Label:     CleanLabel(sub),
				Notebooks: notebooks,
			})
		}
	}

	if len(subdirs) == 0 {
		if len(rootNotebooks) == 0 {
			return models.NotebookSet{Kind: models.SetEmpty}, nil
		}
		return models.NotebookSet{Kind: models.SetFlat, Flat: rootNotebooks}, nil
	}

	if len(rootNotebooks) > 0 {
		topics = append([]models.Topic{{Label: MainTopic, Notebooks: rootNotebooks}}, topics...)
	}
	if len(topics) == 0 {
		return models.NotebookSet{Kind: models.SetEmpty}, nil
	}
	return models.NotebookSet{Kind: models.SetNested, Nested: topics}, nil
}

func notebooksIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var notebooks []string
	for _, entry := range entries {
		if !entry.IsDir() && isNotebook(entry.Name()) {
			notebooks = append(notebooks, filepath.Join(dir, entry.Name()))
		}
	}
	return notebooks, nil
}

func isNotebook(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".ipynb")
}

// CleanLabel turns a directory or file name into a display label:
// underscores and hyphens become spaces, then title case.
func CleanLabel(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	label = strings.ReplaceAll(label, "-", " ")
	return titleCaser.String(label)
}

// NotebookLabel derives a display label from a notebook path.
func NotebookLabel(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return CleanLabel(base)
}
