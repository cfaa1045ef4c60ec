// Package corpus loads a case's known documents from disk. The engine
// itself never fetches or persists documents; this loader exists for the
// CLI surface, which hands the loaded set to each analysis call.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ppiankov/docket/internal/extract"
	"github.com/ppiankov/docket/internal/model"
)

var loadableExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// Load reads every .txt, .md and .html file in dir (one level, no
// recursion) into a document list. HTML files are stripped to visible
// text. The document ID and title come from the file name; results are
// sorted by ID so corpus order is stable across runs.
func Load(dir string) ([]model.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	var docs []model.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !loadableExtensions[ext] {
			continue
		}

		doc, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	return docs, nil
}

// LoadFile reads a single document from disk
func LoadFile(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read document %s: %w", path, err)
	}

	content := string(data)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		content = extract.StripHTML(content)
	}

	name := filepath.Base(path)
	title := strings.TrimSuffix(name, filepath.Ext(name))

	return model.Document{
		ID:      name,
		Title:   title,
		Content: content,
	}, nil
}
