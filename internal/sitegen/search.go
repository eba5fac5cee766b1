package sitegen

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

// SearchEntry represents a single searchable page of the static site.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// newSearchEntry builds the search entry for one direction page from the
// record's topics and titles; code snippets are deliberately left out of
// the searchable text.
func newSearchEntry(path string, rec *comparison.LanguageComparison) SearchEntry {
	var topics []string
	for _, ex := range rec.SyntaxExamples {
		topics = append(topics, ex.Topic)
	}
	for _, p := range rec.CommonPitfalls {
		topics = append(topics, p.Title)
	}
	for _, d := range rec.KeyDifferences {
		topics = append(topics, d.Topic)
	}
	for _, fc := range rec.FrameworkComparisons {
		topics = append(topics, fc.Category, fc.SourceFramework.Name, fc.TargetFramework.Name)
	}

	title := fmt.Sprintf("%s to %s", rec.SourceLanguage, rec.TargetLanguage)
	return SearchEntry{
		Path:    path,
		Title:   title,
		Summary: fmt.Sprintf("Moving from %s to %s: syntax, pitfalls, key differences", rec.SourceLanguage, rec.TargetLanguage),
		Content: strings.Join(topics, " "),
	}
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
