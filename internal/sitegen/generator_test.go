package sitegen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags flattens rendered HTML so assertions can match code text
// that the highlighter splits across spans.
func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

func testRegistry(t *testing.T) *comparison.Registry {
	t.Helper()
	reg, err := comparison.NewRegistry(map[comparison.PairKey]*comparison.LanguageComparison{
		comparison.NewPairKey("java", "python"): {
			SourceLanguage: "Java",
			TargetLanguage: "Python",
			SyntaxExamples: []comparison.SyntaxExample{
				{Topic: "Variables", SourceCode: "int x = 1;", TargetCode: "x = 1"},
			},
			KeyDifferences: []comparison.KeyDifference{
				{Topic: "Typing", Description: "d", SourceApproach: "static", TargetApproach: "dynamic"},
			},
		},
		comparison.NewPairKey("python", "go"): {
			SourceLanguage: "Python",
			TargetLanguage: "Go",
			SyntaxExamples: []comparison.SyntaxExample{
				{Topic: "Errors", SourceCode: "raise X", TargetCode: "return err"},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	var pages []string
	g := &Generator{
		Registry:  testRegistry(t),
		OutputDir: out,
		Theme:     "github",
		Progress:  func(p string) { pages = append(pages, p) },
	}

	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// 2 pairs x 2 directions + index.
	if n != 5 {
		t.Errorf("page count = %d, want 5", n)
	}
	if len(pages) != 5 {
		t.Errorf("progress calls = %d, want 5", len(pages))
	}

	for _, name := range []string{
		"index.html", "style.css", "script.js", "search-index.json", "manifest.json",
		"pairs/java-to-python.html", "pairs/python-to-java.html",
		"pairs/python-to-go.html", "pairs/go-to-python.html",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing output file %s: %v", name, err)
		}
	}

	// Reverse-direction page must carry the mirrored orientation.
	data, err := os.ReadFile(filepath.Join(out, "pairs", "python-to-java.html"))
	if err != nil {
		t.Fatalf("reading mirrored page: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `data-source="python"`) || !strings.Contains(body, `data-target="java"`) {
		t.Error("mirrored page metadata not oriented python->java")
	}
	// Highlighted code is span-wrapped; match the flattened text.
	if !strings.Contains(stripTags(body), "x = 1") {
		t.Error("mirrored page missing swapped code")
	}
}

func TestGenerateManifestAndSearchIndex(t *testing.T) {
	out := t.TempDir()
	g := &Generator{Registry: testRegistry(t), OutputDir: out, Theme: "github"}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var m struct {
		BuildID   string   `json:"build_id"`
		PageCount int      `json:"page_count"`
		Pairs     []string `json:"pairs"`
	}
	data, err := os.ReadFile(filepath.Join(out, "manifest.json"))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if m.BuildID == "" || m.PageCount != 5 || len(m.Pairs) != 2 {
		t.Errorf("manifest = %+v", m)
	}

	var entries []SearchEntry
	data, err = os.ReadFile(filepath.Join(out, "search-index.json"))
	if err != nil {
		t.Fatalf("reading search index: %v", err)
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("unmarshal search index: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("search entries = %d, want 4", len(entries))
	}
	for _, e := range entries {
		if e.Path == "" || e.Title == "" || e.Content == "" {
			t.Errorf("incomplete search entry: %+v", e)
		}
	}
}

func TestGenerateHonorsPairFilters(t *testing.T) {
	out := t.TempDir()
	g := &Generator{
		Registry:  testRegistry(t),
		OutputDir: out,
		Theme:     "github",
		Include:   []string{"java-*"},
	}
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 3 { // one pair, two directions, plus index
		t.Errorf("page count = %d, want 3", n)
	}
	if _, err := os.Stat(filepath.Join(out, "pairs", "python-to-go.html")); !os.IsNotExist(err) {
		t.Error("excluded pair was generated")
	}
}

func TestGenerateExcludeWins(t *testing.T) {
	out := t.TempDir()
	g := &Generator{
		Registry:  testRegistry(t),
		OutputDir: out,
		Theme:     "github",
		Include:   []string{"**"},
		Exclude:   []string{"python-go"},
	}
	n, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 3 {
		t.Errorf("page count = %d, want 3", n)
	}
}

func TestGenerateNoMatchingPairs(t *testing.T) {
	g := &Generator{
		Registry:  testRegistry(t),
		OutputDir: t.TempDir(),
		Theme:     "github",
		Include:   []string{"rust-*"},
	}
	if _, err := g.Generate(); err == nil {
		t.Fatal("expected error when no pairs match")
	}
}
