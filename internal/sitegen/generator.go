// Package sitegen builds the deployable static site: one pre-rendered
// page per direction of every comparison pair, plus index, assets, a
// client-side search index, and a build manifest.
package sitegen

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/config"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/web"
)

// Generator renders the registry into a static HTML site.
type Generator struct {
	Registry  *comparison.Registry
	OutputDir string
	Theme     string
	Include   []string // doublestar patterns over canonical pair slugs
	Exclude   []string
	Progress  func(page string) // optional, called once per written page
}

// manifest records what a build produced.
type manifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	PageCount   int       `json:"page_count"`
	Pairs       []string  `json:"pairs"`
}

// Generate builds the full static site. Returns the number of HTML pages
// written.
func (g *Generator) Generate() (int, error) {
	pairs := g.selectPairs()
	if len(pairs) == 0 {
		return 0, fmt.Errorf("no pairs match the configured include/exclude patterns")
	}

	renderer, err := web.NewRenderer(g.Theme)
	if err != nil {
		return 0, fmt.Errorf("creating renderer: %w", err)
	}
	pageTmpl, err := web.NewPageTemplate()
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}
	indexTmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing index template: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(g.OutputDir, "pairs"), 0o755); err != nil {
		return 0, err
	}

	// Static assets are shared with the live server.
	css, js := web.StaticAssets()
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(css), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(js), 0o644); err != nil {
		return 0, err
	}

	var searchEntries []SearchEntry
	pageCount := 0

	// Both directions of every pair get a page; the reverse direction
	// exercises the mirrored view at build time instead of at runtime.
	for _, key := range pairs {
		for _, dir := range []comparison.PairKey{key, key.Reversed()} {
			rec := g.Registry.Resolve(dir.Source, dir.Target)
			if rec == nil {
				return 0, fmt.Errorf("pair %s: direction %s did not resolve", key, dir)
			}
			name, err := g.writePairPage(pageTmpl, renderer, dir, rec)
			if err != nil {
				return 0, err
			}
			searchEntries = append(searchEntries, newSearchEntry(name, rec))
			pageCount++
			if g.Progress != nil {
				g.Progress(name)
			}
		}
	}

	if err := g.writeIndex(indexTmpl, pairs); err != nil {
		return 0, err
	}
	pageCount++
	if g.Progress != nil {
		g.Progress("index.html")
	}

	if err := WriteSearchIndex(searchEntries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	m := manifest{
		BuildID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		PageCount:   pageCount,
	}
	for _, key := range pairs {
		m.Pairs = append(m.Pairs, key.String())
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "manifest.json"), data, 0o644); err != nil {
		return 0, err
	}

	return pageCount, nil
}

// selectPairs applies the include/exclude patterns to the canonical pair
// slugs. Bad patterns match nothing rather than failing the build.
func (g *Generator) selectPairs() []comparison.PairKey {
	include := g.Include
	if len(include) == 0 {
		include = []string{"**"}
	}

	var out []comparison.PairKey
	for _, key := range g.Registry.Pairs() {
		slug := key.String()
		included := false
		for _, pat := range include {
			if ok, _ := doublestar.Match(pat, slug); ok {
				included = true
				break
			}
		}
		for _, pat := range g.Exclude {
			if ok, _ := doublestar.Match(pat, slug); ok {
				included = false
				break
			}
		}
		if included {
			out = append(out, key)
		}
	}
	return out
}

// PairPageName returns the file name of a direction's page, relative to
// the output root.
func PairPageName(key comparison.PairKey) string {
	return filepath.ToSlash(filepath.Join("pairs", key.Source+"-to-"+key.Target+".html"))
}

func (g *Generator) writePairPage(tmpl *template.Template, renderer *web.Renderer, key comparison.PairKey, rec *comparison.LanguageComparison) (string, error) {
	name := PairPageName(key)

	data := web.PageData{
		ProjectName: web.ProjectName,
		Languages:   g.Registry.Languages(),
		Source:      key.Source,
		Target:      key.Target,
		ActiveTab:   string(config.TabSyntax),
		Comparison:  renderer.BuildView(key.Source, key.Target, rec),
		Static:      true,
		BasePath:    "../",
	}

	f, err := os.Create(filepath.Join(g.OutputDir, filepath.FromSlash(name)))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return name, nil
}

// indexData holds the data for the index page.
type indexData struct {
	ProjectName string
	Directions  []indexDirection
}

type indexDirection struct {
	Path       string
	SourceName string
	TargetName string
}

func (g *Generator) writeIndex(tmpl *template.Template, pairs []comparison.PairKey) error {
	data := indexData{ProjectName: web.ProjectName}
	for _, key := range pairs {
		for _, dir := range []comparison.PairKey{key, key.Reversed()} {
			rec := g.Registry.Resolve(dir.Source, dir.Target)
			data.Directions = append(data.Directions, indexDirection{
				Path:       PairPageName(dir),
				SourceName: rec.SourceLanguage,
				TargetName: rec.TargetLanguage,
			})
		}
	}

	f, err := os.Create(filepath.Join(g.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// indexTemplate is the Go html/template for the site index.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.ProjectName}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <header class="topbar">
    <h1 class="brand"><a href="index.html">{{.ProjectName}}</a></h1>
  </header>
  <main class="content">
    <h2>Pick a transition</h2>
    <ul class="pair-list">
      {{range .Directions}}
      <li><a href="{{.Path}}">{{.SourceName}} &rarr; {{.TargetName}}</a></li>
      {{end}}
    </ul>
  </main>
</body>
</html>`
