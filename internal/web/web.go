// Package web renders the interactive comparison pages. It is plumbing
// over the resolver: selection identifiers come in as query parameters,
// the resolved record (or its absence) goes out as HTML.
package web

import (
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/config"
)

// ProjectName is the display name used in page titles and the top bar.
const ProjectName = "Language Transfer Hub"

// RegistrySource supplies the current registry. The indirection lets the
// dev server swap in a freshly loaded dataset without restarting.
type RegistrySource func() *comparison.Registry

// Handler serves the comparison UI.
type Handler struct {
	registry   RegistrySource
	cfg        *config.Config
	renderer   *Renderer
	tmpl       *template.Template
	liveReload bool
}

// NewHandler creates the UI handler. liveReload controls whether pages
// open the reload socket.
func NewHandler(registry RegistrySource, cfg *config.Config, liveReload bool) (*Handler, error) {
	renderer, err := NewRenderer(cfg.Theme)
	if err != nil {
		return nil, err
	}
	tmpl, err := NewPageTemplate()
	if err != nil {
		return nil, err
	}
	return &Handler{
		registry:   registry,
		cfg:        cfg,
		renderer:   renderer,
		tmpl:       tmpl,
		liveReload: liveReload,
	}, nil
}

// Renderer exposes the shared renderer for the static site generator.
func (h *Handler) Renderer() *Renderer { return h.renderer }

// RegisterRoutes mounts the page and asset routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Get("/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", serveAsset("application/javascript; charset=utf-8", jsContent))
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	reg := h.registry()

	source := r.URL.Query().Get("source")
	if source == "" {
		source = h.cfg.DefaultSource
	}
	target := r.URL.Query().Get("target")
	if target == "" {
		target = h.cfg.DefaultTarget
	}
	tab := r.URL.Query().Get("tab")
	if !config.ValidTab(tab) {
		tab = h.cfg.DefaultTab
	}

	key := comparison.NewPairKey(source, target)

	data := PageData{
		ProjectName: ProjectName,
		Languages:   reg.Languages(),
		Source:      key.Source,
		Target:      key.Target,
		ActiveTab:   tab,
		LiveReload:  h.liveReload,
	}

	// Absence is a normal outcome: the page renders a friendly panel.
	if rec := reg.Resolve(source, target); rec != nil {
		data.Comparison = h.renderer.BuildView(key.Source, key.Target, rec)
		// The frameworks tab only exists for records that have the
		// section; fall back rather than showing an empty panel.
		if tab == string(config.TabFrameworks) && len(data.Comparison.Frameworks) == 0 {
			data.ActiveTab = string(config.TabSyntax)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("web: rendering %s-%s: %v", key.Source, key.Target, err)
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// StaticAssets returns the stylesheet and script for static site builds.
func StaticAssets() (css, js string) {
	return cssContent, jsContent
}
