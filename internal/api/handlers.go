// Package api exposes the comparison data as JSON for programmatic
// consumers and the page script.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

// RegistrySource supplies the current registry.
type RegistrySource func() *comparison.Registry

// RegisterRoutes mounts the JSON API onto the given router.
func RegisterRoutes(r chi.Router, registry RegistrySource) {
	h := &handler{registry: registry}
	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", h.listLanguages)
		r.Get("/pairs", h.listPairs)
		r.Get("/comparison/{source}/{target}", h.getComparison)
	})
}

type handler struct {
	registry RegistrySource
}

func (h *handler) listLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry().Languages())
}

func (h *handler) listPairs(w http.ResponseWriter, r *http.Request) {
	pairs := h.registry().Pairs()
	slugs := make([]string, len(pairs))
	for i, p := range pairs {
		slugs[i] = p.String()
	}
	writeJSON(w, http.StatusOK, slugs)
}

func (h *handler) getComparison(w http.ResponseWriter, r *http.Request) {
	source := chi.URLParam(r, "source")
	target := chi.URLParam(r, "target")

	rec := h.registry().Resolve(source, target)
	if rec == nil {
		// Absence is normal; 404 carries a body the client can show.
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no comparison available"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
