package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
)

func testRouter(t *testing.T) chi.Router {
	t.Helper()
	reg, err := comparison.NewRegistry(map[comparison.PairKey]*comparison.LanguageComparison{
		comparison.NewPairKey("java", "python"): {
			SourceLanguage: "Java",
			TargetLanguage: "Python",
			SyntaxExamples: []comparison.SyntaxExample{
				{Topic: "Variables", SourceCode: "X", TargetCode: "Y"},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, func() *comparison.Registry { return reg })
	return r
}

func get(t *testing.T, r chi.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListLanguages(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/api/languages")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var langs []comparison.Language
	if err := json.Unmarshal(w.Body.Bytes(), &langs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(langs) != 2 || langs[0].ID != "java" || langs[1].ID != "python" {
		t.Errorf("languages = %+v", langs)
	}
}

func TestListPairs(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/api/pairs")

	var pairs []string
	if err := json.Unmarshal(w.Body.Bytes(), &pairs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(pairs) != 1 || pairs[0] != "java-python" {
		t.Errorf("pairs = %v, want [java-python]", pairs)
	}
}

func TestGetComparisonDirect(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/api/comparison/java/python")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var rec comparison.LanguageComparison
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.SourceLanguage != "Java" || rec.SyntaxExamples[0].SourceCode != "X" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestGetComparisonMirrored(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/api/comparison/PYTHON/Java")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var rec comparison.LanguageComparison
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.SourceLanguage != "Python" || rec.TargetLanguage != "Java" {
		t.Errorf("languages = %q/%q, want Python/Java", rec.SourceLanguage, rec.TargetLanguage)
	}
	if rec.SyntaxExamples[0].SourceCode != "Y" || rec.SyntaxExamples[0].TargetCode != "X" {
		t.Errorf("mirrored example = %+v", rec.SyntaxExamples[0])
	}
}

func TestGetComparisonAbsent(t *testing.T) {
	r := testRouter(t)
	w := get(t, r, "/api/comparison/python/ruby")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "no comparison available" {
		t.Errorf("error body = %v", body)
	}
}
