package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/report"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/scoring"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/store"
)

func newTestServer(t *testing.T) (http.Handler, *Server, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	catalog, err := scoring.NewCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	h, s, err := NewServer(st, catalog, nil, "http://test.local")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	s.newID = func() string { return "fixed-id" }
	return h, s, st
}

func TestSubmitStoresAndResponds(t *testing.T) {
	h, _, st := newTestServer(t)

	body := map[string]any{
		"name":  "Alex",
		"email": "alex@example.com",
		"answers": map[string]any{
			"q01": 8, "q02": 8, "q03": 8,
		},
	}
	raw, _ := json.Marshal(body)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", bytes.NewReader(raw)))
	if rec.Code != 200 {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ReportID    string `json:"report_id"`
		ResultURL   string `json:"result_url"`
		ProfileType string `json:"profile_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ReportID != "fixed-id" {
		t.Errorf("report id: got %q", resp.ReportID)
	}
	if resp.ResultURL != "http://test.local/r/fixed-id" {
		t.Errorf("result url: got %q", resp.ResultURL)
	}
	if resp.ProfileType == "" {
		t.Error("empty profile type")
	}

	stored, err := st.Get(context.Background(), "fixed-id")
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.Name != "Alex" || stored.Email != "alex@example.com" {
		t.Errorf("stored payload: %+v", stored)
	}
	if len(stored.Ranked) != 11 {
		t.Errorf("stored ranking has %d entries", len(stored.Ranked))
	}
}

func TestSubmitRequiresAnswers(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit",
		strings.NewReader(`{"name":"Alex","email":"a@b.c"}`)))
	if rec.Code != 400 {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestSubmitRejectsBadJSON(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader("{broken")))
	if rec.Code != 400 {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestSubmitMethodNotAllowed(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/submit", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rec.Code)
	}
}

func TestQuizPage(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != 200 {
		t.Fatalf("status %d", rec.Code)
	}
	page := rec.Body.String()
	if !strings.Contains(page, "q01") || !strings.Contains(page, "q33") {
		t.Error("quiz page missing questions")
	}
}

func TestResultPage(t *testing.T) {
	h, _, st := newTestServer(t)

	p := report.Payload{
		ReportID:    "r-7",
		Name:        "Maria",
		ProfileType: "A",
		Ranked: report.RankedList{
			{ID: "DST", Percent: 90}, {ID: "STR", Percent: 80}, {ID: "MAC", Percent: 70},
			{ID: "KON", Percent: 60}, {ID: "MOR", Percent: 50}, {ID: "IND", Percent: 40},
			{ID: "AKT", Percent: 35}, {ID: "INF", Percent: 30}, {ID: "COM", Percent: 25},
			{ID: "AUF", Percent: 20}, {ID: "STA", Percent: 10},
		},
	}
	if err := st.Put(context.Background(), p); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/r/r-7", nil))
	if rec.Code != 200 {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	page := rec.Body.String()
	if !strings.Contains(page, "Maria") {
		t.Error("result page missing name")
	}
	if !strings.Contains(page, "/report/r-7.pdf") {
		t.Error("result page missing pdf link")
	}
}

func TestResultPageNotFound(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/r/missing", nil))
	if rec.Code != 404 {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestReportPDFDownload(t *testing.T) {
	h, _, st := newTestServer(t)

	p := report.Payload{ReportID: "r-9", Name: "Alex", ProfileType: "B"}
	if err := st.Put(context.Background(), p); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report/r-9.pdf", nil))
	if rec.Code != 200 {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type: %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Performance-Profil-Report.pdf") {
		t.Errorf("content disposition: %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a pdf")
	}
}

func TestReportPDFNotFound(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/report/missing.pdf", nil))
	if rec.Code != 404 {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}
