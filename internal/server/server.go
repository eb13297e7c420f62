// Package server exposes the quiz and report endpoints over HTTP.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/report"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/scoring"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store   *store.Store
	catalog *scoring.Catalog
	crm     *CRMClient
	baseURL string

	quizTmpl   *template.Template
	resultTmpl *template.Template
	md         goldmark.Markdown
	newID      func() string
}

// NewServer wires the quiz flow: baseURL is the public origin used to
// build result links, crm may be nil when no CRM key is configured.
func NewServer(st *store.Store, catalog *scoring.Catalog, crm *CRMClient, baseURL string) (http.Handler, *Server, error) {
	quizTmpl, err := template.ParseFS(templateFS, "templates/quiz.html")
	if err != nil {
		return nil, nil, fmt.Errorf("parse quiz template: %w", err)
	}
	resultTmpl, err := template.ParseFS(templateFS, "templates/result.html")
	if err != nil {
		return nil, nil, fmt.Errorf("parse result template: %w", err)
	}

	s := &Server{
		store:      st,
		catalog:    catalog,
		crm:        crm,
		baseURL:    strings.TrimRight(baseURL, "/"),
		quizTmpl:   quizTmpl,
		resultTmpl: resultTmpl,
		md:         goldmark.New(goldmark.WithExtensions(extension.GFM)),
		newID:      func() string { return uuid.NewString() },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/submit", s.handleSubmit)
	mux.HandleFunc("/r/", s.handleResult)
	mux.HandleFunc("/report/", s.handleReportPDF)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleQuiz)
	return mux, s, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]any{"ok": true})
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.quizTmpl.Execute(w, map[string]any{
		"Questions": s.catalog.Questions(),
	}); err != nil {
		log.Printf("render quiz page: %v", err)
	}
}

// submitRequest is the quiz submission body. Answers map question ids
// to raw values; anything non-numeric scores as zero.
type submitRequest struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Answers map[string]any `json:"answers"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, 400, "invalid request body")
		return
	}
	var req submitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, 400, "answers are required")
		return
	}

	result := s.catalog.Score(req.Answers)
	reportID := s.newID()
	resultURL := s.baseURL + "/r/" + reportID

	payload := report.Payload{
		ReportID:    reportID,
		ResultURL:   resultURL,
		Name:        req.Name,
		Email:       req.Email,
		ProfileType: result.ProfileType,
		Ranked:      report.RankedList(result.Ranked),
		Percents:    result.Percents,
		Sums:        result.Sums,
		Avgs:        result.Avgs,
	}
	if err := s.store.Put(r.Context(), payload); err != nil {
		log.Printf("store report %s: %v", reportID, err)
		writeError(w, 500, "failed to store report")
		return
	}

	// CRM sync is a side effect; its failure never blocks the response.
	if s.crm != nil && strings.TrimSpace(req.Email) != "" {
		go s.crm.UpsertContact(req.Email, map[string]string{
			"RESULT_URL":   resultURL,
			"PROFILE_TYPE": result.ProfileType,
			"REPORT_ID":    reportID,
		})
	}

	writeJSON(w, 200, map[string]any{
		"ok":           true,
		"report_id":    reportID,
		"result_url":   resultURL,
		"profile_type": result.ProfileType,
		"ranked":       report.RankedList(result.Ranked),
	})
}

func (s *Server) loadPayload(w http.ResponseWriter, r *http.Request, id string) (report.Payload, bool) {
	if id == "" {
		writeError(w, 400, "report id is required")
		return report.Payload{}, false
	}
	p, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, 404, "report not found")
		return report.Payload{}, false
	}
	if err != nil {
		log.Printf("load report %s: %v", id, err)
		writeError(w, 500, "failed to load report")
		return report.Payload{}, false
	}
	return p, true
}

// resultEntry is one category on the HTML result page.
type resultEntry struct {
	Name    string
	Percent int
	Band    string
	Text    template.HTML
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/r/")
	p, ok := s.loadPayload(w, r, id)
	if !ok {
		return
	}
	p = p.Normalize()

	t := content.ProfileTypeByTag(p.ProfileType)
	data := map[string]any{
		"Name":        p.Name,
		"ProfileType": p.ProfileType,
		"TypeTitle":   t.Title,
		"TypeHint":    t.Hint,
		"TypeExplain": s.renderMarkdown(t.Explain),
		"Archetype":   t.Archetype,
		"Core":        s.renderMarkdown(t.Core),
		"Strengths":   t.Strengths,
		"Risks":       t.Risks,
		"Development": s.renderMarkdown(t.Development),
		"Top":         s.resultEntries(p.TopLevers(), content.RoleTopLever),
		"Friction":    s.resultEntries(p.FrictionZones(), content.RoleFrictionZone),
		"All":         s.resultEntries(p.Ranked, content.RoleDeepDive),
		"PDFPath":     "/report/" + p.ReportID + ".pdf",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.resultTmpl.Execute(w, data); err != nil {
		log.Printf("render result page %s: %v", id, err)
	}
}

func (s *Server) resultEntries(entries []scoring.Entry, role content.Role) []resultEntry {
	out := make([]resultEntry, 0, len(entries))
	for _, e := range entries {
		var text string
		if role == content.RoleDeepDive {
			text = categorySummary(e.ID, content.Classify(e.Percent))
		} else {
			text = content.Resolve(e.ID, e.Percent, role).Short
		}
		out = append(out, resultEntry{
			Name:    content.CategoryName(e.ID),
			Percent: e.Percent,
			Band:    content.Classify(e.Percent).String(),
			Text:    s.renderMarkdown(text),
		})
	}
	return out
}

// categorySummary picks the one-line web summary matching the band.
func categorySummary(fid string, band content.Band) string {
	cat, ok := content.CategoryByID(fid)
	if !ok {
		return ""
	}
	switch band {
	case content.BandHigh:
		return cat.SummaryHigh
	case content.BandLow:
		return cat.SummaryLow
	default:
		return cat.SteerLine
	}
}

// renderMarkdown converts narrative copy to HTML. Conversion failures
// degrade to the escaped source text.
func (s *Server) renderMarkdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/report/"), ".pdf")
	p, ok := s.loadPayload(w, r, id)
	if !ok {
		return
	}

	pdf, err := report.Build(p)
	if err != nil {
		log.Printf("render report pdf %s: %v", id, err)
		writeError(w, 500, "failed to render pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Performance-Profil-Report.pdf"`)
	w.WriteHeader(200)
	_, _ = w.Write(pdf)
}
