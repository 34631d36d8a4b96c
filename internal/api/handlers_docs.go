package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/readable-app/readable/internal/document"
)

type createDocumentRequest struct {
	Text string `json:"text"`
}

// handleCreateDocument analyzes submitted text into a document and adds
// it to the reading history. Empty text is rejected here: the builder's
// non-empty precondition is enforced at the boundary.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		jsonError(w, "text is required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	doc := document.Build(text)
	s.buildStats.Observe(time.Since(start))

	if err := s.docs.Put(doc); err != nil {
		jsonError(w, "failed to store document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("document created", "doc_id", doc.ID, "sentences", len(doc.Sentences))

	writeJSON(w, http.StatusCreated, doc)
}

// documentSummary is the list-view projection of a document.
type documentSummary struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	Sentences int       `json:"sentences"`
	Dates     int       `json:"dates"`
	Amounts   int       `json:"amounts"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.docs.List()
	summaries := make([]documentSummary, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, documentSummary{
			ID:        d.ID,
			Summary:   d.Summary,
			Sentences: len(d.Sentences),
			Dates:     len(d.Highlights.Dates),
			Amounts:   len(d.Highlights.Amounts),
			CreatedAt: d.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": summaries})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.docs.Get(chi.URLParam(r, "docID"))
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.docs.Delete(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	s.log.Info("document deleted", "doc_id", docID)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (s *Server) handleExportDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.docs.Get(chi.URLParam(r, "docID"))
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(document.ExportSummary(&doc)))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
