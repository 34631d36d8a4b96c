package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/readable-app/readable/internal/answer"
	"github.com/readable-app/readable/internal/textproc"
)

type askRequest struct {
	Question string `json:"question"`
}

// handleAsk answers a free-text question against a stored document.
// Degenerate questions come back as a zero-confidence result, not an
// error, so the client stays responsive.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.docs.Get(chi.URLParam(r, "docID"))
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	result := answer.Ask(req.Question, &doc)
	s.answerStats.Observe(time.Since(start))

	s.log.Info("question answered",
		"doc_id", doc.ID,
		"confidence", result.Confidence,
	)
	writeJSON(w, http.StatusOK, result)
}

type segmentRequest struct {
	Text string `json:"text"`
}

// handleSegment exposes the sentence segmenter on its own, for TTS and
// highlight collaborators that need offsets without a full document.
func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	sentences := textproc.SplitSentences(req.Text)
	if sentences == nil {
		sentences = []textproc.Sentence{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sentences": sentences})
}

func (s *Server) handleEngineStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"build":  s.buildStats.Snapshot(),
		"answer": s.answerStats.Snapshot(),
	})
}
