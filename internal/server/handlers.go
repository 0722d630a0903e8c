package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aatif-shaikh19/LegalSimplify/internal/extract"
	"github.com/aatif-shaikh19/LegalSimplify/internal/models"
	"github.com/aatif-shaikh19/LegalSimplify/internal/session"
	"github.com/aatif-shaikh19/LegalSimplify/pkg/utils"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view := s.store.Create(req.Text, "")
	s.logger.Debug("session created",
		zap.String("id", view.ID),
		zap.String("preview", utils.Truncate(req.Text, 80)))
	s.respondJSON(w, http.StatusCreated, view)
}

func (s *Server) handleCreateSessionUpload(w http.ResponseWriter, r *http.Request) {
	text, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	view := s.store.Create(text, filename)
	s.logger.Debug("session created from upload",
		zap.String("id", view.ID),
		zap.String("filename", filename))
	s.respondJSON(w, http.StatusCreated, view)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete session request", zap.String("id", id))
	s.store.Delete(id)
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleSetDocument(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	view, err := s.store.SetDocument(chi.URLParam(r, "id"), req.Text, "")
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleSetDocumentUpload(w http.ResponseWriter, r *http.Request) {
	text, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	view, err := s.store.SetDocument(chi.URLParam(r, "id"), text, filename)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	points := req.Clamp(s.config.Summary.DefaultPoints)
	id := chi.URLParam(r, "id")
	s.logger.Debug("summarize request", zap.String("id", id), zap.Int("points", points))
	summary, err := s.store.Summarize(id, points)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"points":         points,
		"summary_points": summary,
	})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id := chi.URLParam(r, "id")
	s.logger.Debug("ask request", zap.String("id", id),
		zap.String("question", utils.Truncate(req.Question, 80)))
	exchange, err := s.store.Ask(id, req.Question)
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, exchange)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	chat, err := s.store.Chat(chi.URLParam(r, "id"))
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"chat": chat})
}

func (s *Server) handleRisks(w http.ResponseWriter, r *http.Request) {
	risks, err := s.store.Risks(chi.URLParam(r, "id"))
	if err != nil {
		s.respondSessionError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"risk_flags": risks})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readUpload reads the multipart "file" field and decodes it to text. A
// missing file field is the "no file selected" case: respond 400 and mutate
// nothing. Content is never validated; whatever decodes becomes the document.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (text, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Upload.MaxFileBytes)
	if err := r.ParseMultipartForm(s.config.Upload.MaxFileBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return "", "", false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "no file selected")
		return "", "", false
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("upload read failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to read file")
		return "", "", false
	}
	return extract.Decode(data), header.Filename, true
}

func (s *Server) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}
	s.logger.Error("session operation failed", zap.Error(err))
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
