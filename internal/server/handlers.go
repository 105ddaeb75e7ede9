package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/medletter/labsense/internal/safety"
	"go.uber.org/zap"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 32 << 20

// handleAnalyze accepts a multipart form with a "report" file and an
// optional "symptoms" text field, and responds with the full guidance
// bundle. The pipeline never fails; only malformed requests produce errors.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("report")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "report file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read report file")
		return
	}
	symptoms := r.FormValue("symptoms")

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".pdf"
	}
	s.logger.Debug("analyze request",
		zap.String("filename", header.Filename),
		zap.Int("size", len(content)),
		zap.Bool("symptoms_supplied", symptoms != ""),
	)

	bundle := s.pipeline.Analyze(r.Context(), content, ext, symptoms)
	s.respondJSON(w, http.StatusOK, bundle)
}

type symptomCheckRequest struct {
	Symptoms string `json:"symptoms"`
}

// handleSymptomCheck runs the red-flag scan alone, without a document.
func (s *Server) handleSymptomCheck(w http.ResponseWriter, r *http.Request) {
	var req symptomCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respondJSON(w, http.StatusOK, safety.Scan(req.Symptoms))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
