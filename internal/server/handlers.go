package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kousei/internal/models"
	"github.com/hyperjump/kousei/internal/report"
)

// readUpload pulls the document bytes and file extension out of the request.
// Multipart uploads use the "file" form field; otherwise the raw body is read
// and treated as a PDF. The body is capped at the configured upload limit.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("missing file field: %w", err)
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			return nil, "", fmt.Errorf("read upload: %w", err)
		}
		return content, strings.ToLower(filepath.Ext(header.Filename)), nil
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return content, ".pdf", nil
}

// analyzeUpload extracts text from the upload and runs the analyzer.
// Extraction failure is not an error: the analyzer sees empty text and
// responds with the short-text warning, matching the best-effort policy.
func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request, opts models.AnalyzeOptions) (*models.AnalysisResult, error) {
	content, ext, err := s.readUpload(w, r)
	if err != nil {
		return nil, err
	}
	text, err := s.extractor.ExtractBytes(content, ext)
	if err != nil {
		s.logger.Debug("extraction failed, treating as empty text",
			zap.String("ext", ext), zap.Error(err))
		text = ""
	}
	return s.analyzer.Analyze(text, opts), nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	opts := models.AnalyzeOptions{
		Detailed: r.URL.Query().Get("detailed") == "true",
	}
	result, err := s.analyzeUpload(w, r, opts)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("analyze request served",
		zap.String("id", result.ID),
		zap.Bool("detailed", opts.Detailed),
		zap.Bool("analyzed", result.Analyzed()),
	)
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	result, err := s.analyzeUpload(w, r, models.AnalyzeOptions{})
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	md := report.Markdown(result.Suggestions)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.MarkdownFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, md)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"version":        s.version,
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
		"config": map[string]interface{}{
			"max_upload_bytes": s.config.MaxUploadBytes,
		},
	})
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
