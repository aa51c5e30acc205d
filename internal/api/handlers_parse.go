package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/dgallion1/resumeparse/internal/parser"
	"github.com/dgallion1/resumeparse/internal/record"
	"github.com/dgallion1/resumeparse/internal/resume"
	"golang.org/x/sync/errgroup"
)

type parseResponse struct {
	Filename string         `json:"filename,omitempty"`
	Record   *record.Record `json:"record,omitempty"`
	Stats    *resume.Stats  `json:"stats,omitempty"`
	Error    string         `json:"error,omitempty"`
}

type tokensRequest struct {
	Tokens []layout.Token `json:"tokens"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := s.readLimited(file)
	if err != nil {
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	rec, stats, err := s.orchestrator.Worker().ParseFile(filename, data)
	if err != nil {
		s.log.Warn("parse failed", "filename", filename, "error", err)
		jsonError(w, err.Error(), decodeErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{Filename: filename, Record: &rec, Stats: &stats})
}

func (s *Server) handleParseTokens(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req tokensRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	rec, stats := s.orchestrator.Worker().ParseTokens(req.Tokens)
	writeJSON(w, http.StatusOK, parseResponse{Record: &rec, Stats: &stats})
}

func (s *Server) handleParseBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*int64(s.cfg.MaxBatchFiles)+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}
	if len(files) > s.cfg.MaxBatchFiles {
		jsonError(w, fmt.Sprintf("too many files (max %d)", s.cfg.MaxBatchFiles), http.StatusBadRequest)
		return
	}

	results := make([]parseResponse, len(files))
	g, gctx := errgroup.WithContext(r.Context())
	g.SetLimit(s.cfg.MaxConcurrentParse)
	for i, fh := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = parseResponse{Filename: sanitizeFilename(fh.Filename), Error: err.Error()}
				return nil
			}
			results[i] = s.parseUpload(fh)
			return nil
		})
	}
	_ = g.Wait()

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// parseUpload parses one batch member; failures are reported in the result.
func (s *Server) parseUpload(fh *multipart.FileHeader) parseResponse {
	filename := sanitizeFilename(fh.Filename)
	if !parser.IsSupportedExtension(filename) {
		return parseResponse{Filename: filename, Error: fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename))}
	}

	f, err := fh.Open()
	if err != nil {
		return parseResponse{Filename: filename, Error: "failed to open file"}
	}
	data, err := s.readLimited(f)
	f.Close()
	if err != nil {
		return parseResponse{Filename: filename, Error: err.Error()}
	}

	rec, stats, err := s.orchestrator.Worker().ParseFile(filename, data)
	if err != nil {
		return parseResponse{Filename: filename, Error: err.Error()}
	}
	return parseResponse{Filename: filename, Record: &rec, Stats: &stats}
}

// readLimited reads an upload, rejecting anything over MaxUploadBytes.
func (s *Server) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}
	return data, nil
}

func decodeErrorStatus(err error) int {
	switch {
	case errors.Is(err, parser.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, parser.ErrTooManyPages):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
