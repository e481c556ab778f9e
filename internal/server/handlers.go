package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/output"
)

func (s *Server) handleListFiles(w http.ResponseWriter, _ *http.Request) {
	files, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	name, err := s.store.Save(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info().Str("file", name).Int64("size", header.Size).Msg("upload stored")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "file": name})
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(name); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "file not found"})
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info().Str("file", name).Msg("upload deleted")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.File) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "parameter file is required"})
		return
	}

	path, err := s.store.Path(req.File)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "file not found"})
		return
	}

	res, err := excel2vcf.Convert(path, req.options())
	if err != nil {
		s.logger.Warn().Str("file", req.File).Err(err).Msg("conversion failed")
		writeConvertError(w, err)
		return
	}

	outName := strings.TrimSuffix(req.File, filepath.Ext(req.File)) + output.VCardExt
	if err := output.WriteVCardFile(filepath.Join(s.cfg.ExportsDir, outName), res.Cards); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info().Str("file", req.File).Str("export", outName).Int("contacts", res.Count).Msg("vcf generated")
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"file":  "/exports/" + outName,
		"count": res.Count,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	base := filepath.Base(name)
	if name == "" || base != name {
		http.NotFound(w, r)
		return
	}
	path := filepath.Join(s.cfg.ExportsDir, base)
	if strings.EqualFold(filepath.Ext(base), output.VCardExt) {
		w.Header().Set("Content-Type", output.VCardContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+base+`"`)
	}
	serveFile(w, r, path)
}

// handleStatic serves files from the public directory and falls back to
// index.html for any other page.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(filepath.Clean("/"+chi.URLParam(r, "*")), "/")
	if rel != "" {
		path := filepath.Join(s.cfg.PublicDir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			serveFile(w, r, path)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	serveFile(w, r, filepath.Join(s.cfg.PublicDir, "index.html"))
}

// serveFile writes a regular file, or 404 when it is missing.
func serveFile(w http.ResponseWriter, r *http.Request, path string) {
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// writeConvertError maps conversion errors to HTTP statuses.
func writeConvertError(w http.ResponseWriter, err error) {
	var cfgErr *excel2vcf.ConfigError
	switch {
	case errors.Is(err, excel2vcf.ErrFileNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "file not found"})
	case errors.Is(err, excel2vcf.ErrEmptyGrid):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empty sheet"})
	case errors.Is(err, excel2vcf.ErrNoRecords):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no contacts generated"})
	case errors.As(err, &cfgErr), errors.Is(err, excel2vcf.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
