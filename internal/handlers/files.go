package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arsipku/internal/contextutil"
	"arsipku/internal/filestore"
)

// maxUploadBytes bounds a single attachment upload.
const maxUploadBytes = 32 << 20

// FileHandler handles attachment uploads and downloads.
type FileHandler struct {
	files *filestore.Store
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(files *filestore.Store) *FileHandler {
	return &FileHandler{files: files}
}

// UploadResponse describes a stored attachment.
type UploadResponse struct {
	FilePath string `json:"filePath"`
	FileName string `json:"fileName"`
}

// Upload handles POST /api/files. Expects a multipart form with a
// single "file" part and returns the stored path for the archive
// record to reference.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "invalid upload", "error", err)
		writeError(w, http.StatusBadRequest, "Expected a multipart form with a file part")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	storedPath, fileName, err := h.files.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, filestore.ErrInvalidPath) {
			writeError(w, http.StatusBadRequest, "Invalid file name")
			return
		}
		logger.ErrorContext(ctx, "failed to store upload", "name", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	logger.InfoContext(ctx, "file stored", "path", storedPath, "name", fileName)
	writeJSON(w, http.StatusCreated, UploadResponse{FilePath: storedPath, FileName: fileName})
}

// Download handles GET /api/files/{path}, streaming the stored file.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	storedPath := chi.URLParam(r, "path")
	f, err := h.files.Open(storedPath)
	if err != nil {
		if errors.Is(err, filestore.ErrInvalidPath) {
			writeError(w, http.StatusBadRequest, "Invalid file path")
			return
		}
		writeError(w, http.StatusNotFound, "File not found")
		return
	}
	defer func() {
		_ = f.Close()
	}()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, f); err != nil {
		logger.WarnContext(ctx, "download interrupted", "path", storedPath, "error", err)
	}
}

// Delete handles DELETE /api/files/{path}.
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	storedPath := chi.URLParam(r, "path")
	if err := h.files.Remove(storedPath); err != nil {
		if errors.Is(err, filestore.ErrInvalidPath) {
			writeError(w, http.StatusBadRequest, "Invalid file path")
			return
		}
		logger.ErrorContext(ctx, "failed to remove file", "path", storedPath, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to remove file")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
