package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"arsipku/internal/filestore"
	"arsipku/internal/handlers"
)

func newFileRouter(t *testing.T) (*chi.Mux, *filestore.Store) {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("filestore.New error = %v", err)
	}
	h := handlers.NewFileHandler(store)
	r := chi.NewRouter()
	r.Post("/api/files", h.Upload)
	r.Get("/api/files/{path}", h.Download)
	r.Delete("/api/files/{path}", h.Delete)
	return r, store
}

func multipartBody(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("CreateFormFile error = %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestFileHandler_UploadDownloadDelete(t *testing.T) {
	router, _ := newFileRouter(t)

	body, contentType := multipartBody(t, "file", "surat.pdf", "dokumen isi")
	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Upload status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body)
	}

	var uploaded handlers.UploadResponse
	if err := json.NewDecoder(w.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if uploaded.FileName != "surat.pdf" || uploaded.FilePath == "" {
		t.Fatalf("Upload response = %+v", uploaded)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/files/"+uploaded.FilePath, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Download status = %d, want %d", w.Code, http.StatusOK)
	}
	got, _ := io.ReadAll(w.Body)
	if string(got) != "dokumen isi" {
		t.Errorf("Download body = %q", got)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/files/"+uploaded.FilePath, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Delete status = %d, want %d", w.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/files/"+uploaded.FilePath, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Download after delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestFileHandler_Upload_MissingPart(t *testing.T) {
	router, _ := newFileRouter(t)

	body, contentType := multipartBody(t, "attachment", "surat.pdf", "x")
	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Upload status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
