package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"arsipku/internal/handlers"
	"arsipku/internal/model"
	"arsipku/internal/service"
	"arsipku/internal/service/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newArchiveRouter(h *handlers.ArchiveHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/archives", h.List)
	r.Post("/api/archives", h.Create)
	r.Get("/api/archives/{id}", h.Get)
	r.Put("/api/archives/{id}", h.Update)
	r.Delete("/api/archives/{id}", h.Delete)
	r.Get("/api/archives/{id}/page", h.Page)
	return r
}

func TestArchiveHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockArchiveService(ctrl)
	svc.EXPECT().
		Search(gomock.Any(), "klas:005", 2).
		Return(service.SearchResult{
			Items:      []model.Archive{{ID: "a-1", Subject: "Undangan"}},
			Total:      16,
			Page:       2,
			TotalPages: 2,
		}, nil)

	router := newArchiveRouter(handlers.NewArchiveHandler(svc))
	req := httptest.NewRequest(http.MethodGet, "/api/archives?q=klas%3A005&page=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List status = %d, want %d", w.Code, http.StatusOK)
	}

	var result service.SearchResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Total != 16 || result.TotalPages != 2 {
		t.Errorf("List result = %+v", result)
	}
	if len(result.Items) != 1 || result.Items[0].ID != "a-1" {
		t.Errorf("List items = %+v", result.Items)
	}
}

func TestArchiveHandler_List_BadPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newArchiveRouter(handlers.NewArchiveHandler(mocks.NewMockArchiveService(ctrl)))
	req := httptest.NewRequest(http.MethodGet, "/api/archives?page=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("List status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestArchiveHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(svc *mocks.MockArchiveService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"subject":"Undangan rapat","documentDate":"2026-03-10"}`,
			mockSetup: func(svc *mocks.MockArchiveService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Archive{ID: "a-1", Subject: "Undangan rapat"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"subject":`,
			mockSetup:  func(svc *mocks.MockArchiveService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"subject":"","documentDate":"2026-03-10"}`,
			mockSetup: func(svc *mocks.MockArchiveService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Archive{}, &service.ValidationError{Field: "subject", Message: "cannot be empty"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"subject":"Undangan rapat","documentDate":"2026-03-10"}`,
			mockSetup: func(svc *mocks.MockArchiveService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Archive{}, service.ErrDuplicate)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "storage failure",
			body: `{"subject":"Undangan rapat","documentDate":"2026-03-10"}`,
			mockSetup: func(svc *mocks.MockArchiveService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Archive{}, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockArchiveService(ctrl)
			tt.mockSetup(svc)

			router := newArchiveRouter(handlers.NewArchiveHandler(svc))
			req := httptest.NewRequest(http.MethodPost, "/api/archives", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Create status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body)
			}
		})
	}
}

func TestArchiveHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockArchiveService(ctrl)
	svc.EXPECT().Get(gomock.Any(), "missing").Return(model.Archive{}, service.ErrNotFound)

	router := newArchiveRouter(handlers.NewArchiveHandler(svc))
	req := httptest.NewRequest(http.MethodGet, "/api/archives/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Get status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestArchiveHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockArchiveService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "a-1").Return(nil)

	router := newArchiveRouter(handlers.NewArchiveHandler(svc))
	req := httptest.NewRequest(http.MethodDelete, "/api/archives/a-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Delete status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestArchiveHandler_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	docDate, err := model.ParseDate("2026-03-10")
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}
	retention, err := model.ParseDate("2031-03-10")
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}

	svc := mocks.NewMockArchiveService(ctrl)
	svc.EXPECT().Get(gomock.Any(), "a-1").Return(model.Archive{
		ID:             "a-1",
		Subject:        "Laporan keuangan",
		DocumentNumber: "900/KEU/2026",
		DocumentDate:   docDate,
		RetentionDate:  retention,
		Notes:          "# Ringkasan\n\nDisetujui oleh **kepala dinas**.",
	}, nil)

	router := newArchiveRouter(handlers.NewArchiveHandler(svc))
	req := httptest.NewRequest(http.MethodGet, "/api/archives/a-1/page", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Page status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Page content type = %s", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Laporan keuangan") {
		t.Error("Page body missing subject")
	}
	if !strings.Contains(body, "<strong>kepala dinas</strong>") {
		t.Error("Page body missing rendered markdown")
	}
}
