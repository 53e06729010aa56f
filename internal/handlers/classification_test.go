package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"arsipku/internal/classification"
	"arsipku/internal/handlers"
	"arsipku/internal/model"
	"arsipku/internal/service"
	"arsipku/internal/service/mocks"
)

func newClassificationRouter(h *handlers.ClassificationHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/classifications", h.List)
	r.Get("/api/classifications/tree", h.Tree)
	r.Post("/api/classifications", h.Create)
	r.Get("/api/classifications/{id}", h.Get)
	r.Put("/api/classifications/{id}", h.Update)
	r.Delete("/api/classifications/{id}", h.Delete)
	return r
}

func TestClassificationHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockClassificationService(ctrl)
	svc.EXPECT().List(gomock.Any()).Return([]model.Classification{
		{ID: "c-1", Code: "005", Description: "Undangan"},
	}, nil)

	router := newClassificationRouter(handlers.NewClassificationHandler(svc))
	req := httptest.NewRequest(http.MethodGet, "/api/classifications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List status = %d, want %d", w.Code, http.StatusOK)
	}

	var items []model.Classification
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Code != "005" {
		t.Errorf("List items = %+v", items)
	}
}

func TestClassificationHandler_Tree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockClassificationService(ctrl)
	svc.EXPECT().Tree(gomock.Any()).Return([]classification.Group{
		{
			Main:     model.Classification{Code: "005"},
			Children: []model.Classification{{Code: "005.1"}},
		},
	}, nil, nil)

	router := newClassificationRouter(handlers.NewClassificationHandler(svc))
	req := httptest.NewRequest(http.MethodGet, "/api/classifications/tree", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Tree status = %d, want %d", w.Code, http.StatusOK)
	}

	var tree handlers.TreeResponse
	if err := json.NewDecoder(w.Body).Decode(&tree); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(tree.Groups) != 1 || tree.Groups[0].Main.Code != "005" {
		t.Errorf("Tree groups = %+v", tree.Groups)
	}
}

func TestClassificationHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(svc *mocks.MockClassificationService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"code":"005","description":"Undangan","activeRetentionYears":2}`,
			mockSetup: func(svc *mocks.MockClassificationService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Classification{ID: "c-1", Code: "005"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate code",
			body: `{"code":"005","description":"Undangan"}`,
			mockSetup: func(svc *mocks.MockClassificationService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Classification{}, service.ErrDuplicate)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed body",
			body:       `{`,
			mockSetup:  func(svc *mocks.MockClassificationService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockClassificationService(ctrl)
			tt.mockSetup(svc)

			router := newClassificationRouter(handlers.NewClassificationHandler(svc))
			req := httptest.NewRequest(http.MethodPost, "/api/classifications", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Create status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body)
			}
		})
	}
}

func TestClassificationHandler_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockClassificationService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "missing").Return(service.ErrNotFound)

	router := newClassificationRouter(handlers.NewClassificationHandler(svc))
	req := httptest.NewRequest(http.MethodDelete, "/api/classifications/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
