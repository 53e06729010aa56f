package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arsipku/internal/classification"
	"arsipku/internal/contextutil"
	"arsipku/internal/model"
	"arsipku/internal/service"
)

// ClassificationHandler handles HTTP requests for the classification
// scheme.
type ClassificationHandler struct {
	classifications service.ClassificationService
}

// NewClassificationHandler creates a new ClassificationHandler.
func NewClassificationHandler(classifications service.ClassificationService) *ClassificationHandler {
	return &ClassificationHandler{classifications: classifications}
}

// TreeResponse is the grouped classification listing.
type TreeResponse struct {
	Groups  []classification.Group `json:"groups"`
	Orphans []model.Classification `json:"orphans,omitempty"`
}

// List handles GET /api/classifications.
func (h *ClassificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.classifications.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list classifications")
		return
	}
	if items == nil {
		items = []model.Classification{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Tree handles GET /api/classifications/tree.
func (h *ClassificationHandler) Tree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groups, orphans, err := h.classifications.Tree(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to build classification tree")
		return
	}
	if groups == nil {
		groups = []classification.Group{}
	}
	writeJSON(w, http.StatusOK, TreeResponse{Groups: groups, Orphans: orphans})
}

// Get handles GET /api/classifications/{id}.
func (h *ClassificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := h.classifications.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load classification")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create handles POST /api/classifications.
func (h *ClassificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var draft service.ClassificationDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.classifications.Create(ctx, draft)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create classification")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PUT /api/classifications/{id}.
func (h *ClassificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var draft service.ClassificationDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.classifications.Update(ctx, chi.URLParam(r, "id"), draft)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update classification")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/classifications/{id}.
func (h *ClassificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.classifications.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete classification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
