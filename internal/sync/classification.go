package sync

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"arsipku/internal/classification"
	"arsipku/internal/model"
	"arsipku/internal/service"
	"arsipku/internal/store"
)

// ClassificationRemote is the remote half of the classification sync
// protocol. Implemented by gateway.Client.
type ClassificationRemote interface {
	CreateClassification(ctx context.Context, draft service.ClassificationDraft) (model.Classification, error)
	UpdateClassification(ctx context.Context, id string, draft service.ClassificationDraft) (model.Classification, error)
	DeleteClassification(ctx context.Context, id string) error
}

// ClassificationSyncer applies classification mutations optimistically.
type ClassificationSyncer struct {
	classifications *store.Store[model.Classification]
	remote          ClassificationRemote
	logger          *slog.Logger
	now             func() time.Time
}

// NewClassificationSyncer creates a new ClassificationSyncer.
func NewClassificationSyncer(classifications *store.Store[model.Classification], remote ClassificationRemote) *ClassificationSyncer {
	return &ClassificationSyncer{
		classifications: classifications,
		remote:          remote,
		logger:          slog.Default(),
		now:             time.Now,
	}
}

// Create inserts the entry locally and confirms it remotely. An
// existing local code aborts before anything is shown.
func (s *ClassificationSyncer) Create(ctx context.Context, draft service.ClassificationDraft) (string, error) {
	code := strings.TrimSpace(draft.Code)
	if _, ok := classification.FindByCode(s.classifications.Items(), code); ok {
		return "", ErrDuplicate
	}

	now := s.now().UTC()
	tempID := s.classifications.AddOptimistic(model.Classification{
		Code:                   code,
		Description:            strings.TrimSpace(draft.Description),
		ActiveRetentionYears:   draft.ActiveRetentionYears,
		InactiveRetentionYears: draft.InactiveRetentionYears,
		CreatedAt:              now,
		UpdatedAt:              now,
		Optimistic:             true,
	})

	server, err := s.remote.CreateClassification(ctx, draft)
	if err != nil {
		s.classifications.RollbackAdd(tempID)
		s.logger.WarnContext(ctx, "classification create rolled back", "temp_id", tempID, "error", err)
		return "", err
	}

	s.classifications.ConfirmAdd(tempID, server)
	return server.ID, nil
}

// Update patches the entry locally and confirms it remotely,
// restoring the snapshot on failure.
func (s *ClassificationSyncer) Update(ctx context.Context, id string, draft service.ClassificationDraft) error {
	original, ok := s.classifications.Get(id)
	if !ok {
		return service.ErrNotFound
	}

	s.classifications.UpdateOptimistic(id, func(current model.Classification) model.Classification {
		current.Code = strings.TrimSpace(draft.Code)
		current.Description = strings.TrimSpace(draft.Description)
		current.ActiveRetentionYears = draft.ActiveRetentionYears
		current.InactiveRetentionYears = draft.InactiveRetentionYears
		current.UpdatedAt = s.now().UTC()
		current.Optimistic = true
		return current
	})

	server, err := s.remote.UpdateClassification(ctx, id, draft)
	if err != nil {
		s.classifications.RollbackUpdate(id, original)
		s.logger.WarnContext(ctx, "classification update rolled back", "id", id, "error", err)
		return err
	}

	s.classifications.ConfirmUpdate(id, server)
	return nil
}

// Delete removes the entry locally and confirms it remotely.
func (s *ClassificationSyncer) Delete(ctx context.Context, id string) error {
	snapshot, ok := s.classifications.DeleteOptimistic(id)
	if !ok {
		return service.ErrNotFound
	}

	if err := s.remote.DeleteClassification(ctx, id); err != nil {
		s.classifications.RollbackDelete(snapshot)
		s.logger.WarnContext(ctx, "classification delete rolled back", "id", id, "error", err)
		return err
	}
	s.classifications.ConfirmDelete(id)
	return nil
}
