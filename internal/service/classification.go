package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_classification_service.go -package=mocks -mock_names=ClassificationService=MockClassificationService arsipku/internal/service ClassificationService

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"arsipku/internal/classification"
	"arsipku/internal/contextutil"
	"arsipku/internal/model"
	"arsipku/internal/storage"
)

// ClassificationDraft carries the caller-editable fields of a
// classification entry.
type ClassificationDraft struct {
	Code                   string `json:"code"`
	Description            string `json:"description"`
	ActiveRetentionYears   int    `json:"activeRetentionYears"`
	InactiveRetentionYears int    `json:"inactiveRetentionYears"`
}

// ClassificationService provides classification scheme operations.
type ClassificationService interface {
	// List returns all entries in code order.
	List(ctx context.Context) ([]model.Classification, error)
	// Tree groups entries under their three-digit main categories.
	Tree(ctx context.Context) ([]classification.Group, []model.Classification, error)
	// Get returns one entry. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (model.Classification, error)
	// Create validates the draft and stores a new entry. A code
	// already present yields ErrDuplicate.
	Create(ctx context.Context, draft ClassificationDraft) (model.Classification, error)
	// Update re-validates and replaces the entry.
	Update(ctx context.Context, id string, draft ClassificationDraft) (model.Classification, error)
	// Delete removes the entry.
	Delete(ctx context.Context, id string) error
}

type classificationService struct {
	classifications storage.ClassificationStore
	events          EventPublisher
	logger          *slog.Logger
	now             func() time.Time
}

// NewClassificationService creates a new ClassificationService.
func NewClassificationService(classifications storage.ClassificationStore, events EventPublisher) ClassificationService {
	return &classificationService{
		classifications: classifications,
		events:          events,
		logger:          slog.Default(),
		now:             time.Now,
	}
}

func (s *classificationService) List(ctx context.Context) ([]model.Classification, error) {
	items, err := s.classifications.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list classifications")
	}
	classification.SortByCode(items)
	return items, nil
}

func (s *classificationService) Tree(ctx context.Context) ([]classification.Group, []model.Classification, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, orphans := classification.Tree(items)
	return groups, orphans, nil
}

func (s *classificationService) Get(ctx context.Context, id string) (model.Classification, error) {
	c, err := s.classifications.GetByID(ctx, id)
	if err != nil {
		return model.Classification{}, mapStorageErr(err)
	}
	return c, nil
}

func (s *classificationService) Create(ctx context.Context, draft ClassificationDraft) (model.Classification, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateClassificationDraft(draft); err != nil {
		logger.WarnContext(ctx, "classification draft rejected", "error", err)
		return model.Classification{}, err
	}

	now := s.now().UTC()
	rec := model.Classification{
		ID:                     uuid.NewString(),
		Code:                   strings.TrimSpace(draft.Code),
		Description:            strings.TrimSpace(draft.Description),
		ActiveRetentionYears:   draft.ActiveRetentionYears,
		InactiveRetentionYears: draft.InactiveRetentionYears,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.classifications.Insert(ctx, rec); err != nil {
		return model.Classification{}, mapStorageErr(err)
	}

	logger.InfoContext(ctx, "classification created", "id", rec.ID, "code", rec.Code)
	s.publishClassification(model.EventInsert, &rec, nil)
	return rec, nil
}

func (s *classificationService) Update(ctx context.Context, id string, draft ClassificationDraft) (model.Classification, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateClassificationDraft(draft); err != nil {
		logger.WarnContext(ctx, "classification draft rejected", "error", err)
		return model.Classification{}, err
	}

	old, err := s.classifications.GetByID(ctx, id)
	if err != nil {
		return model.Classification{}, mapStorageErr(err)
	}

	rec := old
	rec.Code = strings.TrimSpace(draft.Code)
	rec.Description = strings.TrimSpace(draft.Description)
	rec.ActiveRetentionYears = draft.ActiveRetentionYears
	rec.InactiveRetentionYears = draft.InactiveRetentionYears
	rec.UpdatedAt = s.now().UTC()

	if err := s.classifications.Update(ctx, rec); err != nil {
		return model.Classification{}, mapStorageErr(err)
	}

	logger.InfoContext(ctx, "classification updated", "id", rec.ID, "code", rec.Code)
	s.publishClassification(model.EventUpdate, &rec, &old)
	return rec, nil
}

func (s *classificationService) Delete(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	old, err := s.classifications.GetByID(ctx, id)
	if err != nil {
		return mapStorageErr(err)
	}

	if err := s.classifications.Delete(ctx, id); err != nil {
		return mapStorageErr(err)
	}

	logger.InfoContext(ctx, "classification deleted", "id", id, "code", old.Code)
	s.publishClassification(model.EventDelete, nil, &old)
	return nil
}

func (s *classificationService) publishClassification(typ model.EventType, newRec, oldRec *model.Classification) {
	if s.events == nil {
		return
	}
	var newAny, oldAny any
	if newRec != nil {
		newAny = *newRec
	}
	if oldRec != nil {
		oldAny = *oldRec
	}
	ev, err := model.NewEvent(typ, model.TableClassifications, newAny, oldAny)
	if err != nil {
		s.logger.Error("failed to build change event", "error", err)
		return
	}
	s.events.Publish(ev)
}

func validateClassificationDraft(d ClassificationDraft) error {
	code := strings.TrimSpace(d.Code)
	if code == "" {
		return &ValidationError{Field: "code", Message: "cannot be empty"}
	}
	if !classification.ValidCode(code) {
		return &ValidationError{Field: "code", Message: "must match the NNN.N... pattern"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Message: "cannot be empty"}
	}
	if d.ActiveRetentionYears < 0 || d.InactiveRetentionYears < 0 {
		return &ValidationError{Field: "activeRetentionYears", Message: "retention years cannot be negative"}
	}
	return nil
}
