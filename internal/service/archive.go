package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_archive_service.go -package=mocks -mock_names=ArchiveService=MockArchiveService arsipku/internal/service ArchiveService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collaborators.go -package=mocks arsipku/internal/service EventPublisher,FileRemover

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"arsipku/internal/classification"
	"arsipku/internal/contextutil"
	"arsipku/internal/model"
	"arsipku/internal/query"
	"arsipku/internal/storage"
)

// EventPublisher receives a change event after each successful
// mutation. Implemented by feed.Hub.
type EventPublisher interface {
	Publish(ev model.Event)
}

// FileRemover deletes a stored attachment. Implemented by
// filestore.Store. Failures during archive deletion are logged only.
type FileRemover interface {
	Remove(storedPath string) error
}

// ArchiveDraft carries the caller-editable fields of an archive.
type ArchiveDraft struct {
	DocumentNumber     string     `json:"documentNumber"`
	DocumentDate       model.Date `json:"documentDate"`
	Sender             string     `json:"sender"`
	Recipient          string     `json:"recipient"`
	Subject            string     `json:"subject"`
	ClassificationCode string     `json:"classificationCode"`
	Notes              string     `json:"notes"`
	FilePath           string     `json:"filePath"`
	FileName           string     `json:"fileName"`
	CloudFileID        string     `json:"cloudFileId"`
	CloudViewLink      string     `json:"cloudViewLink"`
	CloudDownloadLink  string     `json:"cloudDownloadLink"`
}

// SearchResult is one page of a filtered archive listing.
type SearchResult struct {
	Items      []model.Archive `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// ArchiveService provides archive record operations.
type ArchiveService interface {
	// List returns all archives, newest document date first.
	List(ctx context.Context) ([]model.Archive, error)
	// Search filters archives with the topbar query syntax and
	// paginates the result.
	Search(ctx context.Context, rawQuery string, page int) (SearchResult, error)
	// Get returns one archive. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (model.Archive, error)
	// Create validates the draft, enforces the duplicate rule, derives
	// the retention date and stores the record.
	Create(ctx context.Context, draft ArchiveDraft) (model.Archive, error)
	// Update re-validates, re-derives retention and replaces the record.
	Update(ctx context.Context, id string, draft ArchiveDraft) (model.Archive, error)
	// Delete removes the record, best-effort deleting its stored file.
	Delete(ctx context.Context, id string) error
}

// archiveService implements ArchiveService.
type archiveService struct {
	archives        storage.ArchiveStore
	classifications storage.ClassificationStore
	files           FileRemover
	events          EventPublisher
	logger          *slog.Logger
	now             func() time.Time
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(
	archives storage.ArchiveStore,
	classifications storage.ClassificationStore,
	files FileRemover,
	events EventPublisher,
) ArchiveService {
	return &archiveService{
		archives:        archives,
		classifications: classifications,
		files:           files,
		events:          events,
		logger:          slog.Default(),
		now:             time.Now,
	}
}

func (s *archiveService) List(ctx context.Context) ([]model.Archive, error) {
	items, err := s.archives.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list archives")
	}
	return items, nil
}

func (s *archiveService) Search(ctx context.Context, rawQuery string, page int) (SearchResult, error) {
	archives, err := s.archives.List(ctx)
	if err != nil {
		return SearchResult{}, WrapError(err, "failed to list archives")
	}
	classifications, err := s.classifications.List(ctx)
	if err != nil {
		return SearchResult{}, WrapError(err, "failed to list classifications")
	}

	filtered := query.Apply(archives, classifications, query.ParseTopbar(rawQuery).Filter(), s.now())
	if page < 1 {
		page = 1
	}
	items, totalPages := query.Paginate(filtered, page, query.PageSize)

	return SearchResult{
		Items:      items,
		Total:      len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *archiveService) Get(ctx context.Context, id string) (model.Archive, error) {
	a, err := s.archives.GetByID(ctx, id)
	if err != nil {
		return model.Archive{}, mapStorageErr(err)
	}
	return a, nil
}

func (s *archiveService) Create(ctx context.Context, draft ArchiveDraft) (model.Archive, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateArchiveDraft(draft); err != nil {
		logger.WarnContext(ctx, "archive draft rejected", "error", err)
		return model.Archive{}, err
	}

	rec := recordFromDraft(draft)

	// Duplicate rule, checked before insert; the document-number
	// unique index backs it up at the database level.
	_, found, err := s.archives.FindDuplicate(ctx, rec.DocumentNumber, rec.Subject, rec.DocumentDate)
	if err != nil {
		return model.Archive{}, WrapError(err, "duplicate check failed")
	}
	if found {
		return model.Archive{}, ErrDuplicate
	}

	now := s.now().UTC()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.RetentionDate = s.deriveRetention(ctx, draft.ClassificationCode, draft.DocumentDate)

	if err := s.archives.Insert(ctx, rec); err != nil {
		return model.Archive{}, mapStorageErr(err)
	}

	logger.InfoContext(ctx, "archive created", "id", rec.ID, "subject", rec.Subject)
	s.publish(model.EventInsert, &rec, nil)
	return rec, nil
}

func (s *archiveService) Update(ctx context.Context, id string, draft ArchiveDraft) (model.Archive, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateArchiveDraft(draft); err != nil {
		logger.WarnContext(ctx, "archive draft rejected", "error", err)
		return model.Archive{}, err
	}

	old, err := s.archives.GetByID(ctx, id)
	if err != nil {
		return model.Archive{}, mapStorageErr(err)
	}

	rec := recordFromDraft(draft)
	rec.ID = old.ID
	rec.CreatedAt = old.CreatedAt
	rec.UpdatedAt = s.now().UTC()
	rec.RetentionDate = s.deriveRetention(ctx, draft.ClassificationCode, draft.DocumentDate)

	if err := s.archives.Update(ctx, rec); err != nil {
		return model.Archive{}, mapStorageErr(err)
	}

	logger.InfoContext(ctx, "archive updated", "id", rec.ID)
	s.publish(model.EventUpdate, &rec, &old)
	return rec, nil
}

func (s *archiveService) Delete(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	old, err := s.archives.GetByID(ctx, id)
	if err != nil {
		return mapStorageErr(err)
	}

	// Best-effort: a failed file removal never blocks the deletion.
	if old.FilePath != "" && s.files != nil {
		if err := s.files.Remove(old.FilePath); err != nil {
			logger.WarnContext(ctx, "failed to remove stored file", "path", old.FilePath, "error", err)
		}
	}

	if err := s.archives.Delete(ctx, id); err != nil {
		return mapStorageErr(err)
	}

	logger.InfoContext(ctx, "archive deleted", "id", id)
	s.publish(model.EventDelete, nil, &old)
	return nil
}

// deriveRetention computes the retention date from the classification
// match, falling back to the 5-year default for unmatched codes.
func (s *archiveService) deriveRetention(ctx context.Context, code string, docDate model.Date) model.Date {
	years := classification.DefaultRetentionYears
	if code != "" {
		if c, err := s.classifications.GetByCode(ctx, code); err == nil {
			years = c.ActiveRetentionYears
		}
	}
	return classification.RetentionDate(docDate, years)
}

func (s *archiveService) publish(typ model.EventType, newRec, oldRec *model.Archive) {
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
	ev, err := model.NewEvent(typ, model.TableArchives, newAny, oldAny)
	if err != nil {
		s.logger.Error("failed to build change event", "error", err)
		return
	}
	s.events.Publish(ev)
}

func recordFromDraft(d ArchiveDraft) model.Archive {
	return model.Archive{
		DocumentNumber:     strings.TrimSpace(d.DocumentNumber),
		DocumentDate:       d.DocumentDate,
		Sender:             strings.TrimSpace(d.Sender),
		Recipient:          strings.TrimSpace(d.Recipient),
		Subject:            strings.TrimSpace(d.Subject),
		ClassificationCode: strings.TrimSpace(d.ClassificationCode),
		Notes:              d.Notes,
		FilePath:           d.FilePath,
		FileName:           d.FileName,
		CloudFileID:        d.CloudFileID,
		CloudViewLink:      d.CloudViewLink,
		CloudDownloadLink:  d.CloudDownloadLink,
	}
}

func validateArchiveDraft(d ArchiveDraft) error {
	if strings.TrimSpace(d.Subject) == "" {
		return &ValidationError{Field: "subject", Message: "cannot be empty"}
	}
	if d.DocumentDate.IsZero() {
		return &ValidationError{Field: "documentDate", Message: "must be a valid date"}
	}
	if code := strings.TrimSpace(d.ClassificationCode); code != "" && !classification.ValidCode(code) {
		return &ValidationError{Field: "classificationCode", Message: "must match the NNN.N... pattern"}
	}
	hasStored := d.FilePath != "" || d.FileName != ""
	hasCloud := d.CloudFileID != "" || d.CloudViewLink != "" || d.CloudDownloadLink != ""
	if hasStored && hasCloud {
		return &ValidationError{Field: "filePath", Message: "stored file and cloud link are mutually exclusive"}
	}
	for field, link := range map[string]string{
		"cloudViewLink":     d.CloudViewLink,
		"cloudDownloadLink": d.CloudDownloadLink,
	} {
		if link == "" {
			continue
		}
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ValidationError{Field: field, Message: "must be an absolute http(s) URL"}
		}
	}
	return nil
}

// IsDuplicate reports whether an error is the duplicate-record
// condition, however deep it is wrapped.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
