// Package sync drives optimistic updates against the gateway: each
// mutation lands in the local store first, then is confirmed or
// rolled back on the remote outcome. The feed applier merges change
// events from other sessions into the same stores.
package sync

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_remotes.go -package=mocks arsipku/internal/sync ArchiveRemote,ClassificationRemote,SnapshotRemote

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

// ArchiveRemote is the remote half of the archive sync protocol.
// Implemented by gateway.Client.
type ArchiveRemote interface {
	CreateArchive(ctx context.Context, draft service.ArchiveDraft) (model.Archive, error)
	UpdateArchive(ctx context.Context, id string, draft service.ArchiveDraft) (model.Archive, error)
	DeleteArchive(ctx context.Context, id string) error
	RemoveFile(ctx context.Context, storedPath string) error
}

// ErrDuplicate mirrors the server's duplicate rule for the advisory
// local pre-check.
var ErrDuplicate = service.ErrDuplicate

// ArchiveSyncer applies archive mutations optimistically.
type ArchiveSyncer struct {
	archives        *store.Store[model.Archive]
	classifications *store.Store[model.Classification]
	remote          ArchiveRemote
	logger          *slog.Logger
	now             func() time.Time
}

// NewArchiveSyncer creates a new ArchiveSyncer.
func NewArchiveSyncer(
	archives *store.Store[model.Archive],
	classifications *store.Store[model.Classification],
	remote ArchiveRemote,
) *ArchiveSyncer {
	return &ArchiveSyncer{
		archives:        archives,
		classifications: classifications,
		remote:          remote,
		logger:          slog.Default(),
		now:             time.Now,
	}
}

// Create inserts the draft locally and confirms it remotely. A local
// record matching the duplicate rule aborts before anything is shown.
func (s *ArchiveSyncer) Create(ctx context.Context, draft service.ArchiveDraft) (string, error) {
	if s.findLocalDuplicate(draft) {
		return "", ErrDuplicate
	}

	optimistic := s.optimisticRecord(draft)
	tempID := s.archives.AddOptimistic(optimistic)

	server, err := s.remote.CreateArchive(ctx, draft)
	if err != nil {
		s.archives.RollbackAdd(tempID)
		s.logger.WarnContext(ctx, "archive create rolled back", "temp_id", tempID, "error", err)
		return "", err
	}

	s.archives.ConfirmAdd(tempID, server)
	return server.ID, nil
}

// Update patches the record locally and confirms it remotely,
// restoring the snapshot on failure.
func (s *ArchiveSyncer) Update(ctx context.Context, id string, draft service.ArchiveDraft) error {
	original, ok := s.archives.Get(id)
	if !ok {
		return service.ErrNotFound
	}

	patched := s.optimisticRecord(draft)
	s.archives.UpdateOptimistic(id, func(current model.Archive) model.Archive {
		patched.ID = current.ID
		patched.CreatedAt = current.CreatedAt
		patched.UpdatedAt = s.now().UTC()
		return patched
	})

	server, err := s.remote.UpdateArchive(ctx, id, draft)
	if err != nil {
		s.archives.RollbackUpdate(id, original)
		s.logger.WarnContext(ctx, "archive update rolled back", "id", id, "error", err)
		return err
	}

	s.archives.ConfirmUpdate(id, server)
	return nil
}

// Delete removes the record locally and confirms it remotely. The
// stored file, if any, is removed best-effort after the delete lands.
func (s *ArchiveSyncer) Delete(ctx context.Context, id string) error {
	snapshot, ok := s.archives.DeleteOptimistic(id)
	if !ok {
		return service.ErrNotFound
	}

	if err := s.remote.DeleteArchive(ctx, id); err != nil {
		s.archives.RollbackDelete(snapshot)
		s.logger.WarnContext(ctx, "archive delete rolled back", "id", id, "error", err)
		return err
	}
	s.archives.ConfirmDelete(id)

	if snapshot.FilePath != "" {
		if err := s.remote.RemoveFile(ctx, snapshot.FilePath); err != nil {
			s.logger.WarnContext(ctx, "failed to remove stored file", "path", snapshot.FilePath, "error", err)
		}
	}
	return nil
}

// SuggestClassification derives a classification code suggestion for
// the archive form from a typed document number, matched against the
// locally known codes. Returns "" when nothing matches.
func (s *ArchiveSyncer) SuggestClassification(documentNumber string) string {
	return classification.IdentifyFromDocumentNumber(documentNumber, s.classifications.Items())
}

// optimisticRecord builds the locally shown record, with the same
// retention derivation the server applies.
func (s *ArchiveSyncer) optimisticRecord(draft service.ArchiveDraft) model.Archive {
	years := classification.DefaultRetentionYears
	code := strings.TrimSpace(draft.ClassificationCode)
	if code != "" {
		if match, ok := classification.FindByCode(s.classifications.Items(), code); ok {
			years = match.ActiveRetentionYears
		}
	}

	now := s.now().UTC()
	return model.Archive{
		DocumentNumber:     strings.TrimSpace(draft.DocumentNumber),
		DocumentDate:       draft.DocumentDate,
		Sender:             strings.TrimSpace(draft.Sender),
		Recipient:          strings.TrimSpace(draft.Recipient),
		Subject:            strings.TrimSpace(draft.Subject),
		ClassificationCode: code,
		RetentionDate:      classification.RetentionDate(draft.DocumentDate, years),
		Notes:              draft.Notes,
		FilePath:           draft.FilePath,
		FileName:           draft.FileName,
		CloudFileID:        draft.CloudFileID,
		CloudViewLink:      draft.CloudViewLink,
		CloudDownloadLink:  draft.CloudDownloadLink,
		CreatedAt:          now,
		UpdatedAt:          now,
		Optimistic:         true,
	}
}

// findLocalDuplicate applies the duplicate rule against the local
// store: same non-empty document number, or same subject and date
// when the number is empty.
func (s *ArchiveSyncer) findLocalDuplicate(draft service.ArchiveDraft) bool {
	number := strings.TrimSpace(draft.DocumentNumber)
	subject := strings.TrimSpace(draft.Subject)
	for _, a := range s.archives.Items() {
		if number != "" {
			if a.DocumentNumber == number {
				return true
			}
			continue
		}
		if a.DocumentNumber == "" && a.Subject == subject && a.DocumentDate.Equal(draft.DocumentDate.Time) {
			return true
		}
	}
	return false
}
