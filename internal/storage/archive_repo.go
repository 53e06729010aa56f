package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_archive_store.go -package=mocks arsipku/internal/storage ArchiveStore

import (
	"context"
	"database/sql"
	"fmt"

	"arsipku/internal/model"
)

// archiveColumns is the column list shared by every arsip SELECT.
const archiveColumns = `id, document_number, document_date, sender, recipient, subject,
	classification_code, retention_date, notes, file_path, file_name,
	cloud_file_id, cloud_view_link, cloud_download_link, created_at, updated_at`

// ArchiveStore defines the interface for archive storage operations.
type ArchiveStore interface {
	// List returns all archives ordered by document date, newest first.
	List(ctx context.Context) ([]model.Archive, error)
	// GetByID gets an archive by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (model.Archive, error)
	// FindDuplicate looks for a record matching the canonical duplicate
	// rule: same non-empty document number, or for number-less records
	// the same subject and document date.
	FindDuplicate(ctx context.Context, documentNumber, subject string, documentDate model.Date) (model.Archive, bool, error)
	// Insert stores a new archive. Returns ErrDuplicate on a
	// document-number uniqueness violation.
	Insert(ctx context.Context, a model.Archive) error
	// Update replaces the stored record. Returns ErrNotFound if absent
	// and ErrDuplicate on a uniqueness violation.
	Update(ctx context.Context, a model.Archive) error
	// Delete removes the record. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// ArchiveRepo provides methods for archive operations.
// It implements the ArchiveStore interface.
type ArchiveRepo struct {
	db *sql.DB
}

// NewArchiveRepo creates a new ArchiveRepo.
func NewArchiveRepo(db *sql.DB) *ArchiveRepo {
	return &ArchiveRepo{db: db}
}

// List returns all archives ordered by document date, newest first.
func (r *ArchiveRepo) List(ctx context.Context) ([]model.Archive, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+archiveColumns+" FROM arsip ORDER BY document_date DESC, created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []model.Archive
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return nil, fmt.Errorf("scan archive: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID gets an archive by id.
func (r *ArchiveRepo) GetByID(ctx context.Context, id string) (model.Archive, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+archiveColumns+" FROM arsip WHERE id = ?", id,
	)
	a, err := scanArchive(row)
	if err != nil {
		return model.Archive{}, notFoundIfNoRows(err)
	}
	return a, nil
}

// FindDuplicate looks for a record under the canonical duplicate rule.
func (r *ArchiveRepo) FindDuplicate(ctx context.Context, documentNumber, subject string, documentDate model.Date) (model.Archive, bool, error) {
	var row *sql.Row
	if documentNumber != "" {
		row = r.db.QueryRowContext(ctx,
			"SELECT "+archiveColumns+" FROM arsip WHERE document_number = ?", documentNumber,
		)
	} else {
		row = r.db.QueryRowContext(ctx,
			"SELECT "+archiveColumns+" FROM arsip WHERE document_number = '' AND subject = ? AND document_date = ?",
			subject, documentDate.String(),
		)
	}
	a, err := scanArchive(row)
	if err != nil {
		if notFoundIfNoRows(err) == ErrNotFound {
			return model.Archive{}, false, nil
		}
		return model.Archive{}, false, err
	}
	return a, true, nil
}

// Insert stores a new archive.
func (r *ArchiveRepo) Insert(ctx context.Context, a model.Archive) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO arsip (`+archiveColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.DocumentNumber, a.DocumentDate.String(), a.Sender, a.Recipient, a.Subject,
		a.ClassificationCode, a.RetentionDate.String(), a.Notes, a.FilePath, a.FileName,
		a.CloudFileID, a.CloudViewLink, a.CloudDownloadLink,
		formatStoredTime(a.CreatedAt), formatStoredTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert archive: %w", mapConstraintErr(err))
	}
	return nil
}

// Update replaces the stored record.
func (r *ArchiveRepo) Update(ctx context.Context, a model.Archive) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE arsip SET document_number = ?, document_date = ?, sender = ?, recipient = ?,
		 subject = ?, classification_code = ?, retention_date = ?, notes = ?,
		 file_path = ?, file_name = ?, cloud_file_id = ?, cloud_view_link = ?,
		 cloud_download_link = ?, updated_at = ? WHERE id = ?`,
		a.DocumentNumber, a.DocumentDate.String(), a.Sender, a.Recipient,
		a.Subject, a.ClassificationCode, a.RetentionDate.String(), a.Notes,
		a.FilePath, a.FileName, a.CloudFileID, a.CloudViewLink,
		a.CloudDownloadLink, formatStoredTime(a.UpdatedAt), a.ID,
	)
	if err != nil {
		return fmt.Errorf("update archive: %w", mapConstraintErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record.
func (r *ArchiveRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM arsip WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete archive: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanArchive(s rowScanner) (model.Archive, error) {
	var a model.Archive
	var docDate, retDate, createdAt, updatedAt string

	err := s.Scan(
		&a.ID, &a.DocumentNumber, &docDate, &a.Sender, &a.Recipient, &a.Subject,
		&a.ClassificationCode, &retDate, &a.Notes, &a.FilePath, &a.FileName,
		&a.CloudFileID, &a.CloudViewLink, &a.CloudDownloadLink, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Archive{}, err
	}

	if a.DocumentDate, err = parseStoredDate(docDate); err != nil {
		return model.Archive{}, err
	}
	if a.RetentionDate, err = parseStoredDate(retDate); err != nil {
		return model.Archive{}, err
	}
	if a.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return model.Archive{}, err
	}
	if a.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return model.Archive{}, err
	}
	return a, nil
}
