package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_classification_store.go -package=mocks arsipku/internal/storage ClassificationStore

import (
	"context"
	"database/sql"
	"fmt"

	"arsipku/internal/model"
)

const classificationColumns = `id, code, description, active_retention_years,
	inactive_retention_years, created_at, updated_at`

// ClassificationStore defines the interface for classification storage
// operations.
type ClassificationStore interface {
	// List returns all classifications ordered by code. The textual
	// ORDER BY is approximate; numeric-aware ordering is applied by the
	// classification engine where it matters.
	List(ctx context.Context) ([]model.Classification, error)
	// GetByID gets a classification by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (model.Classification, error)
	// GetByCode gets a classification by exact code.
	GetByCode(ctx context.Context, code string) (model.Classification, error)
	// Insert stores a new classification. Returns ErrDuplicate when the
	// code already exists.
	Insert(ctx context.Context, c model.Classification) error
	// Update replaces the stored record. Returns ErrNotFound if absent
	// and ErrDuplicate when the new code collides.
	Update(ctx context.Context, c model.Classification) error
	// Delete removes the record. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// ClassificationRepo provides methods for classification operations.
// It implements the ClassificationStore interface.
type ClassificationRepo struct {
	db *sql.DB
}

// NewClassificationRepo creates a new ClassificationRepo.
func NewClassificationRepo(db *sql.DB) *ClassificationRepo {
	return &ClassificationRepo{db: db}
}

// List returns all classifications ordered by code.
func (r *ClassificationRepo) List(ctx context.Context) ([]model.Classification, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+classificationColumns+" FROM klasifikasi ORDER BY code",
	)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []model.Classification
	for rows.Next() {
		c, err := scanClassification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID gets a classification by id.
func (r *ClassificationRepo) GetByID(ctx context.Context, id string) (model.Classification, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+classificationColumns+" FROM klasifikasi WHERE id = ?", id,
	)
	c, err := scanClassification(row)
	if err != nil {
		return model.Classification{}, notFoundIfNoRows(err)
	}
	return c, nil
}

// GetByCode gets a classification by exact code.
func (r *ClassificationRepo) GetByCode(ctx context.Context, code string) (model.Classification, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+classificationColumns+" FROM klasifikasi WHERE code = ?", code,
	)
	c, err := scanClassification(row)
	if err != nil {
		return model.Classification{}, notFoundIfNoRows(err)
	}
	return c, nil
}

// Insert stores a new classification.
func (r *ClassificationRepo) Insert(ctx context.Context, c model.Classification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO klasifikasi (`+classificationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Code, c.Description, c.ActiveRetentionYears,
		c.InactiveRetentionYears, formatStoredTime(c.CreatedAt), formatStoredTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert classification: %w", mapConstraintErr(err))
	}
	return nil
}

// Update replaces the stored record.
func (r *ClassificationRepo) Update(ctx context.Context, c model.Classification) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE klasifikasi SET code = ?, description = ?, active_retention_years = ?,
		 inactive_retention_years = ?, updated_at = ? WHERE id = ?`,
		c.Code, c.Description, c.ActiveRetentionYears,
		c.InactiveRetentionYears, formatStoredTime(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return fmt.Errorf("update classification: %w", mapConstraintErr(err))
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
func (r *ClassificationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM klasifikasi WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete classification: %w", err)
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

func scanClassification(s rowScanner) (model.Classification, error) {
	var c model.Classification
	var createdAt, updatedAt string

	err := s.Scan(
		&c.ID, &c.Code, &c.Description, &c.ActiveRetentionYears,
		&c.InactiveRetentionYears, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Classification{}, err
	}

	if c.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return model.Classification{}, err
	}
	if c.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return model.Classification{}, err
	}
	return c, nil
}
