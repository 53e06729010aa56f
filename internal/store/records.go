package store

import (
	"time"

	"arsipku/internal/classification"
	"arsipku/internal/model"
)

// NewArchives builds the archive collection store. Canonical order is
// descending by document date.
func NewArchives() *Store[model.Archive] {
	return New(Options[model.Archive]{
		ID:        func(a model.Archive) string { return a.ID },
		UpdatedAt: func(a model.Archive) time.Time { return a.UpdatedAt },
		WithID: func(a model.Archive, id string) model.Archive {
			a.ID = id
			return a
		},
		WithOptimistic: func(a model.Archive, v bool) model.Archive {
			a.Optimistic = v
			return a
		},
		Less: func(a, b model.Archive) bool {
			return a.DocumentDate.After(b.DocumentDate.Time)
		},
	})
}

// NewClassifications builds the classification collection store.
// Canonical order is ascending by numeric-aware code comparison.
func NewClassifications() *Store[model.Classification] {
	return New(Options[model.Classification]{
		ID:        func(c model.Classification) string { return c.ID },
		UpdatedAt: func(c model.Classification) time.Time { return c.UpdatedAt },
		WithID: func(c model.Classification, id string) model.Classification {
			c.ID = id
			return c
		},
		WithOptimistic: func(c model.Classification, v bool) model.Classification {
			c.Optimistic = v
			return c
		},
		Less: func(a, b model.Classification) bool {
			return classification.CompareCodes(a.Code, b.Code) < 0
		},
	})
}
