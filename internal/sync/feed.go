package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"arsipku/internal/model"
	"arsipku/internal/store"
)

// SnapshotRemote fetches full table listings for the initial load.
// Implemented by gateway.Client.
type SnapshotRemote interface {
	ListArchives(ctx context.Context) ([]model.Archive, error)
	ListClassifications(ctx context.Context) ([]model.Classification, error)
}

// Applier merges change-feed events into the local stores. Events for
// records with a mutation still in flight are skipped; the pending
// confirm or rollback is the authority for those.
type Applier struct {
	archives        *store.Store[model.Archive]
	classifications *store.Store[model.Classification]
	logger          *slog.Logger
}

// NewApplier creates a new Applier over the two stores.
func NewApplier(archives *store.Store[model.Archive], classifications *store.Store[model.Classification]) *Applier {
	return &Applier{
		archives:        archives,
		classifications: classifications,
		logger:          slog.Default(),
	}
}

// Refresh replaces both stores with fresh server listings.
func (a *Applier) Refresh(ctx context.Context, remote SnapshotRemote) error {
	archives, err := remote.ListArchives(ctx)
	if err != nil {
		return fmt.Errorf("refresh archives: %w", err)
	}
	classifications, err := remote.ListClassifications(ctx)
	if err != nil {
		return fmt.Errorf("refresh classifications: %w", err)
	}

	a.archives.Replace(archives)
	a.classifications.Replace(classifications)
	return nil
}

// Apply merges one change event. Unknown tables and malformed
// payloads are logged and dropped, never fatal.
func (a *Applier) Apply(ev model.Event) {
	switch ev.Table {
	case model.TableArchives:
		applyEvent(a, ev, a.archives, func(rec model.Archive) string { return rec.ID })
	case model.TableClassifications:
		applyEvent(a, ev, a.classifications, func(rec model.Classification) string { return rec.ID })
	default:
		a.logger.Warn("event for unknown table dropped", "table", ev.Table)
	}
}

func applyEvent[T any](a *Applier, ev model.Event, s *store.Store[T], id func(T) string) {
	switch ev.Type {
	case model.EventInsert, model.EventUpdate:
		rec, err := decodePayload[T](ev.New)
		if err != nil {
			a.logger.Warn("malformed event payload dropped", "table", ev.Table, "type", ev.Type, "error", err)
			return
		}
		s.MergeRemote(rec)
	case model.EventDelete:
		rec, err := decodePayload[T](ev.Old)
		if err != nil {
			a.logger.Warn("malformed event payload dropped", "table", ev.Table, "type", ev.Type, "error", err)
			return
		}
		s.RemoveRemote(id(rec))
	default:
		a.logger.Warn("event of unknown type dropped", "type", ev.Type)
	}
}

func decodePayload[T any](raw json.RawMessage) (T, error) {
	var rec T
	if len(raw) == 0 {
		return rec, fmt.Errorf("empty payload")
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}
