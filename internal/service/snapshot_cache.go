package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/google/uuid"
)

// SnapshotCache is the durable copy of the last successful decryption that
// the report surface reads from.
type SnapshotCache struct {
	snapshots store.SnapshotRepository

	logger *logger.Logger
}

func NewSnapshotCache(snapshots store.SnapshotRepository, logger *logger.Logger) *SnapshotCache {
	return &SnapshotCache{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Current returns the stored snapshot. Total and DecryptedAt are nil when the
// session never decrypted.
func (c *SnapshotCache) Current(ctx context.Context, sessionID uuid.UUID) (models.Snapshot, error) {
	snapshot, err := c.snapshots.GetSnapshot(ctx, sessionID)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return snapshot, nil
}

// Store replaces the snapshot. A full cache is reported as
// ErrCacheCapacityExceeded and leaves the previous snapshot in place.
func (c *SnapshotCache) Store(ctx context.Context, snapshot models.Snapshot) error {
	err := c.snapshots.SaveSnapshot(ctx, snapshot)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrStorageFull):
		c.logger.Warn().
			Str("func", "SnapshotCache.Store").
			Str("session_id", snapshot.SessionID.String()).
			Int("records", len(snapshot.Records)).
			Msg("snapshot cache is full, snapshot not persisted")
		return fmt.Errorf("%w: %w", ErrCacheCapacityExceeded, err)
	default:
		return fmt.Errorf("persist snapshot: %w", err)
	}
}

// Clear drops the snapshot of the session.
func (c *SnapshotCache) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := c.snapshots.DeleteSnapshot(ctx, sessionID); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
