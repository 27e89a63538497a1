package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/crypto"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
)

// memoryRecordCapacity bounds the in-memory snapshot cache.
const memoryRecordCapacity = 100_000

// ClientStorages groups all client-side repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Sessions persists connected sessions.
	Sessions SessionRepository
	// Snapshots persists the last decrypted snapshot of each session.
	Snapshots SnapshotRepository

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file if
//     it does not yet exist; ":memory:" selects the in-process store instead.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories; snapshot amounts are sealed with sealer.
func NewClientStorages(cfg config.ClientStorage, sealer crypto.Sealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if isInMemoryDSN(cfg.DB.DSN) {
		return NewMemoryStorages(memoryRecordCapacity), nil
	}

	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions:  NewSessionRepository(db, logger),
		Snapshots: NewSnapshotRepository(db, sealer, logger),
		db:        db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
