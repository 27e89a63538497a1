// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/crypto"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// snapshotRepository keeps decrypted amounts sealed at rest; categories and
// timestamps are stored in clear since the ledger exposes them anyway.
type snapshotRepository struct {
	*DB
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewSnapshotRepository returns the SQLite implementation of
// [SnapshotRepository].
func NewSnapshotRepository(db *DB, sealer crypto.Sealer, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{DB: db, sealer: sealer, logger: logger}
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	var sealedTotal any
	if snapshot.Total != nil {
		blob, err := r.sealer.Seal(*snapshot.Total)
		if err != nil {
			return fmt.Errorf("seal total: %w", err)
		}
		sealedTotal = blob
	}

	records := make([]sealedRecord, 0, len(snapshot.Records))
	for _, rec := range snapshot.Records {
		blob, err := r.sealer.Seal(rec.Amount)
		if err != nil {
			return fmt.Errorf("seal amount of record %d: %w", rec.Index, err)
		}
		records = append(records, sealedRecord{
			index:     rec.Index,
			category:  rec.Category,
			amount:    blob,
			timestamp: rec.Timestamp,
		})
	}

	err := r.withRetry(ctx, func() error {
		return r.replaceSnapshot(ctx, snapshot, sealedTotal, records)
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Str("session_id", snapshot.SessionID.String()).
			Int("records", len(records)).
			Msg("failed to save snapshot")
		return err
	}

	return nil
}

func (r *snapshotRepository) replaceSnapshot(ctx context.Context, snapshot models.Snapshot, total any, records []sealedRecord) error {
	sessionID := snapshot.SessionID

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	exec := func(query string, args []any, buildErr error) error {
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			return wrapWriteError(execErr, ErrExecutingStatement)
		}
		return nil
	}

	if err = exec(buildUpsertSnapshotQuery(sessionID, total, unixOrNil(snapshot.DecryptedAt), snapshot.MutationSeq)); err != nil {
		return err
	}
	if err = exec(buildDeleteSnapshotRecordsQuery(sessionID)); err != nil {
		return err
	}
	if len(records) > 0 {
		if err = exec(buildInsertSnapshotRecordsQuery(sessionID, records)); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return wrapWriteError(err, ErrCommitingTransaction)
	}
	return nil
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, sessionID uuid.UUID) (models.Snapshot, error) {
	log := logger.FromContext(ctx)
	snapshot := models.Snapshot{SessionID: sessionID}

	query, args, err := buildSelectSnapshotQuery(sessionID)
	if err != nil {
		return snapshot, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		total       sql.NullString
		decryptedAt sql.NullInt64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&total, &decryptedAt, &snapshot.MutationSeq)
	if errors.Is(err, sql.ErrNoRows) {
		return snapshot, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("session_id", sessionID.String()).
			Msg("failed to query snapshot")
		return snapshot, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total.Valid {
		var value decimal.Decimal
		if err = r.sealer.Open(total.String, &value); err != nil {
			return snapshot, fmt.Errorf("%w: total: %w", ErrCorruptedSnapshot, err)
		}
		snapshot.Total = &value
	}
	if decryptedAt.Valid {
		at := time.Unix(decryptedAt.Int64, 0)
		snapshot.DecryptedAt = &at
	}

	snapshot.Records, err = r.getRecords(ctx, sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("session_id", sessionID.String()).
			Msg("failed to read snapshot records")
		return models.Snapshot{SessionID: sessionID}, err
	}

	return snapshot, nil
}

func (r *snapshotRepository) getRecords(ctx context.Context, sessionID uuid.UUID) ([]models.ExpenseRecord, error) {
	query, args, err := buildSelectSnapshotRecordsQuery(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.ExpenseRecord
	for rows.Next() {
		var (
			rec       models.ExpenseRecord
			amount    string
			createdAt int64
		)
		if err = rows.Scan(&rec.Index, &rec.Category, &amount, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = r.sealer.Open(amount, &rec.Amount); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrCorruptedSnapshot, rec.Index, err)
		}
		rec.Timestamp = time.Unix(createdAt, 0).Local()
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, sessionID uuid.UUID) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, build := range []func(uuid.UUID) (string, []any, error){buildDeleteSnapshotRecordsQuery, buildDeleteSnapshotQuery} {
		query, args, buildErr := build(sessionID)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.DeleteSnapshot").
				Str("session_id", sessionID.String()).
				Msg("failed to delete snapshot")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
