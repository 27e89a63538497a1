package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite implementation of
// [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.SessionRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(session)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("session_id", session.ID.String()).
			Msg("failed to save session")
		return wrapWriteError(err, ErrExecutingStatement)
	}

	return nil
}

func (r *sessionRepository) GetSessionByAccount(ctx context.Context, account common.Address) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionByAccountQuery(account.Hex())
	if err != nil {
		return models.SessionRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		id, accountHex string
		createdAt      int64
		seq            uint64
		lastMutation   sql.NullInt64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id, &accountHex, &createdAt, &seq, &lastMutation)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionRecord{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSessionByAccount").
			Str("account", account.Hex()).
			Msg("failed to query session")
		return models.SessionRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	sessionID, err := uuid.Parse(id)
	if err != nil {
		return models.SessionRecord{}, fmt.Errorf("%w: session id: %w", ErrScanningRows, err)
	}

	session := models.SessionRecord{
		ID:          sessionID,
		Account:     common.HexToAddress(accountHex),
		CreatedAt:   time.Unix(createdAt, 0),
		MutationSeq: seq,
	}
	if lastMutation.Valid {
		at := time.Unix(lastMutation.Int64, 0)
		session.LastMutationAt = &at
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	builders := []func(uuid.UUID) (string, []any, error){
		buildDeleteSnapshotRecordsQuery,
		buildDeleteSnapshotQuery,
		buildDeleteSessionQuery,
	}
	for _, build := range builders {
		query, args, buildErr := build(id)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "sessionRepository.DeleteSession").
				Str("session_id", id.String()).
				Msg("failed to delete session")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *sessionRepository) RecordMutation(ctx context.Context, id uuid.UUID, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordMutationQuery(id, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.RecordMutation").
			Str("session_id", id.String()).
			Msg("failed to record mutation")
		return wrapWriteError(err, ErrExecutingStatement)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) AcquireDecryptLease(ctx context.Context, id uuid.UUID, now time.Time, ttl time.Duration) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAcquireDecryptLeaseQuery(id, now, now.Add(ttl))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.AcquireDecryptLease").
			Str("session_id", id.String()).
			Msg("failed to acquire decrypt lease")
		return false, wrapWriteError(err, ErrExecutingStatement)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n == 1, nil
}

func (r *sessionRepository) ReleaseDecryptLease(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildReleaseDecryptLeaseQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ReleaseDecryptLease").
			Str("session_id", id.String()).
			Msg("failed to release decrypt lease")
		return wrapWriteError(err, ErrExecutingStatement)
	}
	return nil
}
