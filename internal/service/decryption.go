// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/crypto"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// decryptLeaseTTL bounds how long a crashed process can keep other
// processes of the same account from decrypting.
const decryptLeaseTTL = 5 * time.Minute

type decryptionService struct {
	gate        *ReadinessGate
	ledger      adapter.LedgerAdapter
	oracle      adapter.OracleAdapter
	signer      crypto.PermitSigner
	cache       *SnapshotCache
	sessions    store.SessionRepository
	contract    common.Address
	concurrency int
	now         func() time.Time

	logger *logger.Logger
}

func NewDecryptionService(
	gate *ReadinessGate,
	ledger adapter.LedgerAdapter,
	oracle adapter.OracleAdapter,
	signer crypto.PermitSigner,
	cache *SnapshotCache,
	sessions store.SessionRepository,
	contract common.Address,
	concurrency int,
	logger *logger.Logger,
) DecryptionService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &decryptionService{
		gate:        gate,
		ledger:      ledger,
		oracle:      oracle,
		signer:      signer,
		cache:       cache,
		sessions:    sessions,
		contract:    contract,
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
	}
}

// DecryptAll decrypts the global total and then every record of the current
// view. A failure on the total aborts the run and keeps the previous
// snapshot; a failure on a single record zeroes that record's amount.
func (d *decryptionService) DecryptAll(ctx context.Context) (models.Snapshot, error) {
	session, err := d.gate.Session()
	if err != nil {
		return models.Snapshot{}, err
	}

	view := session.Records()
	if len(view) == 0 {
		return models.Snapshot{}, ErrNothingToDecrypt
	}

	if !session.beginDecryption() {
		return models.Snapshot{}, ErrDecryptionInFlight
	}
	defer session.endDecryption()

	log := d.logger.WithSession(session.ID.String(), session.Account.Hex())

	// another process on the same cache may be decrypting this session
	acquired, err := d.sessions.AcquireDecryptLease(ctx, session.ID, d.now(), decryptLeaseTTL)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("acquire decrypt lease: %w", err)
	}
	if !acquired {
		return models.Snapshot{}, ErrDecryptionInFlight
	}
	defer d.releaseLease(context.WithoutCancel(ctx), session.ID, log)

	opCtx, epoch, done := session.bind(ctx)
	defer done()
	mutations := session.MutationSeq()

	total, err := d.decryptTotal(opCtx, session.Account)
	if err != nil {
		if session.Epoch() != epoch {
			return models.Snapshot{}, ErrSessionChanged
		}
		log.Err(err).Str("func", "decryptionService.DecryptAll").Msg("total decryption failed")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrDecryptionFailure, mapAdapterError(err))
	}

	records := slices.Clone(view)
	g, gCtx := errgroup.WithContext(opCtx)
	g.SetLimit(d.concurrency)
	for i := range records {
		g.Go(func() error {
			amount, err := d.decryptRecord(gCtx, session.Account, records[i].Index)
			if err != nil {
				log.Warn().
					Err(err).
					Str("func", "decryptionService.DecryptAll").
					Uint64("index", records[i].Index).
					Msg("record decryption failed, defaulting to 0")
				amount = decimal.Zero
			}
			records[i].Amount = amount
			return nil
		})
	}
	_ = g.Wait()

	if err = opCtx.Err(); err != nil {
		if session.Epoch() != epoch {
			return models.Snapshot{}, ErrSessionChanged
		}
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}

	decryptedAt := d.now().UTC()
	snapshot := models.Snapshot{
		SessionID:   session.ID,
		Records:     records,
		Total:       &total,
		DecryptedAt: &decryptedAt,
		MutationSeq: mutations,
	}

	err = session.commitDecryption(epoch, mutations, snapshot, func(s models.Snapshot) error {
		// the caller may have gone away; the snapshot is still worth keeping
		return d.cache.Store(context.WithoutCancel(ctx), s)
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrCacheCapacityExceeded):
		return snapshot, err
	case errors.Is(err, ErrSessionChanged), errors.Is(err, ErrSnapshotSuperseded):
		log.Info().Err(err).Str("func", "decryptionService.DecryptAll").Msg("decryption result discarded")
		return models.Snapshot{}, err
	default:
		log.Err(err).Str("func", "decryptionService.DecryptAll").Msg("snapshot not persisted")
		return snapshot, err
	}

	log.Info().
		Str("func", "decryptionService.DecryptAll").
		Int("records", len(records)).
		Msg("decryption finished")

	return snapshot, nil
}

func (d *decryptionService) releaseLease(ctx context.Context, id uuid.UUID, log *logger.Logger) {
	if err := d.sessions.ReleaseDecryptLease(ctx, id); err != nil {
		log.Warn().Err(err).Str("func", "decryptionService.releaseLease").Msg("decrypt lease left to expire")
	}
}

func (d *decryptionService) decryptTotal(ctx context.Context, account common.Address) (decimal.Decimal, error) {
	handle, err := d.ledger.GetEncryptedGlobalTotal(ctx, account)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get encrypted total: %w", err)
	}
	return d.decryptHandle(ctx, handle)
}

// decryptRecord re-reads the record so that the handle decrypted is the
// current one, not the one seen when the view was loaded.
func (d *decryptionService) decryptRecord(ctx context.Context, account common.Address, index uint64) (decimal.Decimal, error) {
	raw, err := d.ledger.GetEncryptedExpense(ctx, account, index)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get expense %d: %w", index, err)
	}
	if !raw.Visible() {
		return decimal.Zero, fmt.Errorf("expense %d was removed", index)
	}
	return d.decryptHandle(ctx, raw.AmountHandle)
}

func (d *decryptionService) decryptHandle(ctx context.Context, handle models.EncryptedHandle) (decimal.Decimal, error) {
	permit, err := d.signer.Sign(handle)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sign permit: %w", err)
	}

	value, err := d.oracle.DecryptValue(ctx, models.DecryptRequest{
		Handle:   handle,
		Contract: d.contract,
		Permit:   permit,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("decrypt %s: %w", handle.Hex(), err)
	}
	return value, nil
}
