package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
)

// storeSignals derives the gate inputs for the configured account: it is
// connected while a persisted session exists, and the active network is the
// one the ledger gateway reports.
type storeSignals struct {
	account  common.Address
	sessions store.SessionRepository
	ledger   adapter.LedgerAdapter

	logger *logger.Logger
}

func NewSignalsProvider(account common.Address, sessions store.SessionRepository, ledger adapter.LedgerAdapter, logger *logger.Logger) SignalsProvider {
	return &storeSignals{
		account:  account,
		sessions: sessions,
		ledger:   ledger,
		logger:   logger,
	}
}

// Signals returns an error only when the session store cannot be read; the
// caller must then keep the previous signals instead of disconnecting.
func (p *storeSignals) Signals(ctx context.Context) (models.Signals, error) {
	_, err := p.sessions.GetSessionByAccount(ctx, p.account)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Signals{}, nil
	}
	if err != nil {
		return models.Signals{}, fmt.Errorf("read session: %w", err)
	}

	signals := models.Signals{Connected: true, Account: p.account}

	chainID, err := p.ledger.ChainID(ctx)
	if err != nil {
		// an unknown network is never the designated one
		p.logger.Warn().
			Err(err).
			Str("func", "storeSignals.Signals").
			Msg("failed to read active network")
		return signals, nil
	}
	signals.ChainID = chainID
	return signals, nil
}
