package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
)

type ledgerLoader struct {
	gate   *ReadinessGate
	ledger adapter.LedgerAdapter

	logger *logger.Logger
}

func NewLedgerLoader(gate *ReadinessGate, ledger adapter.LedgerAdapter, logger *logger.Logger) LedgerService {
	return &ledgerLoader{
		gate:   gate,
		ledger: ledger,
		logger: logger,
	}
}

func (l *ledgerLoader) Load(ctx context.Context) ([]models.ExpenseRecord, error) {
	session, err := l.gate.Session()
	if err != nil {
		return nil, err
	}

	opCtx, epoch, done := session.bind(ctx)
	defer done()

	records, err := fetchView(opCtx, l.ledger, session.Account)
	if err != nil {
		if session.Epoch() != epoch {
			return nil, ErrSessionChanged
		}
		l.logger.Err(err).
			Str("func", "ledgerLoader.Load").
			Str("session_id", session.ID.String()).
			Msg("failed to load ledger")
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, mapAdapterError(err))
	}

	if !session.commitRecords(epoch, records) {
		return nil, ErrSessionChanged
	}

	l.logger.Debug().
		Str("func", "ledgerLoader.Load").
		Str("session_id", session.ID.String()).
		Int("records", len(records)).
		Msg("ledger view loaded")

	return records, nil
}

func (l *ledgerLoader) Records() ([]models.ExpenseRecord, error) {
	session, err := l.gate.Session()
	if err != nil {
		return nil, err
	}
	return session.Records(), nil
}

// fetchView reads every ledger entry of account, drops deleted and erased
// ones and returns the rest most recent first.
func fetchView(ctx context.Context, ledger adapter.LedgerAdapter, account common.Address) ([]models.ExpenseRecord, error) {
	count, err := ledger.GetExpenseCount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("get expense count: %w", err)
	}

	records := make([]models.ExpenseRecord, 0, min(count, 1024))
	for i := uint64(0); i < count; i++ {
		raw, err := ledger.GetEncryptedExpense(ctx, account, i)
		if err != nil {
			return nil, fmt.Errorf("get expense %d: %w", i, err)
		}
		if !raw.Visible() {
			continue
		}
		records = append(records, models.NewExpenseRecord(i, raw))
	}

	slices.Reverse(records)
	return records, nil
}
