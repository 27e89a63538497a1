package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/internal/validators"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type mutationService struct {
	gate      *ReadinessGate
	ledger    adapter.LedgerAdapter
	oracle    adapter.OracleAdapter
	sessions  store.SessionRepository
	loader    LedgerService
	validator validators.Validator
	contract  common.Address
	now       func() time.Time

	logger *logger.Logger
}

func NewMutationService(
	gate *ReadinessGate,
	ledger adapter.LedgerAdapter,
	oracle adapter.OracleAdapter,
	sessions store.SessionRepository,
	loader LedgerService,
	contract common.Address,
	logger *logger.Logger,
) MutationService {
	return &mutationService{
		gate:      gate,
		ledger:    ledger,
		oracle:    oracle,
		sessions:  sessions,
		loader:    loader,
		validator: validators.NewExpenseValidator(),
		contract:  contract,
		now:       time.Now,
		logger:    logger,
	}
}

func (m *mutationService) Append(ctx context.Context, category string, amount decimal.Decimal) error {
	session, err := m.gate.Session()
	if err != nil {
		return err
	}

	expense := models.NewExpense{Category: category, Amount: amount}
	if err = m.validator.Validate(ctx, expense); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	ordinal, _ := models.CategoryOrdinal(category)

	input, err := m.oracle.CreateEncryptedInput(ctx, models.EncryptRequest{
		Contract: m.contract,
		Account:  session.Account,
		Value:    amount,
	})
	if err != nil {
		return m.fail(OpAdd, session, err)
	}

	receipt, err := m.ledger.AddExpense(ctx, models.AddExpenseRequest{
		Account:   session.Account,
		Category:  ordinal,
		Timestamp: m.now().Unix(),
		Amount:    input.Handle,
		Proof:     input.Proof,
	})
	if err != nil {
		return m.fail(OpAdd, session, err)
	}

	m.logger.Info().
		Str("func", "mutationService.Append").
		Str("session_id", session.ID.String()).
		Str("tx_hash", receipt.TxHash.Hex()).
		Str("category", category).
		Msg("expense added")

	return m.afterConfirmation(ctx, session)
}

func (m *mutationService) Remove(ctx context.Context, index uint64) error {
	session, err := m.gate.Session()
	if err != nil {
		return err
	}

	if !inView(session.Records(), index) {
		return fmt.Errorf("%w: no expense with index %d", ErrInvalidInput, index)
	}

	receipt, err := m.ledger.DeleteExpense(ctx, models.DeleteExpenseRequest{
		Account: session.Account,
		Index:   index,
	})
	if err != nil {
		return m.fail(OpDelete, session, err)
	}

	m.logger.Info().
		Str("func", "mutationService.Remove").
		Str("session_id", session.ID.String()).
		Str("tx_hash", receipt.TxHash.Hex()).
		Uint64("index", index).
		Msg("expense deleted")

	return m.afterConfirmation(ctx, session)
}

// afterConfirmation runs once the ledger confirmed a mutation. The cached
// total is invalidated before anything else can fail.
func (m *mutationService) afterConfirmation(ctx context.Context, session *Session) error {
	session.invalidate()

	if err := m.sessions.RecordMutation(ctx, session.ID, m.now().UTC()); err != nil {
		m.logger.Err(err).
			Str("func", "mutationService.afterConfirmation").
			Str("session_id", session.ID.String()).
			Msg("failed to record mutation")
	}

	if _, err := m.loader.Load(ctx); err != nil {
		if errors.Is(err, ErrLoadFailure) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	return nil
}

func (m *mutationService) fail(op string, session *Session, err error) error {
	m.logger.Err(err).
		Str("func", "mutationService."+op).
		Str("session_id", session.ID.String()).
		Msg("ledger mutation failed")
	return &MutationError{Op: op, Err: mapAdapterError(err)}
}

func inView(records []models.ExpenseRecord, index uint64) bool {
	for _, r := range records {
		if r.Index == index {
			return true
		}
	}
	return false
}
