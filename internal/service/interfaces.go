package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/shopspring/decimal"
)

// LedgerService loads the local view of the connected account's ledger.
type LedgerService interface {
	// Load rebuilds the view from the remote ledger: deleted and erased
	// entries are dropped and the rest is ordered most recent first. On
	// failure the previous view is kept and ErrLoadFailure is returned.
	Load(ctx context.Context) ([]models.ExpenseRecord, error)

	// Records returns a copy of the current view.
	Records() ([]models.ExpenseRecord, error)
}

// DecryptionService turns the current view into a decrypted snapshot.
type DecryptionService interface {
	// DecryptAll decrypts the global total and every record, commits the
	// snapshot to the session and persists it to the snapshot cache.
	// Returns ErrNothingToDecrypt for an empty view and
	// ErrDecryptionInFlight when a run is already going on.
	DecryptAll(ctx context.Context) (models.Snapshot, error)
}

// MutationService appends and removes ledger entries. Both commands wait for
// the ledger to confirm, then invalidate the decrypted total and reload the
// view.
type MutationService interface {
	// Append validates and encrypts amount and adds it under category.
	Append(ctx context.Context, category string, amount decimal.Decimal) error

	// Remove deletes the entry at index, which must be in the view.
	Remove(ctx context.Context, index uint64) error
}

// ReportService builds reports from the snapshot cache.
type ReportService interface {
	Build(ctx context.Context, r models.ReportRange, now time.Time) (models.Report, error)
}

// SignalsProvider reports the account, connection and network inputs of the
// readiness gate.
type SignalsProvider interface {
	Signals(ctx context.Context) (models.Signals, error)
}
