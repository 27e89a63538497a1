package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawExpense is a record exactly as the remote ledger returns it from
// getEncryptedExpense.
type RawExpense struct {
	// Category is the ordinal into [Categories].
	Category uint32 `json:"category"`

	// Timestamp is the creation time in seconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`

	// AmountHandle references the encrypted amount. Erased records carry
	// [ZeroHandle].
	AmountHandle EncryptedHandle `json:"amount_handle"`

	// Deleted is set once the record was removed.
	Deleted bool `json:"deleted"`
}

// Visible reports whether the record belongs to the local view.
func (r RawExpense) Visible() bool {
	return !r.Deleted && !r.AmountHandle.IsZero()
}

// ExpenseRecord is one entry of the local view.
type ExpenseRecord struct {
	// Index is the position within the account's remote ledger.
	Index uint64 `json:"index"`

	// Category is the resolved label, or [UnknownCategory].
	Category string `json:"category"`

	// Amount is the plaintext amount. It stays zero until decrypted.
	Amount decimal.Decimal `json:"amount"`

	// Timestamp is the local creation time.
	Timestamp time.Time `json:"timestamp"`

	// Deleted mirrors the remote flag; records in the view always carry false.
	Deleted bool `json:"deleted"`

	// Handle is the amount handle observed when the record was loaded.
	Handle EncryptedHandle `json:"-"`
}

// NewExpenseRecord maps a raw ledger record at index into a view record.
func NewExpenseRecord(index uint64, raw RawExpense) ExpenseRecord {
	return ExpenseRecord{
		Index:     index,
		Category:  CategoryLabel(raw.Category),
		Amount:    decimal.Zero,
		Timestamp: time.Unix(raw.Timestamp, 0).Local(),
		Deleted:   raw.Deleted,
		Handle:    raw.AmountHandle,
	}
}

// NewExpense is the user input of an append command before encryption.
type NewExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
