package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-vault/models"
)

var (
	ErrNotReady              = errors.New("ledger not ready")
	ErrLoadFailure           = errors.New("failed to load ledger")
	ErrDecryptionFailure     = errors.New("decryption failed")
	ErrMutationFailure       = errors.New("ledger mutation failed")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNothingToDecrypt      = errors.New("nothing to decrypt")
	ErrDecryptionInFlight    = errors.New("decryption already in progress")
	ErrSessionChanged        = errors.New("session changed during operation")
	ErrSnapshotSuperseded    = errors.New("snapshot superseded by a mutation")
	ErrCacheCapacityExceeded = errors.New("snapshot cache capacity exceeded")
)

// Reasons attached to remote failures by mapAdapterError.
var (
	ErrRemoteUnavailable   = errors.New("remote service unavailable")
	ErrRequestRejected     = errors.New("request rejected by remote service")
	ErrPermitRejected      = errors.New("decryption permit rejected")
	ErrRecordNotFound      = errors.New("ledger record not found")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrConfirmationTimeout = errors.New("transaction not confirmed in time")
	ErrEngineUnavailable   = errors.New("privacy engine unavailable")
)

// NotReadyError is returned by every gated operation while the readiness
// gate is not in models.Ready. It matches ErrNotReady with errors.Is.
type NotReadyError struct {
	State models.ReadinessState
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotReady, e.State)
}

func (e *NotReadyError) Is(target error) bool {
	return target == ErrNotReady
}

// Mutation operations reported by MutationError.
const (
	OpAdd    = "add"
	OpDelete = "delete"
)

// MutationError is a failed append or remove. It matches ErrMutationFailure.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrMutationFailure, e.Op, e.Err)
}

func (e *MutationError) Is(target error) bool {
	return target == ErrMutationFailure
}

func (e *MutationError) Unwrap() error {
	return e.Err
}
