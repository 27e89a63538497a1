// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// collaborators of the client: the ledger gateway that fronts the encrypted
// expense ledger and the relayer of the confidential-computation engine.
//
// Both ship as HTTP/REST implementations built on resty
// ([NewHTTPLedgerAdapter], [NewHTTPOracleAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrTxReverted] for a reverted
// transaction).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerAdapter reaches the remote ledger service. Every call is scoped to an
// account; the service itself enforces access control.
type LedgerAdapter interface {
	// GetExpenseCount returns the number of records ever appended for
	// account, including deleted ones.
	GetExpenseCount(ctx context.Context, account common.Address) (uint64, error)

	// GetEncryptedExpense returns the raw record at index.
	GetEncryptedExpense(ctx context.Context, account common.Address, index uint64) (models.RawExpense, error)

	// GetEncryptedGlobalTotal returns the handle of the account's running
	// total.
	GetEncryptedGlobalTotal(ctx context.Context, account common.Address) (models.EncryptedHandle, error)

	// AddExpense submits an append and blocks until the transaction is
	// confirmed. A reverted transaction yields [ErrTxReverted].
	AddExpense(ctx context.Context, req models.AddExpenseRequest) (models.TxReceipt, error)

	// DeleteExpense submits a removal and blocks until the transaction is
	// confirmed.
	DeleteExpense(ctx context.Context, req models.DeleteExpenseRequest) (models.TxReceipt, error)

	// ChainID reports the network the gateway is currently attached to.
	ChainID(ctx context.Context) (uint64, error)
}

// OracleAdapter reaches the confidential-computation engine.
type OracleAdapter interface {
	// Initialize fetches the engine public parameters. It is safe to call
	// again after a failure.
	Initialize(ctx context.Context) error

	// Initialized reports whether Initialize has succeeded.
	Initialized() bool

	// DecryptValue returns the plaintext behind req.Handle for the permit
	// holder.
	DecryptValue(ctx context.Context, req models.DecryptRequest) (decimal.Decimal, error)

	// CreateEncryptedInput encrypts req.Value bound to the ledger service and
	// the account and returns the handle with its proof.
	CreateEncryptedInput(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error)
}
