// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shown to the user for
// every outcome of a ledger command.
//
// Messages are shared by the CLI output, the HTTP status surface and the
// logs so that the same failure always reads the same way.
package app

const (
	// MsgConnectFirst is shown while no account is connected.
	MsgConnectFirst = "connect wallet first"

	// MsgEngineInitializing is shown while the confidential-computation
	// engine is not initialized.
	MsgEngineInitializing = "initializing privacy engine..."

	// MsgSwitchNetwork is shown when the active network is not the
	// designated one.
	MsgSwitchNetwork = "switch to Sepolia"

	// MsgConnected is a format string taking the account.
	MsgConnected = "connected: %s"

	// MsgDisconnected is shown after the session was torn down.
	MsgDisconnected = "disconnected"

	// MsgLoadFailed is shown when the ledger view could not be refreshed.
	MsgLoadFailed = "failed to load expenses"

	// MsgNothingToDecrypt is shown when the view is empty.
	MsgNothingToDecrypt = "nothing left on-chain"

	// MsgDecryptionSucceeded is a format string taking the decrypted total.
	MsgDecryptionSucceeded = "decryption successful: %s"

	// MsgDecryptionFailed is shown when the total could not be decrypted.
	MsgDecryptionFailed = "decryption cancelled or failed"

	// MsgDecryptionInFlight is shown when a second decryption is requested
	// while one is running for the same account.
	MsgDecryptionInFlight = "decryption already in progress"

	// MsgSessionChanged is shown when the account or network changed while
	// an operation was running and its result was discarded.
	MsgSessionChanged = "account or network changed, result discarded"

	// MsgSnapshotSuperseded is shown when a mutation confirmed while the
	// decryption batch was running.
	MsgSnapshotSuperseded = "ledger changed during decryption, decrypt again"

	// MsgExpenseAdded is a format string taking the category label.
	MsgExpenseAdded = "expense added: %s"

	// MsgExpenseDeleted is shown after a confirmed removal.
	MsgExpenseDeleted = "deleted"

	// MsgAddFailed is a format string taking the failure reason.
	MsgAddFailed = "add failed: %s"

	// MsgDeleteFailed is a format string taking the failure reason.
	MsgDeleteFailed = "delete failed: %s"

	// MsgMutationFailed is a format string taking the failure reason.
	MsgMutationFailed = "transaction failed: %s"

	// MsgInvalidInput is a format string taking the validation reason.
	MsgInvalidInput = "invalid input: %s"

	// MsgNotDecrypted is shown in place of a total that was never decrypted.
	MsgNotDecrypted = "not decrypted yet"

	// MsgReportStale is shown when a mutation confirmed after the snapshot
	// was decrypted.
	MsgReportStale = "expenses changed since the last decryption, decrypt again"

	// MsgCacheFull is shown when the decrypted snapshot could not be stored.
	MsgCacheFull = "report cache is full, snapshot not saved"

	// MsgUnknownError is used when the reason of a failure is empty.
	MsgUnknownError = "unknown error"

	// MsgInternalServerError is returned by the HTTP surface for unexpected
	// failures.
	MsgInternalServerError = "internal server error"

	// MsgInvalidDataProvided is returned by the HTTP surface when a query
	// parameter cannot be parsed.
	MsgInvalidDataProvided = "invalid data provided"
)
