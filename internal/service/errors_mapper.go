// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/app"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/shopspring/decimal"
)

// mapAdapterError translates the adapter's transport error into a service reason
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, adapter.ErrTxReverted):
		return fmt.Errorf("%w: %s", ErrTransactionReverted, extractBody(err))
	case errors.Is(err, adapter.ErrConfirmationTimeout):
		return fmt.Errorf("%w: %s", ErrConfirmationTimeout, extractBody(err))
	case errors.Is(err, adapter.ErrEngineNotReady):
		return ErrEngineUnavailable
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %s", ErrPermitRejected, extractBody(err))
	case errors.Is(err, adapter.ErrNotFound):
		return ErrRecordNotFound
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %s", ErrRequestRejected, extractBody(err))
	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %s", ErrRemoteUnavailable, extractBody(err))
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// Notify renders the outcome of a command as the message shown to the user.
// A nil error yields an empty string; success messages are built by the
// caller because they carry command specific values.
func Notify(err error) string {
	if err == nil {
		return ""
	}

	var notReady *NotReadyError
	if errors.As(err, &notReady) {
		switch notReady.State {
		case models.WrongNetwork:
			return app.MsgSwitchNetwork
		case models.EngineInitializing:
			return app.MsgEngineInitializing
		default:
			return app.MsgConnectFirst
		}
	}

	var mutationErr *MutationError
	if errors.As(err, &mutationErr) {
		reason := reasonOf(mutationErr.Err)
		switch mutationErr.Op {
		case OpAdd:
			return fmt.Sprintf(app.MsgAddFailed, reason)
		case OpDelete:
			return fmt.Sprintf(app.MsgDeleteFailed, reason)
		default:
			return fmt.Sprintf(app.MsgMutationFailed, reason)
		}
	}

	switch {
	case errors.Is(err, ErrNothingToDecrypt):
		return app.MsgNothingToDecrypt
	case errors.Is(err, ErrDecryptionInFlight):
		return app.MsgDecryptionInFlight
	case errors.Is(err, ErrSessionChanged):
		return app.MsgSessionChanged
	case errors.Is(err, ErrSnapshotSuperseded):
		return app.MsgSnapshotSuperseded
	case errors.Is(err, ErrCacheCapacityExceeded):
		return app.MsgCacheFull
	case errors.Is(err, ErrInvalidInput):
		return fmt.Sprintf(app.MsgInvalidInput, reasonOf(err, ErrInvalidInput))
	case errors.Is(err, ErrLoadFailure):
		return app.MsgLoadFailed
	case errors.Is(err, ErrDecryptionFailure):
		return app.MsgDecryptionFailed
	}

	return reasonOf(err)
}

// NotifyDecrypted is the message of a successful DecryptAll.
func NotifyDecrypted(total decimal.Decimal) string {
	return fmt.Sprintf(app.MsgDecryptionSucceeded, total.String())
}

// NotifyAdded is the message of a confirmed Append.
func NotifyAdded(category string) string {
	return fmt.Sprintf(app.MsgExpenseAdded, category)
}

// NotifyDeleted is the message of a confirmed Remove.
func NotifyDeleted() string {
	return app.MsgExpenseDeleted
}

// reasonOf returns the message of err without the given sentinel prefixes.
func reasonOf(err error, prefixes ...error) string {
	if err == nil {
		return app.MsgUnknownError
	}
	msg := strings.TrimSpace(err.Error())
	for _, p := range prefixes {
		msg = strings.TrimPrefix(msg, p.Error()+": ")
	}
	if msg == "" {
		return app.MsgUnknownError
	}
	return msg
}
