// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-expense-vault/models"
)

// Client is the lifecycle of the client runtime as seen from the outside.
type Client interface {
	// Refresh polls the account and network signals into the readiness gate.
	Refresh(ctx context.Context) (models.ReadinessState, error)

	// Connect opens or restores the session of the configured account.
	Connect(ctx context.Context) (models.ReadinessState, error)

	// Disconnect tears the session down and forgets its snapshot.
	Disconnect(ctx context.Context) error

	// Run serves the report surface and blocks until ctx is done.
	Run(ctx context.Context) error

	// Close releases the local storage.
	Close() error
}

var _ Client = (*App)(nil)
