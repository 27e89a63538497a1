// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client session and the snapshot cache of the
// last authorized decryption in SQLite.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists connected sessions, one per account.
type SessionRepository interface {
	// SaveSession inserts the session or replaces the one of the same
	// account.
	SaveSession(ctx context.Context, session models.SessionRecord) error

	// GetSessionByAccount returns [ErrSessionNotFound] when the account is
	// not connected.
	GetSessionByAccount(ctx context.Context, account common.Address) (models.SessionRecord, error)

	// DeleteSession removes the session together with its snapshot.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// RecordMutation bumps the mutation counter and stamps the confirmation
	// time.
	RecordMutation(ctx context.Context, id uuid.UUID, at time.Time) error

	// AcquireDecryptLease marks a decryption of the session as running until
	// now+ttl. It reports false when another holder's lease has not expired
	// yet or the session is gone.
	AcquireDecryptLease(ctx context.Context, id uuid.UUID, now time.Time, ttl time.Duration) (bool, error)

	// ReleaseDecryptLease clears the lease so the next decryption may start.
	ReleaseDecryptLease(ctx context.Context, id uuid.UUID) error
}

// SnapshotRepository stores the last decrypted snapshot of a session.
type SnapshotRepository interface {
	// SaveSnapshot replaces the stored snapshot atomically. On
	// [ErrStorageFull] the previous snapshot is kept.
	SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error

	// GetSnapshot returns an empty snapshot (absent total and time) when
	// nothing was stored for the session.
	GetSnapshot(ctx context.Context, sessionID uuid.UUID) (models.Snapshot, error)

	// DeleteSnapshot removes the snapshot of the session, if any.
	DeleteSnapshot(ctx context.Context, sessionID uuid.UUID) error
}
