// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the last decrypted view of an account's ledger.
//
// Total and DecryptedAt are nil until a decryption succeeded for the session.
type Snapshot struct {
	// SessionID keys the snapshot in the cache.
	SessionID uuid.UUID `json:"session_id"`

	// Records are ordered most recent first.
	Records []ExpenseRecord `json:"records"`

	// Total is the decrypted global total, absent when never decrypted.
	Total *decimal.Decimal `json:"total,omitempty"`

	// DecryptedAt is the moment of the last successful decryption.
	DecryptedAt *time.Time `json:"decrypted_at,omitempty"`

	// MutationSeq is the session's mutation count the snapshot was decrypted
	// against. A session whose count moved past it has a stale snapshot.
	MutationSeq uint64 `json:"mutation_seq"`
}

// IsEmpty reports whether the snapshot was never written.
func (s Snapshot) IsEmpty() bool {
	return s.Total == nil && s.DecryptedAt == nil && len(s.Records) == 0
}
