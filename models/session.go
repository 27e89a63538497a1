package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// SessionRecord is the persisted part of a connection: it survives CLI
// invocations until the account disconnects.
type SessionRecord struct {
	ID        uuid.UUID      `json:"id"`
	Account   common.Address `json:"account"`
	CreatedAt time.Time      `json:"created_at"`

	// MutationSeq counts mutations confirmed during the session.
	MutationSeq uint64 `json:"mutation_seq"`

	// LastMutationAt is when the last mutation was confirmed.
	LastMutationAt *time.Time `json:"last_mutation_at,omitempty"`
}
