// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/ethereum/go-ethereum/common"

// ReadinessState tells whether remote ledger operations may be issued.
type ReadinessState int

const (
	// Disconnected means no account is connected.
	Disconnected ReadinessState = iota
	// WrongNetwork means the active network is not the designated one.
	WrongNetwork
	// EngineInitializing means the confidential-computation engine is not
	// initialized yet.
	EngineInitializing
	// Ready means every remote operation is allowed.
	Ready
)

func (s ReadinessState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case WrongNetwork:
		return "wrong_network"
	case EngineInitializing:
		return "engine_initializing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ReadinessState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Signals are the external inputs of the readiness state machine that come
// from the account/network provider. The engine flag is read from the engine
// itself.
type Signals struct {
	Connected bool
	Account   common.Address
	ChainID   uint64
}

// Status is a point-in-time view of the gate for display.
type Status struct {
	State     ReadinessState `json:"state"`
	Account   string         `json:"account,omitempty"`
	ChainID   uint64         `json:"chain_id,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
}
