// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
)

// ReadinessGate decides whether remote ledger operations may be issued and
// owns the session of the connected account.
type ReadinessGate struct {
	engine   adapter.OracleAdapter
	sessions store.SessionRepository
	cache    *SnapshotCache
	ids      *utils.UUIDGenerator
	chainID  uint64
	now      func() time.Time

	logger *logger.Logger

	mu            sync.RWMutex
	state         models.ReadinessState
	signals       models.Signals
	session       *Session
	initAttempted bool
	onReady       []func(ctx context.Context)
}

// NewReadinessGate creates a gate in the Disconnected state. chainID is the
// designated network.
func NewReadinessGate(
	engine adapter.OracleAdapter,
	sessions store.SessionRepository,
	cache *SnapshotCache,
	chainID uint64,
	logger *logger.Logger,
) *ReadinessGate {
	return &ReadinessGate{
		engine:   engine,
		sessions: sessions,
		cache:    cache,
		ids:      utils.NewUUIDGenerator(),
		chainID:  chainID,
		now:      time.Now,
		logger:   logger,
		state:    models.Disconnected,
	}
}

// OnReady registers fn to run every time the gate enters Ready. Hooks run
// synchronously on the goroutine that called Update.
func (g *ReadinessGate) OnReady(fn func(ctx context.Context)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onReady = append(g.onReady, fn)
}

// State returns the last computed state.
func (g *ReadinessGate) State() models.ReadinessState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Check returns nil in Ready and a *NotReadyError otherwise.
func (g *ReadinessGate) Check() error {
	_, err := g.Session()
	return err
}

// Session returns the live session. It is only handed out in Ready.
func (g *ReadinessGate) Session() (*Session, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != models.Ready || g.session == nil {
		return nil, &NotReadyError{State: g.state}
	}
	return g.session, nil
}

// ActiveSession returns the session of the connected account in any state
// but Disconnected.
func (g *ReadinessGate) ActiveSession() (*Session, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session, g.session != nil
}

// Status reports the current state together with the signals it was
// computed from.
func (g *ReadinessGate) Status() models.Status {
	g.mu.RLock()
	defer g.mu.RUnlock()

	status := models.Status{State: g.state}
	if g.signals.Connected {
		status.Account = g.signals.Account.Hex()
		status.ChainID = g.signals.ChainID
	}
	if g.session != nil {
		status.SessionID = g.session.ID.String()
	}
	return status
}

// Update feeds new signals into the gate and returns the resulting state.
//
// Entering EngineInitializing starts exactly one Initialize attempt. A failed
// attempt is logged and not retried until the gate leaves the state and
// enters it again.
func (g *ReadinessGate) Update(ctx context.Context, signals models.Signals) models.ReadinessState {
	g.mu.Lock()
	prev := g.state
	prevSignals := g.signals

	switched := g.syncSessionLocked(ctx, signals)

	next := g.computeLocked(signals)
	if g.session != nil && prev == models.Ready && next != models.Ready {
		g.session.bumpEpoch()
	} else if g.session != nil && prevSignals.Connected && prevSignals.Account == signals.Account && prevSignals.ChainID != signals.ChainID {
		g.session.bumpEpoch()
	}

	attemptInit := false
	if next == models.EngineInitializing {
		if !g.initAttempted {
			g.initAttempted = true
			attemptInit = true
		}
	} else {
		g.initAttempted = false
	}

	g.state = next
	g.signals = signals
	hooks := g.readyHooksLocked(prev, next, switched)
	g.mu.Unlock()

	g.logTransition(prev, next, signals)
	g.runHooks(ctx, hooks)

	if attemptInit {
		return g.initializeEngine(ctx, signals)
	}
	return next
}

func (g *ReadinessGate) initializeEngine(ctx context.Context, signals models.Signals) models.ReadinessState {
	if err := g.engine.Initialize(ctx); err != nil {
		g.logger.Err(err).
			Str("func", "ReadinessGate.initializeEngine").
			Msg("privacy engine initialization failed")
	}

	g.mu.Lock()
	// the signals moved on while the engine was initializing
	if g.signals != signals || g.state != models.EngineInitializing {
		state := g.state
		g.mu.Unlock()
		return state
	}
	prev := g.state
	next := g.computeLocked(signals)
	g.state = next
	hooks := g.readyHooksLocked(prev, next, false)
	g.mu.Unlock()

	g.logTransition(prev, next, signals)
	g.runHooks(ctx, hooks)
	return next
}

func (g *ReadinessGate) computeLocked(signals models.Signals) models.ReadinessState {
	switch {
	case !signals.Connected || signals.Account == (common.Address{}) || g.session == nil:
		return models.Disconnected
	case signals.ChainID != g.chainID:
		return models.WrongNetwork
	case !g.engine.Initialized():
		return models.EngineInitializing
	default:
		return models.Ready
	}
}

// syncSessionLocked opens, keeps or tears down the session so that it always
// belongs to the connected account. It reports whether a new session was
// opened.
func (g *ReadinessGate) syncSessionLocked(ctx context.Context, signals models.Signals) bool {
	connected := signals.Connected && signals.Account != (common.Address{})

	if g.session != nil && (!connected || g.session.Account != signals.Account) {
		g.teardownLocked(ctx)
	}
	if !connected || g.session != nil {
		return false
	}

	record, err := OpenSession(ctx, g.sessions, g.ids, signals.Account, g.now())
	if err != nil {
		g.logger.Err(err).
			Str("func", "ReadinessGate.syncSessionLocked").
			Str("account", signals.Account.Hex()).
			Msg("failed to open session")
		return false
	}
	g.session = newSession(record.ID, record.Account)
	g.session.mutations = record.MutationSeq
	return true
}

func (g *ReadinessGate) teardownLocked(ctx context.Context) {
	session := g.session
	g.session = nil
	session.close()

	if err := g.cache.Clear(ctx, session.ID); err != nil {
		g.logger.Err(err).
			Str("func", "ReadinessGate.teardownLocked").
			Str("session_id", session.ID.String()).
			Msg("failed to clear snapshot cache")
	}
}

func (g *ReadinessGate) readyHooksLocked(prev, next models.ReadinessState, switched bool) []func(ctx context.Context) {
	if next != models.Ready || (prev == models.Ready && !switched) {
		return nil
	}
	hooks := make([]func(ctx context.Context), len(g.onReady))
	copy(hooks, g.onReady)
	return hooks
}

func (g *ReadinessGate) runHooks(ctx context.Context, hooks []func(ctx context.Context)) {
	for _, hook := range hooks {
		hook(ctx)
	}
}

func (g *ReadinessGate) logTransition(prev, next models.ReadinessState, signals models.Signals) {
	if prev == next {
		return
	}
	g.logger.Info().
		Str("func", "ReadinessGate.Update").
		Stringer("from", prev).
		Stringer("to", next).
		Str("account", signals.Account.Hex()).
		Uint64("chain_id", signals.ChainID).
		Msg("readiness changed")
}

// OpenSession restores the persisted session of account or creates and
// persists a new one.
func OpenSession(ctx context.Context, sessions store.SessionRepository, ids *utils.UUIDGenerator, account common.Address, now time.Time) (models.SessionRecord, error) {
	record, err := sessions.GetSessionByAccount(ctx, account)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		return models.SessionRecord{}, fmt.Errorf("restore session: %w", err)
	}

	record = models.SessionRecord{
		ID:        ids.NewID(),
		Account:   account,
		CreatedAt: now.UTC(),
	}
	if err = sessions.SaveSession(ctx, record); err != nil {
		return models.SessionRecord{}, fmt.Errorf("save session: %w", err)
	}
	return record, nil
}
