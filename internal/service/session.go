package service

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session is the in-memory state of one connected account.
//
// Every remote result is tagged with the epoch it was started in. The epoch
// moves forward on network changes, when the gate leaves Ready and on
// teardown, and results from an older epoch are discarded.
type Session struct {
	ID      uuid.UUID
	Account common.Address

	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	epoch       uint64
	closed      bool
	records     []models.ExpenseRecord
	total       *decimal.Decimal
	decryptedAt *time.Time
	mutations   uint64

	decrypting atomic.Bool
}

func newSession(id uuid.UUID, account common.Address) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		ID:      id,
		Account: account,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Epoch returns the current epoch.
func (s *Session) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// bind derives an operation context from parent that is also canceled when
// the session epoch moves. The returned epoch tags the operation's result and
// the context carries the session id for outgoing requests.
func (s *Session) bind(parent context.Context) (context.Context, uint64, context.CancelFunc) {
	s.mu.Lock()
	sessionCtx, epoch := s.ctx, s.epoch
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(utils.WithSessionID(parent, s.ID))
	stop := context.AfterFunc(sessionCtx, cancel)
	return ctx, epoch, func() {
		stop()
		cancel()
	}
}

// bumpEpoch cancels in-flight operations and opens a new epoch.
func (s *Session) bumpEpoch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumpEpochLocked()
}

func (s *Session) bumpEpochLocked() {
	s.cancel()
	s.epoch++
	if s.closed {
		return
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

// close tears the session down and drops every decrypted value it holds.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.bumpEpochLocked()
	s.records = nil
	s.total = nil
	s.decryptedAt = nil
}

// Records returns a copy of the current view.
func (s *Session) Records() []models.ExpenseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Total returns the decrypted total and when it was decrypted, or nil when
// it is absent.
func (s *Session) Total() (*decimal.Decimal, *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total, s.decryptedAt
}

// MutationSeq counts mutations confirmed in this session.
func (s *Session) MutationSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

// commitRecords replaces the view if the epoch still matches.
func (s *Session) commitRecords(epoch uint64, records []models.ExpenseRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch {
		return false
	}
	s.records = slices.Clone(records)
	return true
}

// invalidate drops every decrypted value and counts a confirmed mutation.
// Records keep their index, category and time so the view stays listable
// if the reload that follows fails.
func (s *Session) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		s.records[i].Amount = decimal.Zero
	}
	s.total = nil
	s.decryptedAt = nil
	s.mutations++
}

// commitDecryption applies a finished decryption batch and runs persist
// while still holding the session lock, so a concurrent invalidate is
// ordered either fully before or fully after it.
func (s *Session) commitDecryption(epoch, mutations uint64, snapshot models.Snapshot, persist func(models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.epoch != epoch {
		return ErrSessionChanged
	}
	if s.mutations != mutations {
		s.total = nil
		return ErrSnapshotSuperseded
	}

	s.records = slices.Clone(snapshot.Records)
	s.total = snapshot.Total
	s.decryptedAt = snapshot.DecryptedAt

	return persist(snapshot)
}

func (s *Session) beginDecryption() bool {
	return s.decrypting.CompareAndSwap(false, true)
}

func (s *Session) endDecryption() {
	s.decrypting.Store(false)
}
