package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// memoryStorage keeps sessions and snapshots in process memory. It backs
// ":memory:" deployments, where nothing survives a restart. The number of
// stored snapshot records is bounded by capacity; zero means unbounded.
type memoryStorage struct {
	mu        sync.RWMutex
	capacity  int
	sessions  map[common.Address]models.SessionRecord
	snapshots map[uuid.UUID]models.Snapshot
	leases    map[uuid.UUID]time.Time
}

func newMemoryStorage(capacity int) *memoryStorage {
	return &memoryStorage{
		capacity:  capacity,
		sessions:  make(map[common.Address]models.SessionRecord),
		snapshots: make(map[uuid.UUID]models.Snapshot),
		leases:    make(map[uuid.UUID]time.Time),
	}
}

// NewMemoryStorages returns repositories sharing one in-memory store.
func NewMemoryStorages(capacity int) *ClientStorages {
	m := newMemoryStorage(capacity)
	return &ClientStorages{Sessions: m, Snapshots: m}
}

func (m *memoryStorage) SaveSession(_ context.Context, session models.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.sessions[session.Account]; ok && prev.ID != session.ID {
		delete(m.snapshots, prev.ID)
		delete(m.leases, prev.ID)
	}
	m.sessions[session.Account] = session
	return nil
}

func (m *memoryStorage) GetSessionByAccount(_ context.Context, account common.Address) (models.SessionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[account]
	if !ok {
		return models.SessionRecord{}, ErrSessionNotFound
	}
	return session, nil
}

func (m *memoryStorage) DeleteSession(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for account, session := range m.sessions {
		if session.ID == id {
			delete(m.sessions, account)
		}
	}
	delete(m.snapshots, id)
	delete(m.leases, id)
	return nil
}

func (m *memoryStorage) RecordMutation(_ context.Context, id uuid.UUID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for account, session := range m.sessions {
		if session.ID == id {
			session.MutationSeq++
			session.LastMutationAt = &at
			m.sessions[account] = session
			return nil
		}
	}
	return ErrSessionNotFound
}

func (m *memoryStorage) AcquireDecryptLease(_ context.Context, id uuid.UUID, now time.Time, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasSessionLocked(id) {
		return false, nil
	}
	if until, ok := m.leases[id]; ok && now.Before(until) {
		return false, nil
	}
	m.leases[id] = now.Add(ttl)
	return true, nil
}

func (m *memoryStorage) ReleaseDecryptLease(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.leases, id)
	return nil
}

func (m *memoryStorage) hasSessionLocked(id uuid.UUID) bool {
	for _, session := range m.sessions {
		if session.ID == id {
			return true
		}
	}
	return false
}

func (m *memoryStorage) SaveSnapshot(_ context.Context, snapshot models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.capacity > 0 {
		used := len(snapshot.Records)
		for id, s := range m.snapshots {
			if id != snapshot.SessionID {
				used += len(s.Records)
			}
		}
		if used > m.capacity {
			return ErrStorageFull
		}
	}

	snapshot.Records = slices.Clone(snapshot.Records)
	m.snapshots[snapshot.SessionID] = snapshot
	return nil
}

func (m *memoryStorage) GetSnapshot(_ context.Context, sessionID uuid.UUID) (models.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot, ok := m.snapshots[sessionID]
	if !ok {
		return models.Snapshot{SessionID: sessionID}, nil
	}
	snapshot.Records = slices.Clone(snapshot.Records)
	return snapshot, nil
}

func (m *memoryStorage) DeleteSnapshot(_ context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.snapshots, sessionID)
	return nil
}
