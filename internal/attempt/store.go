package attempt

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
)

var ErrAttemptNotFound = errors.New("evaluation attempt not found")

// Store keeps in-flight sessions as snapshots, plus the tutor comment once it arrives.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (evaluation.Snapshot, error)
	Put(ctx context.Context, id uuid.UUID, snap evaluation.Snapshot) error
	Delete(ctx context.Context, id uuid.UUID) error

	PutFeedback(ctx context.Context, id uuid.UUID, text string) error
	Feedback(ctx context.Context, id uuid.UUID) (string, bool, error)
	DeleteFeedback(ctx context.Context, id uuid.UUID) error
}

type memoryEntry struct {
	snap        evaluation.Snapshot
	feedback    string
	hasFeedback bool
	expiresAt   time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]*memoryEntry
}

// NewMemoryStore keeps sessions in process. A zero ttl never expires them.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: map[uuid.UUID]*memoryEntry{},
	}
}

func (m *memoryStore) lookup(id uuid.UUID) (*memoryEntry, bool) {
	e, ok := m.entries[id]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		delete(m.entries, id)
		return nil, false
	}
	return e, true
}

func (m *memoryStore) Get(_ context.Context, id uuid.UUID) (evaluation.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(id)
	if !ok {
		return evaluation.Snapshot{}, ErrAttemptNotFound
	}
	return e.snap, nil
}

func (m *memoryStore) Put(_ context.Context, id uuid.UUID, snap evaluation.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(id)
	if !ok {
		e = &memoryEntry{}
		m.entries[id] = e
	}
	e.snap = snap
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

func (m *memoryStore) PutFeedback(_ context.Context, id uuid.UUID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(id)
	if !ok {
		return ErrAttemptNotFound
	}
	e.feedback, e.hasFeedback = text, true
	return nil
}

func (m *memoryStore) Feedback(_ context.Context, id uuid.UUID) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(id)
	if !ok {
		return "", false, ErrAttemptNotFound
	}
	return e.feedback, e.hasFeedback, nil
}

func (m *memoryStore) DeleteFeedback(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.lookup(id); ok {
		e.feedback, e.hasFeedback = "", false
	}
	return nil
}
