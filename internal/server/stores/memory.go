package stores

import (
	"context"
	"sync"
	"time"

	"github.com/vaultchat/vaultchat/internal/common"
)

// In-memory implementations of the store interfaces. They back single-node
// development runs and the test suites of everything layered on top.
// Expiry is checked lazily on access; there is no background sweeper.

type MemoryChallengeStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	codes map[string]memoryChallenge
}

type memoryChallenge struct {
	code     string
	deadline time.Time
}

func NewMemoryChallengeStore(ttl time.Duration) *MemoryChallengeStore {
	return &MemoryChallengeStore{ttl: ttl, codes: make(map[string]memoryChallenge)}
}

func (s *MemoryChallengeStore) Set(ctx context.Context, orgID, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[challengeKey(orgID, phone)] = memoryChallenge{code: code, deadline: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryChallengeStore) Take(ctx context.Context, orgID, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := challengeKey(orgID, phone)
	c, ok := s.codes[key]
	if !ok {
		return "", common.ErrInvalidOrExpiredCode
	}
	delete(s.codes, key)
	if time.Now().After(c.deadline) {
		return "", common.ErrInvalidOrExpiredCode
	}
	return c.code, nil
}

type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	session  Session
	deadline time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{ttl: ttl, sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Create(ctx context.Context, session *Session) (string, error) {
	token, err := common.MakeRandHexString(sessionTokenBytes)
	if err != nil {
		return "", err
	}
	session.Token = token
	session.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{session: *session, deadline: time.Now().Add(s.ttl)}
	return token, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[token]
	if !ok {
		return nil, common.ErrUnauthorized
	}
	if time.Now().After(rec.deadline) {
		delete(s.sessions, token)
		return nil, common.ErrUnauthorized
	}
	session := rec.session
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemorySessionStore) DeleteOthers(ctx context.Context, identityID, keepToken string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	revoked := 0
	for token, rec := range s.sessions {
		if token == keepToken || rec.session.IdentityID != identityID {
			continue
		}
		delete(s.sessions, token)
		revoked++
	}
	return revoked, nil
}

type MemoryPresenceRegistry struct {
	mu    sync.Mutex
	ttl   time.Duration
	conns map[string]map[string]time.Time
}

func NewMemoryPresenceRegistry(ttl time.Duration) *MemoryPresenceRegistry {
	return &MemoryPresenceRegistry{ttl: ttl, conns: make(map[string]map[string]time.Time)}
}

func (r *MemoryPresenceRegistry) Up(ctx context.Context, identityID, connID string) error {
	return r.touch(identityID, connID)
}

func (r *MemoryPresenceRegistry) Heartbeat(ctx context.Context, identityID, connID string) error {
	return r.touch(identityID, connID)
}

func (r *MemoryPresenceRegistry) touch(identityID, connID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conns[identityID] == nil {
		r.conns[identityID] = make(map[string]time.Time)
	}
	r.conns[identityID][connID] = time.Now()
	return nil
}

func (r *MemoryPresenceRegistry) Down(ctx context.Context, identityID, connID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns[identityID], connID)
	if len(r.conns[identityID]) == 0 {
		delete(r.conns, identityID)
		return true, nil
	}
	return false, nil
}

func (r *MemoryPresenceRegistry) Online(ctx context.Context, identityID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-r.ttl)
	for _, seen := range r.conns[identityID] {
		if seen.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

type MemoryOfflineQueue struct {
	mu     sync.Mutex
	queues map[string][][]byte
}

func NewMemoryOfflineQueue() *MemoryOfflineQueue {
	return &MemoryOfflineQueue{queues: make(map[string][][]byte)}
}

func (q *MemoryOfflineQueue) Enqueue(ctx context.Context, identityID string, frame []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	buf := make([]byte, len(frame))
	copy(buf, frame)
	q.queues[identityID] = append(q.queues[identityID], buf)
	return nil
}

func (q *MemoryOfflineQueue) Peek(ctx context.Context, identityID string) ([]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	queue := q.queues[identityID]
	if len(queue) == 0 {
		return nil, common.ErrNotFound
	}
	return queue[0], nil
}

func (q *MemoryOfflineQueue) Pop(ctx context.Context, identityID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	queue := q.queues[identityID]
	if len(queue) == 0 {
		return nil
	}
	q.queues[identityID] = queue[1:]
	if len(q.queues[identityID]) == 0 {
		delete(q.queues, identityID)
	}
	return nil
}

func (q *MemoryOfflineQueue) Len(ctx context.Context, identityID string) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.queues[identityID])), nil
}
