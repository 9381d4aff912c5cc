package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"persona-matcher/internal/domain"
)

// SessionStore abstracts where in-progress quiz sessions live. Update is the
// per-session serialization point: the read-mutate-write of a turn happens
// inside fn so an answer cannot race the TTL sweep on the same session.
type SessionStore interface {
	Create(ctx context.Context, session domain.QuizSession) error
	Get(ctx context.Context, id string) (domain.QuizSession, error)
	Update(ctx context.Context, id string, fn func(*domain.QuizSession) error) error
	Delete(ctx context.Context, id string) error
	// Sweep removes sessions older than maxAge and returns how many were
	// evicted. Stores with native expiry may implement it as a no-op.
	Sweep(ctx context.Context, maxAge time.Duration) int
}

type memorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]domain.QuizSession
}

// NewMemorySessionStore returns the default in-process store. Sessions are
// lost on restart; that is acceptable for a quiz UI. A positive ttl makes
// reads of an aged-out session fail with ErrSessionExpired before the sweep
// gets to it; zero disables the check.
func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]domain.QuizSession),
	}
}

func (s *memorySessionStore) expired(session domain.QuizSession) bool {
	return s.ttl > 0 && time.Now().UTC().Sub(session.CreatedAt) > s.ttl
}

func (s *memorySessionStore) Create(_ context.Context, session domain.QuizSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, id string) (domain.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.QuizSession{}, domain.ErrInvalidSession
	}
	if s.expired(session) {
		delete(s.sessions, id)
		return domain.QuizSession{}, domain.ErrSessionExpired
	}
	return session, nil
}

func (s *memorySessionStore) Update(_ context.Context, id string, fn func(*domain.QuizSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.ErrInvalidSession
	}
	if s.expired(session) {
		delete(s.sessions, id)
		return domain.ErrSessionExpired
	}
	if err := fn(&session); err != nil {
		return err
	}
	session.UpdatedAt = time.Now().UTC()
	s.sessions[id] = session
	return nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) Sweep(_ context.Context, maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().UTC().Add(-maxAge)
	evicted := 0
	for id, session := range s.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

type redisSessionStore struct {
	client redisKVClient
	prefix string
	ttl    time.Duration
}

// redisKVClient is the slice of the redis client the store drives, so tests
// can substitute a mock.
type redisKVClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewRedisSessionStore keeps sessions in Redis so quizzes survive a process
// restart. Expiry is delegated to Redis key TTLs; an expired key is simply
// gone, so expiry surfaces as ErrInvalidSession rather than
// ErrSessionExpired. Concurrent updates to the same session are
// last-write-wins, which the low per-session concurrency of a quiz UI
// tolerates.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if client == nil {
		return nil
	}
	return &redisSessionStore{
		client: client,
		prefix: "quiz:session:",
		ttl:    ttl,
	}
}

func (s *redisSessionStore) Create(ctx context.Context, session domain.QuizSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.prefix+session.ID, payload, s.ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, id string) (domain.QuizSession, error) {
	raw, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.QuizSession{}, domain.ErrInvalidSession
	}
	if err != nil {
		return domain.QuizSession{}, err
	}
	var session domain.QuizSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.QuizSession{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return session, nil
}

func (s *redisSessionStore) Update(ctx context.Context, id string, fn func(*domain.QuizSession) error) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(&session); err != nil {
		return err
	}
	session.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.prefix+id, payload, redis.KeepTTL).Err()
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}

func (s *redisSessionStore) Sweep(context.Context, time.Duration) int {
	// Redis evicts by key TTL.
	return 0
}
