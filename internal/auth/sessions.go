package auth

import (
	"context"
	"strconv"
	"sync"
	"time"

	"coffeepos/internal/domain"

	"github.com/go-redis/redis/v8"
)

// Sessions stores bearer tokens for signed-in profiles.
type Sessions interface {
	Put(ctx context.Context, token string, profileID uint64, ttl time.Duration) error
	Get(ctx context.Context, token string) (uint64, error)
	Del(ctx context.Context, token string) error
}

type RedisSessions struct {
	rdb *redis.Client
}

func NewRedisSessions(rdb *redis.Client) *RedisSessions {
	return &RedisSessions{rdb: rdb}
}

func sessionKey(token string) string { return "session:" + token }

func (s *RedisSessions) Put(ctx context.Context, token string, profileID uint64, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(token), strconv.FormatUint(profileID, 10), ttl).Err()
}

func (s *RedisSessions) Get(ctx context.Context, token string) (uint64, error) {
	v, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, domain.ErrSessionExpired
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(v, 10, 64)
}

func (s *RedisSessions) Del(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

// MemorySessions is the demo-mode session store used when Redis is not
// configured.
type MemorySessions struct {
	mu      sync.Mutex
	entries map[string]memorySession
	now     func() time.Time
}

type memorySession struct {
	profileID uint64
	expiresAt time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{entries: make(map[string]memorySession), now: time.Now}
}

func (s *MemorySessions) Put(ctx context.Context, token string, profileID uint64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memorySession{profileID: profileID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessions) Get(ctx context.Context, token string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.entries, token)
		return 0, domain.ErrSessionExpired
	}
	return e.profileID, nil
}

func (s *MemorySessions) Del(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

var (
	_ Sessions = (*RedisSessions)(nil)
	_ Sessions = (*MemorySessions)(nil)
)
