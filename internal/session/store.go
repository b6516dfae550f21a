package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-admin/internal/config"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is the per-browser state: the backend bearer token and the claims
// decoded from it. Written at login, destroyed on logout or on a backend
// 401; nothing else is persisted client-side.
type Session struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Claims    UserClaims `json:"claims"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Store holds sessions keyed by an opaque cookie id.
type Store interface {
	Create(ctx context.Context, token string, claims UserClaims) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

const keyPrefix = "helpdesk:session:"

// RedisStore keeps sessions in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis using the provided configuration.
func NewRedisStore(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client, ttl: ttl}
}

// Create stores a new session and returns it with a fresh opaque id.
func (s *RedisStore) Create(ctx context.Context, token string, claims UserClaims) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		Claims:    claims,
		CreatedAt: time.Now(),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, keyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads a session by id.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Destroy removes a session. Removing an unknown id is not an error.
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}

// Ping verifies Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("redis client not configured")
	}
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}

// MemoryStore is an in-process Store used by tests and by development setups
// without Redis. Entries expire lazily on read.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session  Session
	deadline time.Time
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MemoryStore{ttl: ttl, sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(ctx context.Context, token string, claims UserClaims) (*Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		Token:     token,
		Claims:    claims,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = memoryEntry{session: sess, deadline: time.Now().Add(s.ttl)}
	out := sess
	return &out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || time.Now().After(entry.deadline) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	out := entry.session
	return &out, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
