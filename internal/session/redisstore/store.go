// Package redisstore keeps server-side sessions in Redis, keyed by an
// opaque random token.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hongminglow/techjobbkk/internal/session"
)

const keyPrefix = "session:"

// Ensure Store satisfies the session.Store interface at compile time.
var _ session.Store = (*Store)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Store resolves session tokens against Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and verifies the connection with a PING.
func New(ctx context.Context, opts Options) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewWithClient(rdb, opts.TTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Close releases the Redis connection pool.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Issue stores the session under a fresh token and returns the token.
func (s *Store) Issue(ctx context.Context, sess session.Session) (string, error) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Lookup returns the session stored under token.
func (s *Store) Lookup(ctx context.Context, token string) (session.Session, error) {
	if _, err := uuid.Parse(strings.TrimSpace(token)); err != nil {
		return session.Session{}, session.ErrNoSession
	}
	raw, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Session{}, session.ErrNoSession
		}
		return session.Session{}, fmt.Errorf("load session: %w", err)
	}
	var sess session.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.UserID <= 0 {
		return session.Session{}, fmt.Errorf("%w: corrupt payload", session.ErrNoSession)
	}
	return sess, nil
}

// Revoke deletes the session. Unknown tokens are not an error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
