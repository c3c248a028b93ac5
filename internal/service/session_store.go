package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	// Redis key prefix for session records: session:<accountId>:<sessionId>
	RedisSessionKeyPrefix = "session:"

	// Timeout for individual Redis operations
	redisSessionTimeout = 5 * time.Second

	// Batch size for SCAN when dropping every session of an account
	sessionScanBatchSize = 100
)

// SessionStore keeps the set of live sessions in Redis. A signed token is
// accepted only while its record exists, so deleting the record revokes the
// token before it expires.
type SessionStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSessionStore(redisClient *redis.Client, log *logrus.Logger) *SessionStore {
	return &SessionStore{
		redisClient: redisClient,
		log:         log,
	}
}

// SessionKey returns the Redis key of a session record.
func SessionKey(accountID, sessionID string) string {
	return fmt.Sprintf("%s%s:%s", RedisSessionKeyPrefix, accountID, sessionID)
}

// Save stores the session until it expires.
func (s *SessionStore) Save(ctx context.Context, session *entity.Session) error {
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	ttl := s.calculateTTL(session.ExpiresAt)
	key := SessionKey(session.AccountID, session.ID)

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, key, session.ExpiresAt.Unix(), ttl)
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to save session %s: %+v", session.ID, err)
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}

	s.log.Debugf("Saved session %s for account %s, TTL=%v", session.ID, session.AccountID, ttl)
	return nil
}

// Exists reports whether the session is still live.
func (s *SessionStore) Exists(ctx context.Context, accountID, sessionID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	n, err := s.redisClient.Exists(ctx, SessionKey(accountID, sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session %s: %w", sessionID, err)
	}
	return n > 0, nil
}

// Delete revokes one session. ErrSessionNotFound is returned when no record
// existed.
func (s *SessionStore) Delete(ctx context.Context, accountID, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	n, err := s.redisClient.Del(ctx, SessionKey(accountID, sessionID)).Result()
	if err != nil {
		s.log.Warnf("Failed to delete session %s: %+v", sessionID, err)
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}

	s.log.Debugf("Deleted session %s for account %s", sessionID, accountID)
	return nil
}

// DeleteAll revokes every session of the account and returns how many were removed.
func (s *SessionStore) DeleteAll(ctx context.Context, accountID string) (int, error) {
	pattern := SessionKey(accountID, "*")
	var cursor uint64
	removed := 0

	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, pattern, sessionScanBatchSize).Result()
		if err != nil {
			return removed, fmt.Errorf("scan sessions of %s: %w", accountID, err)
		}

		if len(keys) > 0 {
			n, err := s.redisClient.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("delete sessions of %s: %w", accountID, err)
			}
			removed += int(n)
		}

		cursor = next
		if cursor == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return removed, ctx.Err()
		default:
		}
	}

	s.log.Debugf("Deleted %d sessions for account %s", removed, accountID)
	return removed, nil
}

// calculateTTL returns the time left until expiry, with a short floor so an
// already expired session is cleaned up quickly.
func (s *SessionStore) calculateTTL(expiresAt time.Time) time.Duration {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return 1 * time.Minute
	}
	return ttl
}
