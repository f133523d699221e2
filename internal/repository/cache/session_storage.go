package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "session:"
	sessionScanCount = 100
	storageTimeout   = 3 * time.Second
)

// SessionStorage реализует fiber.Storage поверх Redis для middleware/session
type SessionStorage struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
}

var _ fiber.Storage = (*SessionStorage)(nil)

func NewSessionStorage(redis *Redis) *SessionStorage {
	return &SessionStorage{
		client: redis.Client(),
		logger: redis.logger,
		prefix: sessionKeyPrefix,
	}
}

func (s *SessionStorage) key(k string) string {
	return s.prefix + k
}

// Get returns nil, nil for unknown keys as fiber.Storage requires.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to load session", zap.Error(err))
		return nil, fmt.Errorf("session get error: %w", err)
	}
	return val, nil
}

// Set: exp == 0 означает без истечения
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), val, exp).Err(); err != nil {
		s.logger.Error("Failed to store session", zap.Error(err))
		return fmt.Errorf("session set error: %w", err)
	}
	return nil
}

func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("session delete error: %w", err)
	}
	return nil
}

// Reset удаляет только ключи сессий, кеш сегментов не трогает
func (s *SessionStorage) Reset() error {
	ctx := context.Background()

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", sessionScanCount).Result()
		if err != nil {
			return fmt.Errorf("session scan error: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("session reset error: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close is a no-op: the client is owned by Redis and closed on shutdown.
func (s *SessionStorage) Close() error {
	return nil
}
