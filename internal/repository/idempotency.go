package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service"
)

const pendingMarker = "pending"

type RedisIdempotencyStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisIdempotencyStore(redisClient *redis.Client, ttl time.Duration) service.IdempotencyStore {
	return &RedisIdempotencyStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func idempotencyKey(key string) string {
	return "idempotency:reservation:" + key
}

// Begin захватывает ключ через SETNX; при неудаче отдает сохраненный результат
func (s *RedisIdempotencyStore) Begin(ctx context.Context, key string) (*models.ReservationResult, bool, error) {
	acquired, err := s.redisClient.SetNX(ctx, idempotencyKey(key), pendingMarker, s.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire idempotency key: %w", err)
	}
	if acquired {
		return nil, true, nil
	}

	val, err := s.redisClient.Get(ctx, idempotencyKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Ключ истек между SETNX и GET; считаем, что запрос еще выполняется
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if val == pendingMarker {
		return nil, false, nil
	}

	result := &models.ReservationResult{}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal idempotent result: %w", err)
	}
	return result, false, nil
}

// Complete сохраняет итог бронирования под ключом
func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, result *models.ReservationResult) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotent result: %w", err)
	}
	if err := s.redisClient.Set(ctx, idempotencyKey(key), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotent result: %w", err)
	}
	return nil
}
