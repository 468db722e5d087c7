package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/shenikar/hospital_beds/internal/service"
)

type RedisHospitalCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisHospitalCache(redisClient *redis.Client, ttl time.Duration) service.HospitalCache {
	return &RedisHospitalCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func hospitalCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hospital:%s", id.String())
}

func hospitalVersionKey(id uuid.UUID) string {
	return fmt.Sprintf("hospital:%s:version", id.String())
}

// setIfVersionScript пишет снимок, только если счетчик версий не изменился.
// KEYS[1] - версия, KEYS[2] - снимок; ARGV: версия, JSON, TTL в мс.
var setIfVersionScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

// Get пытается получить больницу из Redis; промах - nil, nil
func (c *RedisHospitalCache) Get(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	val, err := c.redisClient.Get(ctx, hospitalCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital from cache: %w", err)
	}

	hospital := &models.Hospital{}
	if err := json.Unmarshal(val, hospital); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hospital from cache: %w", err)
	}
	return hospital, nil
}

// Version возвращает текущую версию снимка; отсутствие ключа - 0
func (c *RedisHospitalCache) Version(ctx context.Context, id uuid.UUID) (int64, error) {
	version, err := c.redisClient.Get(ctx, hospitalVersionKey(id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get hospital cache version: %w", err)
	}
	return version, nil
}

// SetIfVersion сохраняет снимок больницы, если с момента чтения версии не было инвалидаций
func (c *RedisHospitalCache) SetIfVersion(ctx context.Context, hospital *models.Hospital, version int64) (bool, error) {
	val, err := json.Marshal(hospital)
	if err != nil {
		return false, fmt.Errorf("failed to marshal hospital for cache: %w", err)
	}
	keys := []string{hospitalVersionKey(hospital.ID), hospitalCacheKey(hospital.ID)}
	stored, err := setIfVersionScript.Run(ctx, c.redisClient, keys,
		strconv.FormatInt(version, 10), val, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to set hospital in cache: %w", err)
	}
	return stored == 1, nil
}

// Invalidate поднимает версию и удаляет снимок из кеша
func (c *RedisHospitalCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, hospitalVersionKey(id))
		pipe.Del(ctx, hospitalCacheKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate hospital cache: %w", err)
	}
	return nil
}
