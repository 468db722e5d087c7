package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_beds/internal/config"
)

// NewRedisClient создает клиент Redis для кеша, ключей идемпотентности и очереди событий
func NewRedisClient(ctx context.Context, appCfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         appCfg.RedisAddr,
		Password:     appCfg.RedisPass,
		DB:           appCfg.RedisDB,
		PoolSize:     10,
		ReadTimeout:  appCfg.StoreTimeout,
		WriteTimeout: appCfg.StoreTimeout,
	})

	// Проверяем соединение с Redis в пределах таймаута хранилища
	pingCtx, cancel := context.WithTimeout(ctx, appCfg.StoreTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", appCfg.RedisAddr, err)
	}

	return rdb, nil
}
