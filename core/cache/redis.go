package cache

import (
	"context"
	"time"

	"go-scheduler-api/core/config"
	"go-scheduler-api/core/logger"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects the shared redis client. Returns nil when no address is
// configured; callers must treat a nil client as "redis disabled".
func InitRedis(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		logger.Info("Redis disabled, per-host locks stay in-process")
		return nil, nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to ping redis", "addr", cfg.Addr, "error", err)
		return nil, err
	}

	client = c
	logger.Info("Redis initialized successfully", "addr", cfg.Addr)
	return c, nil
}

// GetClient returns the shared client, nil when redis is disabled
func GetClient() *redis.Client {
	return client
}
