package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns nil when REDIS_ADDR is unset.
func ConnectRedis(ctx context.Context, cfg *Config, z *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		z.Info("redis disabled, caching and login rate limit are off")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUser,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	z.Info("redis connected", zap.String("addr", cfg.RedisAddr))
	return rdb, nil
}
