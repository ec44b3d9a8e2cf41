package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-promote/internal/config/configs"
)

// NewRedisClient connects to the server named by cfg.Address, either a
// redis:// URL or a bare host:port, and pings it.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Address)
	if err != nil {
		opts = &redis.Options{Addr: cfg.Address}
	}

	client := redis.NewClient(opts)
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
