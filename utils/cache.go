package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewRedisClient connects to one Redis database. A failed ping returns the
// error together with the client so callers can decide to run degraded.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return client, err
	}
	return client, nil
}

// CloseRedis closes the clients, logging failures.
func CloseRedis(clients ...*redis.Client) {
	for _, c := range clients {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			GetLogger().Warn("failed to close redis client", zap.Error(err))
		}
	}
}
