package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// AdmissionLockPrefix namespaces admission lock keys in Redis.
const AdmissionLockPrefix = "bookingAdmission:"

// AdmissionLock serializes admissions that share a booking key.
type AdmissionLock interface {
	// Acquire returns ErrAdmissionInProgress when another admission holds
	// the key. The returned release func must be called when done.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// releaseScript deletes the lock only if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisAdmissionLock is an AdmissionLock backed by SET NX. Keys expire after
// TTL.
type RedisAdmissionLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisAdmissionLock(client *redis.Client, ttl time.Duration) *RedisAdmissionLock {
	return &RedisAdmissionLock{Client: client, TTL: ttl}
}

func (l *RedisAdmissionLock) Acquire(ctx context.Context, key string) (func(), error) {
	lockKey := AdmissionLockPrefix + key
	token := uuid.New().String()

	ok, err := l.Client.SetNX(ctx, lockKey, token, l.TTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire admission lock: %w", err)
	}
	if !ok {
		return nil, ErrAdmissionInProgress
	}

	release := func() {
		// The request context may already be cancelled.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.Client, []string{lockKey}, token).Err()
	}
	return release, nil
}
