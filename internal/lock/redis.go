package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// só remove a chave se ela ainda pertencer a quem a criou
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis é um lock distribuído (SET NX PX) para várias instâncias da API.
// O TTL limita quanto tempo um lock órfão pode segurar a agenda.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	log    zerolog.Logger
}

func NewRedis(url string, ttl time.Duration, log zerolog.Logger) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &Redis{
		client: redis.NewClient(opt),
		ttl:    ttl,
		retry:  50 * time.Millisecond,
		log:    log,
	}, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, r.ttl)
	defer cancel()

	for {
		ok, err := r.client.SetNX(waitCtx, key, token, r.ttl).Result()
		if err != nil {
			if waitCtx.Err() != nil {
				return nil, ErrTimeout
			}
			return nil, fmt.Errorf("redis setnx: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-waitCtx.Done():
			return nil, ErrTimeout
		case <-time.After(r.retry):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			if err := releaseScript.Run(releaseCtx, r.client, []string{key}, token).Err(); err != nil {
				r.log.Warn().Err(err).Str("key", key).Msg("failed to release booking lock")
			}
		})
	}, nil
}
