package chain

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NoteCache stores indexer responses for confirmed, rarely changing
// lookups. A miss is never an error; the client just hits the indexer.
type NoteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type noopNoteCache struct{}

func (noopNoteCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }
func (noopNoteCache) Set(ctx context.Context, key string, value []byte)  {}

// RedisNoteCache caches indexer responses in redis. Entries expire on a
// short TTL so ARC-69 metadata updates surface within minutes.
type RedisNoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisNoteCache(addr string, ttl time.Duration) *RedisNoteCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisNoteCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (cache *RedisNoteCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("note cache: get %s failed: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

func (cache *RedisNoteCache) Set(ctx context.Context, key string, value []byte) {
	if err := cache.client.Set(ctx, key, value, cache.ttl).Err(); err != nil {
		log.Printf("note cache: set %s failed: %v", key, err)
	}
}
