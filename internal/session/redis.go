package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis 多实例部署时共享会话集合用；key 存 token 摘要而不是原串
type Redis struct {
	RDB *redis.Client
}

func NewRedis(addr, pass string, db int) *Redis {
	return &Redis{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}

func (r *Redis) Add(ctx context.Context, token string, ttl time.Duration) error {
	return r.RDB.Set(ctx, sessionKey(token), 1, ttl).Err()
}

func (r *Redis) Valid(ctx context.Context, token string) bool {
	n, err := r.RDB.Exists(ctx, sessionKey(token)).Result()
	return err == nil && n > 0
}

func (r *Redis) Remove(ctx context.Context, token string) error {
	return r.RDB.Del(ctx, sessionKey(token)).Err()
}
