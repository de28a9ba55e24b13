package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/evalkit/core"
)

// keyPrefix 是 Redis 中评估结果的 key 前缀。
const keyPrefix = "evalkit:summary:"

// RedisStore 是 Redis 实现的 SummaryStore。
// 结果以 JSON 存储，key 为 "evalkit:summary:<name>"。
// 生产环境常用，支持持久化、集群、哨兵等。
type RedisStore struct {
	client *redis.Client

	// TTL 结果过期时间，0 表示不过期
	TTL time.Duration
}

func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) Save(ctx context.Context, summary *core.Summary) error {
	if summary == nil || summary.Name == "" {
		return core.NewDomainError(core.ModuleStore, core.ErrorCodeInvalidInput, "summary name is required")
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+summary.Name, data, r.TTL).Err(); err != nil {
		return err
	}
	return r.client.SAdd(ctx, keyPrefix+"names", summary.Name).Err()
}

func (r *RedisStore) Load(ctx context.Context, name string) (*core.Summary, error) {
	data, err := r.client.Get(ctx, keyPrefix+name).Bytes()
	if err == redis.Nil {
		return nil, core.ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}

	var summary core.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}
	return &summary, nil
}

func (r *RedisStore) Delete(ctx context.Context, name string) error {
	if err := r.client.Del(ctx, keyPrefix+name).Err(); err != nil {
		return err
	}
	return r.client.SRem(ctx, keyPrefix+"names", name).Err()
}

func (r *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, keyPrefix+"names").Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// 确保 RedisStore 实现了 SummaryStore 接口
var _ core.SummaryStore = (*RedisStore)(nil)
