package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/rushteam/prodrec/core"
)

// RedisKV 是 Redis 实现的 KeyValueStore，生产环境常用。
// 热门商品 zset 等预计算结果可以由离线任务写入，在线侧只读。
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(addr string, db int) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisKV{client: client}, nil
}

var _ core.KeyValueStore = (*RedisKV)(nil)

func (r *RedisKV) Name() string { return "redis" }

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, core.ErrStoreNotFound
	}
	return val, err
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisKV) ZAdd(ctx context.Context, key string, score float64, member string) error {
	return r.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

// ZRange 按分数降序返回（底层使用 ZREVRANGE）。
func (r *RedisKV) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return r.client.ZRevRange(ctx, key, start, stop).Result()
}

func (r *RedisKV) ZScore(ctx context.Context, key string, member string) (float64, error) {
	score, err := r.client.ZScore(ctx, key, member).Result()
	if err == redis.Nil {
		return 0, core.ErrStoreNotFound
	}
	return score, err
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
