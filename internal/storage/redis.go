package storage

import (
	"context"

	"github.com/ariefcatur/stockfront/internal/redisx"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Redis struct {
	rdb *redis.Client
}

func OpenRedis(ctx context.Context, addr string) (*Redis, error) {
	rdb := redisx.New(addr)
	if err := redisx.Ping(ctx, rdb); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "storage: redis %s", addr)
	}
	return &Redis{rdb: rdb}, nil
}

func NewRedis(rdb *redis.Client) *Redis { return &Redis{rdb: rdb} }

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, redisx.LocalKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return b, errors.Wrapf(err, "storage: redis get %s", key)
}

func (r *Redis) Save(ctx context.Context, key string, value []byte) error {
	err := r.rdb.Set(ctx, redisx.LocalKey(key), value, redisx.TTLLocal).Err()
	return errors.Wrapf(err, "storage: redis set %s", key)
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	return errors.Wrapf(r.rdb.Del(ctx, redisx.LocalKey(key)).Err(), "storage: redis del %s", key)
}

func (r *Redis) Close() error { return r.rdb.Close() }
