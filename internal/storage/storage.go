// Package storage keeps small pieces of client state (the cart) across runs.
// Values are opaque JSON documents addressed by a fixed key.
package storage

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("storage: key not found")

type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

func Backends() []string {
	return []string{BackendFile, BackendMemory, BackendRedis, BackendPostgres}
}

func ValidBackend(name string) bool {
	for _, b := range Backends() {
		if strings.EqualFold(name, b) {
			return true
		}
	}
	return false
}

type Options struct {
	Backend     string
	Dir         string
	RedisAddr   string
	PostgresDSN string
}

func Open(ctx context.Context, o Options) (Storage, error) {
	switch strings.ToLower(o.Backend) {
	case "", BackendFile:
		return NewFile(o.Dir)
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return OpenRedis(ctx, o.RedisAddr)
	case BackendPostgres:
		return OpenPostgres(ctx, o.PostgresDSN)
	}
	return nil, errors.Errorf("storage: unknown backend %q", o.Backend)
}
