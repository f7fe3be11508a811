package storage

import (
	"context"

	"github.com/ariefcatur/stockfront/internal/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres keeps values in the local_storage table.
type Postgres struct {
	db    querier
	close func()
}

func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := postgres.Connect(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "storage: postgres")
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "storage: postgres")
	}
	return &Postgres{db: pool, close: pool.Close}, nil
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := p.db.QueryRow(ctx, `SELECT value FROM local_storage WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, errors.Wrapf(err, "storage: postgres load %s", key)
}

func (p *Postgres) Save(ctx context.Context, key string, value []byte) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO local_storage (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	return errors.Wrapf(err, "storage: postgres save %s", key)
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM local_storage WHERE key = $1`, key)
	return errors.Wrapf(err, "storage: postgres remove %s", key)
}

func (p *Postgres) Close() error {
	if p.close != nil {
		p.close()
	}
	return nil
}
