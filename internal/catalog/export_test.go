package catalog

import (
	"context"

	"github.com/frankasd12/NibbleCheck/internal/db"
)

// NewPostgresWithQuerier builds a Postgres catalog whose sessions all use q.
// released counts how many sessions were handed back.
func NewPostgresWithQuerier(q db.Querier, ping func(ctx context.Context) error, floor float64, released *int) *Postgres {
	connect := func(ctx context.Context) (db.Querier, func() error, error) {
		return q, func() error { *released++; return nil }, nil
	}
	return newPostgres(connect, ping, floor)
}

func NewPostgresWithConnectError(err error) *Postgres {
	connect := func(ctx context.Context) (db.Querier, func() error, error) {
		return nil, nil, err
	}
	return newPostgres(connect, func(context.Context) error { return err }, 0.3)
}

var (
	Similarity = similarity
	CacheKey   = cacheKey
)
