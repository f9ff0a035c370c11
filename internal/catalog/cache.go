package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheKeyPrefix = "nibblecheck:search:"

// Cached keeps Search results in redis for ttl. Food and Ping go straight to
// the wrapped catalog. Redis errors are logged and the wrapped catalog is
// used instead; a broken cache never fails a search.
type Cached struct {
	next   Catalog
	client *redis.Client
	ttl    time.Duration
}

func NewCached(next Catalog, client *redis.Client, ttl time.Duration) *Cached {
	return &Cached{next: next, client: client, ttl: ttl}
}

func (c *Cached) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	key := cacheKey(query, limit)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []Candidate
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		slog.Warn("discarding corrupt search cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("search cache read failed", "error", err)
	}

	res, err := c.next.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Warn("search cache write failed", "error", err)
		}
	}
	return res, nil
}

func (c *Cached) Food(ctx context.Context, id int64) (Food, error) {
	return c.next.Food(ctx, id)
}

func (c *Cached) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

// cacheKey hashes the normalized query so arbitrary input stays a safe key.
func cacheKey(query string, limit int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", limit, strings.ToLower(strings.TrimSpace(query)))))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
