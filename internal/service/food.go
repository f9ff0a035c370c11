package service

import (
	"context"
	"fmt"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
)

// Food returns a catalog entry with its synonyms and rules.
func (s *Service) Food(ctx context.Context, id int64) (catalog.Food, error) {
	if id <= 0 {
		return catalog.Food{}, fmt.Errorf("%w: food id must be positive", ErrInvalidInput)
	}
	return s.catalog.Food(ctx, id)
}

// Health reports whether the catalog store is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.catalog.Ping(ctx)
}
