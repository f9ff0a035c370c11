package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
)

// SearchResult is returned by Search.
type SearchResult struct {
	Query   string              `json:"query"`
	Count   int                 `json:"count"`
	Results []catalog.Candidate `json:"results"`
}

// Search looks up a single term: no tokenizing and no severity ranking, just
// the catalog's candidates above the floor, best score first.
func (s *Service) Search(ctx context.Context, query string, limit int) (SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return SearchResult{}, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if limit < 1 || limit > MaxSearchLimit {
		return SearchResult{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxSearchLimit)
	}

	qctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	candidates, err := s.catalog.Search(qctx, query, limit)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search %q: %w", query, err)
	}

	results := AboveFloor(candidates, s.cfg.Floor)
	return SearchResult{Query: query, Count: len(results), Results: results}, nil
}
