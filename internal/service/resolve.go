package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"golang.org/x/sync/errgroup"
)

// Hit is the match chosen for one token.
type Hit struct {
	Token       string             `json:"token"`
	FoodID      int64              `json:"food_id"`
	Name        string             `json:"name"`
	Status      catalog.Severity   `json:"status"`
	Matched     string             `json:"matched"`
	MatchedFrom catalog.Provenance `json:"matched_from"`
	Score       float64            `json:"score"`
}

func newHit(token string, c catalog.Candidate) Hit {
	return Hit{
		Token:       token,
		FoodID:      c.FoodID,
		Name:        c.CanonicalName,
		Status:      c.Status,
		Matched:     c.Matched,
		MatchedFrom: c.MatchedFrom,
		Score:       c.Score,
	}
}

// Resolution is returned by Resolve. Hits follow token order; tokens without
// a qualifying match are left out.
type Resolution struct {
	Hits          []Hit            `json:"hits"`
	OverallStatus catalog.Severity `json:"overall_status"`
}

type tokenOutcome struct {
	hit Hit
	ok  bool
	err error
}

// Resolve matches every token of an ingredient list against the catalog and
// reports the worst severity found. Tokens are looked up concurrently; a
// token whose lookup times out or fails is treated as unmatched. The request
// only fails when every lookup failed outright.
func (s *Service) Resolve(ctx context.Context, text string) (Resolution, error) {
	if strings.TrimSpace(text) == "" {
		return Resolution{}, fmt.Errorf("%w: ingredients text is required", ErrInvalidInput)
	}

	tokens := Tokenize(text)
	outcomes := make([]tokenOutcome, len(tokens))

	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, tok := range tokens {
		g.Go(func() error {
			outcomes[i] = s.resolveToken(ctx, tok)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Resolution{}, fmt.Errorf("resolve: %w", err)
	}

	hits := make([]Hit, 0, len(tokens))
	var firstErr error
	failed := 0
	for i, o := range outcomes {
		if o.err != nil {
			slog.Warn("token lookup failed", "token", tokens[i], "error", o.err)
			if firstErr == nil {
				firstErr = o.err
			}
			failed++
			continue
		}
		if o.ok {
			hits = append(hits, o.hit)
		}
	}
	if len(tokens) > 0 && failed == len(tokens) {
		return Resolution{}, fmt.Errorf("all %d token lookups failed: %w", failed, firstErr)
	}

	return Resolution{Hits: hits, OverallStatus: OverallStatus(hits)}, nil
}

func (s *Service) resolveToken(ctx context.Context, token string) tokenOutcome {
	qctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	candidates, err := s.catalog.Search(qctx, token, CandidateLimit)
	if err != nil {
		// Drivers report a fired deadline in their own terms (lib/pq returns
		// a 57014 cancel), so the per-token context decides.
		if qctx.Err() != nil && ctx.Err() == nil {
			slog.Warn("token lookup timed out", "token", token, "timeout", s.cfg.QueryTimeout)
			return tokenOutcome{}
		}
		return tokenOutcome{err: err}
	}

	best, ok := BestMatch(candidates, s.cfg.Floor)
	if !ok {
		slog.Debug("token unresolved", "token", token, "candidates", len(candidates))
		return tokenOutcome{}
	}
	return tokenOutcome{hit: newHit(token, best), ok: true}
}
