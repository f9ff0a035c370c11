package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Memory is an in-process catalog scored by normalized Levenshtein distance.
// It stands in for Postgres when no database is configured.
type Memory struct {
	foods []Food
	byID  map[int64]int
	floor float64
}

// NewMemory validates foods and builds a catalog pruning below floor.
func NewMemory(foods []Food, floor float64) (*Memory, error) {
	m := &Memory{
		foods: make([]Food, 0, len(foods)),
		byID:  make(map[int64]int, len(foods)),
		floor: floor,
	}
	for _, f := range foods {
		if f.ID <= 0 {
			return nil, fmt.Errorf("food %q: id must be positive", f.CanonicalName)
		}
		if _, dup := m.byID[f.ID]; dup {
			return nil, fmt.Errorf("food %d: duplicate id", f.ID)
		}
		if strings.TrimSpace(f.CanonicalName) == "" {
			return nil, fmt.Errorf("food %d: canonical_name is required", f.ID)
		}
		status, err := ParseSeverity(string(f.DefaultStatus))
		if err != nil {
			return nil, fmt.Errorf("food %d: %w", f.ID, err)
		}
		f.DefaultStatus = status
		f.Synonyms = append([]string(nil), f.Synonyms...)
		f.Rules = append([]Rule(nil), f.Rules...)
		for i := range f.Rules {
			f.Rules[i].FoodID = f.ID
			if f.Rules[i].Status == "" {
				continue
			}
			rs, err := ParseSeverity(f.Rules[i].Status)
			if err != nil {
				return nil, fmt.Errorf("food %d rule %d: %w", f.ID, f.Rules[i].ID, err)
			}
			f.Rules[i].Status = string(rs)
		}
		sort.Strings(f.Synonyms)
		sort.SliceStable(f.Rules, func(i, j int) bool { return f.Rules[i].ID < f.Rules[j].ID })
		m.byID[f.ID] = len(m.foods)
		m.foods = append(m.foods, f)
	}
	return m, nil
}

// similarity returns a 0.0–1.0 score between two strings using Levenshtein
// distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Search scores every food by its closest name. Each food appears at most
// once, carrying whichever of its names matched best.
func (m *Memory) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("search", err)
	}
	if limit <= 0 {
		return nil, nil
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Candidate
	for _, f := range m.foods {
		best := Candidate{
			FoodID:        f.ID,
			CanonicalName: f.CanonicalName,
			GroupName:     f.GroupName,
			Status:        f.DefaultStatus,
			Matched:       f.CanonicalName,
			MatchedFrom:   FromCanonical,
			Score:         similarity(q, strings.ToLower(f.CanonicalName)),
		}
		for _, syn := range f.Synonyms {
			if s := similarity(q, strings.ToLower(syn)); s > best.Score {
				best.Score = s
				best.Matched = syn
				best.MatchedFrom = FromSynonym
			}
		}
		if best.Score < m.floor {
			continue
		}
		out = append(out, best)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CanonicalName < out[j].CanonicalName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) Food(ctx context.Context, id int64) (Food, error) {
	if err := ctx.Err(); err != nil {
		return Food{}, unavailable("get food", err)
	}
	idx, ok := m.byID[id]
	if !ok {
		return Food{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	f := m.foods[idx]
	f.Synonyms = append([]string{}, f.Synonyms...)
	f.Rules = append([]Rule{}, f.Rules...)
	return f, nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of foods loaded.
func (m *Memory) Len() int {
	return len(m.foods)
}
