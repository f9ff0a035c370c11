// Package catalog is the food catalog the resolver matches against. A Catalog
// returns ranked fuzzy-match candidates for a query string and full food
// records by id; how similarity is scored is up to the implementation.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an identity lookup has no matching food.
	ErrNotFound = errors.New("food not found")
	// ErrUnavailable is returned when the catalog cannot execute a query.
	ErrUnavailable = errors.New("catalog unavailable")
)

// Severity is the safety classification of a food.
type Severity string

const (
	Safe    Severity = "SAFE"
	Caution Severity = "CAUTION"
	Unsafe  Severity = "UNSAFE"
)

// Rank orders severities: SAFE=1 < CAUTION=2 < UNSAFE=3. Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case Safe:
		return 1
	case Caution:
		return 2
	case Unsafe:
		return 3
	default:
		return 0
	}
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// ParseSeverity accepts any casing and surrounding whitespace.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return sev, nil
}

// Provenance records which of a food's names produced a match.
type Provenance string

const (
	FromCanonical Provenance = "canonical"
	FromSynonym   Provenance = "synonym"
)

// Candidate is one catalog entry proposed for a query.
type Candidate struct {
	FoodID        int64      `json:"food_id"`
	CanonicalName string     `json:"canonical_name"`
	GroupName     string     `json:"group_name"`
	Status        Severity   `json:"default_status"`
	Matched       string     `json:"matched"`
	MatchedFrom   Provenance `json:"matched_from"`
	Score         float64    `json:"score"`
}

// Food is a catalog entry with its synonyms and rules.
type Food struct {
	ID            int64    `json:"id" yaml:"id"`
	CanonicalName string   `json:"canonical_name" yaml:"canonical_name"`
	GroupName     string   `json:"group_name" yaml:"group_name"`
	DefaultStatus Severity `json:"default_status" yaml:"default_status"`
	Notes         *string  `json:"notes" yaml:"notes"`
	Sources       *string  `json:"sources" yaml:"sources"`
	Synonyms      []string `json:"synonyms" yaml:"synonyms"`
	Rules         []Rule   `json:"rules" yaml:"rules"`
}

// Rule is a food-scoped annotation. The resolver passes it through untouched.
type Rule struct {
	ID       int64          `json:"id" yaml:"id"`
	FoodID   int64          `json:"food_id" yaml:"food_id"`
	RuleType string         `json:"rule_type" yaml:"rule_type"`
	Status   string         `json:"status,omitempty" yaml:"status"`
	Details  map[string]any `json:"details" yaml:"details"`
}

// Catalog is the store the resolver consumes.
type Catalog interface {
	// Search returns up to limit candidates for query, best first.
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
	// Food returns the food with the given id or ErrNotFound.
	Food(ctx context.Context, id int64) (Food, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
