package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frankasd12/NibbleCheck/internal/db"
)

// connector hands out a Querier bound to one session plus its release func.
type connector func(ctx context.Context) (db.Querier, func() error, error)

// Postgres searches foods through the search_foods_enriched SQL function,
// which scores canonical names and synonyms with pg_trgm.
type Postgres struct {
	connect connector
	ping    func(ctx context.Context) error
	floor   float32
}

// NewPostgres returns a catalog over sqlDB. Every call runs on its own pooled
// connection so the session similarity limit applies to the query that
// follows it.
func NewPostgres(sqlDB *sql.DB, floor float64) *Postgres {
	connect := func(ctx context.Context) (db.Querier, func() error, error) {
		conn, err := sqlDB.Conn(ctx)
		if err != nil {
			return nil, nil, err
		}
		return db.New(conn), conn.Close, nil
	}
	return newPostgres(connect, sqlDB.PingContext, floor)
}

func newPostgres(connect connector, ping func(ctx context.Context) error, floor float64) *Postgres {
	return &Postgres{connect: connect, ping: ping, floor: float32(floor)}
}

func (p *Postgres) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	q, release, err := p.connect(ctx)
	if err != nil {
		return nil, unavailable("acquire connection", err)
	}
	defer release() //nolint:errcheck

	// set_limit only exists once pg_trgm is installed; callers re-apply the
	// floor themselves, so a failure here only loses server-side pruning.
	if err := q.SetSimilarityLimit(ctx, p.floor); err != nil {
		slog.Debug("set_limit failed", "error", err)
	}

	rows, err := q.SearchFoodsEnriched(ctx, db.SearchFoodsEnrichedParams{
		Query: query,
		Limit: int32(limit),
	})
	if err != nil {
		return nil, unavailable("search foods", err)
	}

	out := make([]Candidate, 0, len(rows))
	for _, r := range rows {
		c, err := toCandidate(r)
		if err != nil {
			slog.Warn("skipping catalog row", "food_id", r.FoodID, "error", err)
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func toCandidate(r db.SearchFoodsEnrichedRow) (Candidate, error) {
	status, err := ParseSeverity(r.DefaultStatus)
	if err != nil {
		return Candidate{}, err
	}
	from := Provenance(r.MatchedFrom)
	if from != FromCanonical && from != FromSynonym {
		return Candidate{}, fmt.Errorf("unknown match provenance %q", r.MatchedFrom)
	}
	return Candidate{
		FoodID:        r.FoodID,
		CanonicalName: r.CanonicalName,
		GroupName:     r.GroupName,
		Status:        status,
		Matched:       r.Matched,
		MatchedFrom:   from,
		Score:         r.Score,
	}, nil
}

func (p *Postgres) Food(ctx context.Context, id int64) (Food, error) {
	q, release, err := p.connect(ctx)
	if err != nil {
		return Food{}, unavailable("acquire connection", err)
	}
	defer release() //nolint:errcheck

	row, err := q.GetFood(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Food{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return Food{}, unavailable("get food", err)
	}
	status, err := ParseSeverity(row.DefaultStatus)
	if err != nil {
		return Food{}, fmt.Errorf("food %d: %w", id, err)
	}

	synonyms, err := q.ListSynonymsByFood(ctx, id)
	if err != nil {
		return Food{}, unavailable("list synonyms", err)
	}
	if synonyms == nil {
		synonyms = []string{}
	}

	ruleRows, err := q.ListRulesByFood(ctx, id)
	if err != nil {
		return Food{}, unavailable("list rules", err)
	}
	rules := make([]Rule, 0, len(ruleRows))
	for _, rr := range ruleRows {
		rule := Rule{
			ID:       rr.ID,
			FoodID:   rr.FoodID,
			RuleType: rr.RuleType,
			Status:   rr.Status.String,
		}
		if len(rr.Details) > 0 {
			if err := json.Unmarshal(rr.Details, &rule.Details); err != nil {
				return Food{}, fmt.Errorf("rule %d details: %w", rr.ID, err)
			}
		}
		rules = append(rules, rule)
	}

	return Food{
		ID:            row.ID,
		CanonicalName: row.CanonicalName,
		GroupName:     row.GroupName,
		DefaultStatus: status,
		Notes:         nullable(row.Notes),
		Sources:       nullable(row.Sources),
		Synonyms:      synonyms,
		Rules:         rules,
	}, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.ping(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
