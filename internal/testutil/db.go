// Package testutil starts throwaway Postgres instances for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/frankasd12/NibbleCheck/internal/catalog"
	"github.com/frankasd12/NibbleCheck/internal/db"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

// SetupDB starts a Postgres container, applies migrations and returns an open
// handle. The container is terminated when the test ends.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	if os.Getenv("TESTCONTAINERS_RYUK_DISABLED") == "" {
		t.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "nibblecheck",
			},
			// The entrypoint restarts the server once after init.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	if host == "" || host == "null" {
		host = "localhost"
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/nibblecheck?sslmode=disable", host, port.Port())
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := sqlDB.PingContext(ctx); err != nil {
		t.Fatalf("ping database: %v", err)
	}
	if err := db.Migrate(sqlDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return sqlDB
}

// Seed inserts foods with their synonyms and rules, keeping the given ids.
func Seed(t *testing.T, sqlDB *sql.DB, foods ...catalog.Food) {
	t.Helper()
	ctx := context.Background()

	for _, f := range foods {
		_, err := sqlDB.ExecContext(ctx,
			`INSERT INTO foods (id, canonical_name, group_name, default_status, notes, sources)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			f.ID, f.CanonicalName, f.GroupName, string(f.DefaultStatus), f.Notes, f.Sources)
		if err != nil {
			t.Fatalf("insert food %d: %v", f.ID, err)
		}
		for _, syn := range f.Synonyms {
			if _, err := sqlDB.ExecContext(ctx,
				`INSERT INTO synonyms (food_id, name) VALUES ($1, $2)`, f.ID, syn); err != nil {
				t.Fatalf("insert synonym %q: %v", syn, err)
			}
		}
		for _, r := range f.Rules {
			details := []byte("{}")
			if r.Details != nil {
				var err error
				if details, err = json.Marshal(r.Details); err != nil {
					t.Fatalf("marshal rule details: %v", err)
				}
			}
			var status sql.NullString
			if r.Status != "" {
				status = sql.NullString{String: r.Status, Valid: true}
			}
			if _, err := sqlDB.ExecContext(ctx,
				`INSERT INTO rules (id, food_id, rule_type, status, details) VALUES ($1, $2, $3, $4, $5)`,
				r.ID, f.ID, r.RuleType, status, string(details)); err != nil {
				t.Fatalf("insert rule %d: %v", r.ID, err)
			}
		}
	}
}
