package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/career-compass/internal/types"
)

// LoadPostgres connects to a Postgres catalog database and loads the full
// catalog into memory. The connection is closed before returning: the catalog
// contract is load-once at process start, so nothing holds the pool open.
//
// Each table stores one serialized record per row, which keeps the relational
// side schema-free while the embedded JSON Schema validation still applies to
// hand-edited seed data.
func LoadPostgres(ctx context.Context, databaseURL string) (*MemoryStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}

	var s MemoryStore
	if err := loadRows(ctx, pool, `SELECT data FROM careers ORDER BY position`, &s.careers); err != nil {
		return nil, err
	}
	if err := loadRows(ctx, pool, `SELECT data FROM student_paths ORDER BY position`, &s.paths); err != nil {
		return nil, err
	}
	if err := loadRows(ctx, pool, `SELECT data FROM resources ORDER BY position`, &s.resources); err != nil {
		return nil, err
	}
	return &s, nil
}

func loadRows[T types.Career | types.CareerPath | types.Resource](ctx context.Context, pool *pgxpool.Pool, query string, out *[]T) error {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query catalog rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("failed to scan catalog row: %w", err)
		}
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return fmt.Errorf("failed to decode catalog row: %w", err)
		}
		*out = append(*out, record)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed reading catalog rows: %w", err)
	}
	return nil
}
