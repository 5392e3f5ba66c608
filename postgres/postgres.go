// Package postgres loads cities into the directory's hosted Postgres store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fwojciec/kwloc"
	_ "github.com/lib/pq"
)

// batchSize bounds the rows per INSERT to stay well under the
// 65535-parameter limit.
const batchSize = 50

// Compile-time interface verification.
var _ kwloc.CityService = (*CityService)(nil)

// DB represents a Postgres connection pool.
type DB struct {
	db  *sql.DB
	dsn string
}

// NewDB creates a new DB for the given DSN.
func NewDB(dsn string) *DB {
	return &DB{dsn: dsn}
}

// Open opens the connection pool and verifies the server is reachable.
// The cities table is owned by the directory and is not created here.
func (db *DB) Open(ctx context.Context) error {
	conn, err := sql.Open("postgres", db.dsn)
	if err != nil {
		return fmt.Errorf("postgres: open: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("postgres: ping: %w", err)
	}
	db.db = conn
	return nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// CityService implements kwloc.CityService against the hosted cities table.
type CityService struct {
	db *DB
}

// NewCityService creates a new CityService.
func NewCityService(db *DB) *CityService {
	return &CityService{db: db}
}

// CreateCities batch-inserts cities, skipping slugs that already exist.
func (s *CityService) CreateCities(ctx context.Context, cities []*kwloc.City) (int, error) {
	for _, c := range cities {
		if err := c.Validate(); err != nil {
			return 0, err
		}
	}
	if len(cities) == 0 {
		return 0, nil
	}

	tx, err := s.db.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	var inserted int
	for i := 0; i < len(cities); i += batchSize {
		end := min(i+batchSize, len(cities))
		query, args := insertQuery(cities[i:end])
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("postgres: insert cities: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("postgres: commit: %w", err)
	}
	return inserted, nil
}

// insertQuery builds a parameterized multi-row insert for batch.
func insertQuery(batch []*kwloc.City) (string, []any) {
	values := make([]string, 0, len(batch))
	args := make([]any, 0, len(batch)*4)

	for i, c := range batch {
		base := i * 4
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, c.Name, c.State, c.Slug, c.ClinicCount)
	}

	query := "INSERT INTO cities (name, state, slug, clinic_count) VALUES " +
		strings.Join(values, ", ") +
		" ON CONFLICT (slug) DO NOTHING"
	return query, args
}

// FindCities retrieves cities matching the filter.
func (s *CityService) FindCities(ctx context.Context, filter kwloc.CityFilter) ([]*kwloc.City, error) {
	query, args := findQuery(filter)

	rows, err := s.db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: find cities: %w", err)
	}
	defer rows.Close()

	var cities []*kwloc.City
	for rows.Next() {
		var c kwloc.City
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.Slug, &c.ClinicCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan city: %w", err)
		}
		cities = append(cities, &c)
	}
	return cities, rows.Err()
}

// findQuery builds the select for filter with numbered placeholders.
func findQuery(filter kwloc.CityFilter) (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id::text, name, state, slug, clinic_count, created_at FROM cities WHERE 1=1")

	if filter.State != nil {
		args = append(args, *filter.State)
		fmt.Fprintf(&query, " AND state = $%d", len(args))
	}
	if filter.Slug != nil {
		args = append(args, *filter.Slug)
		fmt.Fprintf(&query, " AND slug = $%d", len(args))
	}

	query.WriteString(" ORDER BY state, slug")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}

	return query.String(), args
}
