package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/kwloc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ kwloc.CityService = (*CityService)(nil)

// CityService implements kwloc.CityService using SQLite.
type CityService struct {
	db *DB
}

// NewCityService creates a new CityService.
func NewCityService(db *DB) *CityService {
	return &CityService{db: db}
}

// CreateCities inserts cities in one transaction, skipping slugs that
// already exist. IDs and timestamps are set only on inserted cities.
func (s *CityService) CreateCities(ctx context.Context, cities []*kwloc.City) (int, error) {
	for _, c := range cities {
		if err := c.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cities (id, name, state, slug, clinic_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (slug) DO NOTHING
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int
	now := time.Now().UTC()
	for _, c := range cities {
		id := uuid.New().String()
		result, err := stmt.ExecContext(ctx, id, c.Name, c.State, c.Slug, c.ClinicCount, now.Format(time.RFC3339))
		if err != nil {
			return 0, err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n > 0 {
			c.ID = id
			c.CreatedAt = now
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// FindCities retrieves cities matching the filter.
func (s *CityService) FindCities(ctx context.Context, filter kwloc.CityFilter) ([]*kwloc.City, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, state, slug, clinic_count, created_at FROM cities WHERE 1=1")

	if filter.State != nil {
		query.WriteString(" AND state = ?")
		args = append(args, *filter.State)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}

	query.WriteString(" ORDER BY state, slug")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []*kwloc.City
	for rows.Next() {
		var c kwloc.City
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.Slug, &c.ClinicCount, &createdAt); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		cities = append(cities, &c)
	}

	return cities, rows.Err()
}
