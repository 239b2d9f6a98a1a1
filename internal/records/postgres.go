package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore reads rows from PostgreSQL (e.g. the Supabase project database).
type PostgresStore struct {
	db Querier
}

// NewPostgresStore creates a store over a pool or connection.
func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// GetByID implements Store.
func (s *PostgresStore) GetByID(ctx context.Context, table, id string) (Row, error) {
	query, err := selectByIDQuery(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("records: query %s: %w", table, err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, table, id)
		}
		return nil, fmt.Errorf("records: scan %s: %w", table, err)
	}

	return Row(row), nil
}

// selectByIDQuery builds the lookup for a whitelisted table.
// The id is compared as text so malformed ids read as "not found" instead of a uuid cast error.
func selectByIDQuery(table string) (string, error) {
	if err := checkTable(table); err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE id::text = $1 LIMIT 1",
		strings.Join(columns[table], ", "),
		pgx.Identifier{table}.Sanitize(),
	), nil
}

var _ Store = (*PostgresStore)(nil)
