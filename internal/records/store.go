// Package records reads the keyed rows (users, jobs, clients) the
// assignment pipeline resolves. PostgresStore reads a live database;
// FixtureStore serves rows from a YAML file for local runs and demos.
package records

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tables read by the assignment pipeline.
const (
	TableUsers   = "users"
	TableJobs    = "jobs"
	TableClients = "clients"
)

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("records: row not found")

	// ErrUnknownTable is returned for tables outside the read whitelist.
	ErrUnknownTable = errors.New("records: unknown table")

	// ErrInvalidFixtures is returned when a fixtures file cannot be parsed.
	ErrInvalidFixtures = errors.New("records: invalid fixtures")
)

// Store looks up a single row by primary key.
type Store interface {
	// GetByID returns the row or ErrNotFound. Any other error is a store failure.
	GetByID(ctx context.Context, table, id string) (Row, error)
}

// Row is a single record keyed by column name.
type Row map[string]any

// String returns the column as a string; missing and NULL columns yield "".
func (r Row) String(column string) string {
	switch v := r[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Float returns the column as a number; ok is false for missing, NULL and non-numeric columns.
func (r Row) Float(column string) (float64, bool) {
	switch v := r[column].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// columns lists what each whitelisted table exposes. Casts keep uuid and
// numeric columns in plain Go types when rows are collected into maps.
var columns = map[string][]string{
	TableUsers: {
		"id::text AS id",
		"email",
		"full_name",
	},
	TableJobs: {
		"id::text AS id",
		"title",
		"client_id::text AS client_id",
		"mode",
		"jd_type",
		"jd_text",
		"jd_url",
		"location",
		"salary_min::float8 AS salary_min",
		"salary_max::float8 AS salary_max",
	},
	TableClients: {
		"id::text AS id",
		"name",
	},
}

func checkTable(table string) error {
	if _, ok := columns[table]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}
