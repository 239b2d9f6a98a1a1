package records

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FixtureStore serves rows from memory, loaded from a YAML document:
//
//	users:
//	  - id: rec-1
//	    email: jane@example.com
//	    full_name: Jane Doe
//	jobs:
//	  - id: job-1
//	    title: Backend Engineer
//	    client_id: cli-1
//	    mode: Remote
//	    jd_type: text
//	    jd_text: Build APIs.
//	clients:
//	  - id: cli-1
//	    name: Acme
//
// Rows are read-only after loading, so the store is safe for concurrent use.
type FixtureStore struct {
	tables map[string]map[string]Row
}

// NewFixtureStore parses fixtures from YAML.
func NewFixtureStore(data []byte) (*FixtureStore, error) {
	var doc map[string][]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixtures, err)
	}

	s := &FixtureStore{tables: make(map[string]map[string]Row, len(doc))}
	for table, rows := range doc {
		if err := checkTable(table); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFixtures, err)
		}
		byID := make(map[string]Row, len(rows))
		for i, r := range rows {
			row := Row(r)
			id := row.String("id")
			if id == "" {
				return nil, fmt.Errorf("%w: %s row %d has no id", ErrInvalidFixtures, table, i)
			}
			byID[id] = row
		}
		s.tables[table] = byID
	}

	return s, nil
}

// LoadFixtures reads and parses a fixtures file.
func LoadFixtures(path string) (*FixtureStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("records: read fixtures: %w", err)
	}
	return NewFixtureStore(data)
}

// GetByID implements Store.
func (s *FixtureStore) GetByID(ctx context.Context, table, id string) (Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkTable(table); err != nil {
		return nil, err
	}

	row, ok := s.tables[table][id]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, table, id)
	}

	// Hand out a copy so callers cannot mutate the fixtures.
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out, nil
}

var _ Store = (*FixtureStore)(nil)
