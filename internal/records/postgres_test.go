package records

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	called := m.Called(ctx, sql, args)
	rows, _ := called.Get(0).(pgx.Rows)
	return rows, called.Error(1)
}

// fakeRows is an in-memory pgx.Rows holding at most a handful of rows.
type fakeRows struct {
	columns []string
	values  [][]any
	pos     int
}

func newFakeRows(columns []string, values ...[]any) *fakeRows {
	return &fakeRows{columns: columns, values: values, pos: -1}
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fields[i] = pgconn.FieldDescription{Name: c}
	}
	return fields
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.values)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.values[r.pos], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) == 1 {
		if rs, ok := dest[0].(pgx.RowScanner); ok {
			return rs.ScanRow(r)
		}
	}
	return errors.New("fakeRows: only RowScanner destinations are supported")
}

func TestPostgresStore_GetByID(t *testing.T) {
	t.Parallel()

	db := &mockQuerier{}
	db.On("Query", mock.Anything, mock.MatchedBy(func(sql string) bool {
		return sql == `SELECT id::text AS id, email, full_name FROM "users" WHERE id::text = $1 LIMIT 1`
	}), []any{"rec-1"}).
		Return(newFakeRows([]string{"id", "email", "full_name"}, []any{"rec-1", "jane@example.com", "Jane Doe"}), nil).
		Once()

	row, err := NewPostgresStore(db).GetByID(context.Background(), TableUsers, "rec-1")
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", row.String("email"))
	require.Equal(t, "Jane Doe", row.String("full_name"))
	db.AssertExpectations(t)
}

func TestPostgresStore_NotFound(t *testing.T) {
	t.Parallel()

	db := &mockQuerier{}
	db.On("Query", mock.Anything, mock.Anything, mock.Anything).
		Return(newFakeRows([]string{"id", "name"}), nil).
		Once()

	_, err := NewPostgresStore(db).GetByID(context.Background(), TableClients, "cli-404")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_QueryError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	db := &mockQuerier{}
	db.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, cause).Once()

	_, err := NewPostgresStore(db).GetByID(context.Background(), TableJobs, "job-1")
	require.ErrorIs(t, err, cause)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestPostgresStore_UnknownTable(t *testing.T) {
	t.Parallel()

	db := &mockQuerier{}

	_, err := NewPostgresStore(db).GetByID(context.Background(), "secrets", "x")
	require.ErrorIs(t, err, ErrUnknownTable)
	db.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}
