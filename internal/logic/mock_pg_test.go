package logic

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MockPgPool implements PgPool for testing. Calls are recorded because the
// leaderboard runs two queries concurrently.
type MockPgPool struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	mu      sync.Mutex
	Queries []string
}

func (m *MockPgPool) record(sql string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, sql)
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.record(sql)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockRows{}, nil
}

func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.record(sql)
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	return &MockRow{Err: pgx.ErrNoRows}
}

func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.record(sql)
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, args...)
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

// MockRows implements pgx.Rows over in-memory data
type MockRows struct {
	pgx.Rows
	Data    [][]any
	Index   int
	RowsErr error
	Closed  bool
}

func (m *MockRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockRows) Scan(dest ...any) error {
	if m.Index < 1 || m.Index > len(m.Data) {
		return errors.New("scan called without a current row")
	}
	return scanValues(m.Data[m.Index-1], dest)
}

func (m *MockRows) Close()     { m.Closed = true }
func (m *MockRows) Err() error { return m.RowsErr }

// MockRow implements pgx.Row
type MockRow struct {
	Values []any
	Err    error
}

func (m *MockRow) Scan(dest ...any) error {
	if m.Err != nil {
		return m.Err
	}
	return scanValues(m.Values, dest)
}

func scanValues(values []any, dest []any) error {
	if len(values) != len(dest) {
		return errors.New("mock row column count does not match scan targets")
	}
	for i, val := range values {
		setDest(dest[i], val)
	}
	return nil
}

// setDest assigns val to *dest, allocating when dest is a pointer to a pointer
// (the nullable-column case).
func setDest(dest any, val any) {
	v := reflect.ValueOf(dest).Elem()
	if val == nil {
		v.Set(reflect.Zero(v.Type()))
		return
	}
	valV := reflect.ValueOf(val)
	switch {
	case valV.Type().ConvertibleTo(v.Type()):
		v.Set(valV.Convert(v.Type()))
	case v.Kind() == reflect.Pointer && valV.Type().ConvertibleTo(v.Type().Elem()):
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(valV.Convert(v.Type().Elem()))
		v.Set(p)
	default:
		v.Set(valV)
	}
}
