package lookup

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/usercheck/internal/platform/httpx"
)

type fakeRow struct {
	id       uuid.UUID
	fullName *string
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(**string) = r.fullName
	return nil
}

type fakeQuerier struct {
	row   fakeRow
	sql   string
	args  []any
	calls int
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.calls++
	q.sql = sql
	q.args = args
	return q.row
}

func strPtr(s string) *string { return &s }

func TestPostgresQueryUsesSanitizedTable(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	backend := NewPostgres(q, "directory.users")

	_, err := backend.Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, `SELECT id, full_name FROM "directory"."users" WHERE username = $1 LIMIT 1`, q.sql)
	assert.Equal(t, []any{"alice"}, q.args)
}

func TestPostgresFound(t *testing.T) {
	id := uuid.MustParse("6f1c0d3e-8a53-4bb0-9d8e-2b0a5f6c1e77")
	q := &fakeQuerier{row: fakeRow{id: id, fullName: strPtr("Alice Liddell")}}

	res, err := NewPostgres(q, "directory_users").Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, Result{"has": "true", "id": id.String(), "full_name": "Alice Liddell"}, res)
}

func TestPostgresNullFullName(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{id: uuid.New()}}

	res, err := NewPostgres(q, "directory_users").Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, res.Has())
	_, ok := res["full_name"]
	assert.False(t, ok)
}

func TestPostgresNotFound(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

	res, err := NewPostgres(q, "directory_users").Lookup(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, NotFound(), res)
}

func TestPostgresErrorClassification(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		unavailable bool
		status      int
	}{
		{"connection exception", &pgconn.PgError{Code: "08006"}, true, 503},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true, 503},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, false, 500},
		{"network", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, true, 503},
		{"other", errors.New("boom"), false, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := &fakeQuerier{row: fakeRow{err: tc.err}}
			_, err := NewPostgres(q, "directory_users").Lookup(context.Background(), "alice")
			require.Error(t, err)
			assert.Equal(t, tc.unavailable, errors.Is(err, ErrUnavailable))
			assert.Equal(t, tc.status, httpx.StatusFor(err))
		})
	}
}

func TestPostgresDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	q := &fakeQuerier{row: fakeRow{err: errors.New("timeout: context deadline exceeded")}}

	_, err := NewPostgres(q, "directory_users").Lookup(ctx, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 504, httpx.StatusFor(err))
}
