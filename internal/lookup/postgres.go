package lookup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RowQuerier is the subset of *pgxpool.Pool used by Postgres.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres answers from a directory table with columns
// (id uuid, username text, full_name text).
type Postgres struct {
	db    RowQuerier
	query string
}

// NewPostgres returns a Postgres backend reading from table.
func NewPostgres(db RowQuerier, table string) *Postgres {
	ident := pgx.Identifier(strings.Split(table, "."))
	return &Postgres{
		db:    db,
		query: fmt.Sprintf("SELECT id, full_name FROM %s WHERE username = $1 LIMIT 1", ident.Sanitize()),
	}
}

// Lookup reports whether username has a row in the directory table.
func (p *Postgres) Lookup(ctx context.Context, username string) (Result, error) {
	var (
		id       uuid.UUID
		fullName *string
	)
	err := p.db.QueryRow(ctx, p.query, username).Scan(&id, &fullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFound(), nil
		}
		return nil, p.classify(ctx, err)
	}
	res := Found()
	res["id"] = id.String()
	if fullName != nil && *fullName != "" {
		res["full_name"] = *fullName
	}
	return res, nil
}

func (p *Postgres) classify(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("lookup/postgres: %w", ctxErr)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08 is connection_exception, 57P is operator intervention (shutdown)
		if strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P") {
			return fmt.Errorf("%w: postgres %s: %w", ErrUnavailable, pgErr.Code, err)
		}
		return fmt.Errorf("lookup/postgres: %s: %w", pgErr.Code, err)
	}
	var (
		connErr *pgconn.ConnectError
		netErr  net.Error
	)
	if errors.As(err, &connErr) || errors.As(err, &netErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: postgres: %w", ErrUnavailable, err)
	}
	return fmt.Errorf("lookup/postgres: %w", err)
}
