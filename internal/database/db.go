package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is what repositories run statements against. *Conn implements it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	PingContext(ctx context.Context) error
	Dialect() Dialect
}

// DB hands out one scoped connection per call.
type DB interface {
	WithConn(ctx context.Context, fn func(Querier) error) error
}

// Conn is a single pinned connection tagged with the dialect it speaks.
type Conn struct {
	*sql.Conn
	dialect Dialect
}

func (c *Conn) Dialect() Dialect {
	return c.dialect
}

var sqlOpen = sql.Open

// Provider opens a fresh handle for every WithConn call. There is no pool
// shared between calls.
type Provider struct {
	dialect Dialect
	dsn     string
}

func NewProvider(dialect Dialect, dsn string) *Provider {
	return &Provider{dialect: dialect, dsn: dsn}
}

func (p *Provider) Dialect() Dialect {
	return p.dialect
}

// WithConn opens the store, pins one connection and runs fn on it. The
// connection and the handle are released on every exit path, panics included.
func (p *Provider) WithConn(ctx context.Context, fn func(Querier) error) error {
	db, err := sqlOpen(p.dialect.DriverName(), p.dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", p.dialect.Name(), err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("connect %s: %w", p.dialect.Name(), err)
	}
	defer conn.Close()

	return fn(&Conn{Conn: conn, dialect: p.dialect})
}

// FakeDB lets handler tests script WithConn.
type FakeDB struct {
	WithConnFn func(ctx context.Context, fn func(Querier) error) error
}

func (f *FakeDB) WithConn(ctx context.Context, fn func(Querier) error) error {
	if f.WithConnFn != nil {
		return f.WithConnFn(ctx, fn)
	}
	panic("unexpected WithConn")
}
