package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsStoreError(t *testing.T) {
	ctx := context.Background()
	p := OpenTestProvider(t)

	err := p.WithConn(ctx, func(q Querier) error {
		_, err := q.ExecContext(ctx, "SELEC nonsense")
		return err
	})
	require.Error(t, err)
	require.True(t, IsStoreError(err))
	require.True(t, IsStoreError(fmt.Errorf("wrapped: %w", err)))

	require.True(t, IsStoreError(&UnknownTableError{Table: "nope"}))
	require.True(t, IsStoreError(&pgconn.PgError{Code: "42601"}))
	require.False(t, IsStoreError(errors.New("connection refused")))
	require.False(t, IsStoreError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	p := OpenTestProvider(t)

	insert := func(q Querier) error {
		_, err := q.ExecContext(ctx, "INSERT INTO Users (username, password_hash) VALUES ('a', 'h')")
		return err
	}
	require.NoError(t, p.WithConn(ctx, insert))
	err := p.WithConn(ctx, insert)
	require.Error(t, err)
	require.True(t, IsUniqueViolation(err))

	err = p.WithConn(ctx, func(q Querier) error {
		_, err := q.ExecContext(ctx, "INSERT INTO Users (username) VALUES ('b')")
		return err
	})
	require.Error(t, err)
	require.False(t, IsUniqueViolation(err), "NOT NULL is not a duplicate")

	require.True(t, IsUniqueViolation(fmt.Errorf("CreateUser: %w", &pgconn.PgError{Code: "23505"})))
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23502"}))
	require.False(t, IsUniqueViolation(errors.New("x")))
}

func TestUnknownTableError(t *testing.T) {
	require.EqualError(t, &UnknownTableError{Table: "ghost"}, "no such table: ghost")
}

func TestStoreError(t *testing.T) {
	unknown := &UnknownTableError{Table: "t"}
	require.Same(t, unknown, StoreError(fmt.Errorf("SampleRows: %w", unknown)))
	require.IsType(t, &pgconn.PgError{}, StoreError(fmt.Errorf("x: %w", &pgconn.PgError{Code: "42601"})))
	require.Nil(t, StoreError(errors.New("closed")))
}
