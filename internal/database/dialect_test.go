package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	require.Equal(t, `"users"`, SQLite.QuoteIdent("users"))
	require.Equal(t, `"a""b"`, Postgres.QuoteIdent(`a"b`))
	require.Equal(t, `"x; DROP TABLE y"`, SQLite.QuoteIdent("x; DROP TABLE y"))
}

func TestRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE b = ? AND c = ?"
	require.Equal(t, q, SQLite.Rebind(q))
	require.Equal(t, "SELECT a FROM t WHERE b = $1 AND c = $2", Postgres.Rebind(q))
	require.Equal(t, "SELECT 1", Postgres.Rebind("SELECT 1"))
}

func TestDialectNames(t *testing.T) {
	require.Equal(t, "sqlite3", SQLite.Name())
	require.Equal(t, "sqlite3", SQLite.DriverName())
	require.Equal(t, "postgres", Postgres.Name())
	require.Equal(t, "pgx", Postgres.DriverName())
	require.Contains(t, SQLite.ListTablesQuery(), MigrationsTable)
	require.Contains(t, Postgres.ListTablesQuery(), MigrationsTable)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := SQLiteDSN("/data/sql_runner.db")
	require.Contains(t, dsn, "/data/sql_runner.db?")
	require.Contains(t, dsn, "_busy_timeout=5000")
	require.NotContains(t, dsn, "_foreign_keys")
}

func TestSQLiteForeignKeysOff(t *testing.T) {
	ctx := context.Background()
	p := OpenTestProvider(t)

	err := p.WithConn(ctx, func(q Querier) error {
		if _, err := q.ExecContext(ctx, "CREATE TABLE parent (id INTEGER PRIMARY KEY)"); err != nil {
			return err
		}
		if _, err := q.ExecContext(ctx, "CREATE TABLE child (pid INTEGER REFERENCES parent(id))"); err != nil {
			return err
		}
		// dangling reference is accepted, as with a plain sqlite3 connection
		_, err := q.ExecContext(ctx, "INSERT INTO child VALUES (42)")
		return err
	})
	require.NoError(t, err)
}

func TestRawSelect(t *testing.T) {
	q, ok := SQLite.RawSelect("SELECT * FROM ev -- all", []string{"at", `we"ird`})
	require.True(t, ok)
	require.Equal(t, "WITH sql_runner_raw(c0, c1) AS (\nSELECT * FROM ev -- all\n) SELECT +c0 AS \"at\", +c1 AS \"we\"\"ird\" FROM sql_runner_raw", q)

	_, ok = SQLite.RawSelect("SELECT 1", nil)
	require.False(t, ok)
	_, ok = Postgres.RawSelect("SELECT now()", []string{"now"})
	require.False(t, ok)
}
