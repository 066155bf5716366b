package database

import (
	"database/sql"

	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Postgres serves the same endpoints from a PostgreSQL database through the
// pgx database/sql driver. Only the public schema is exposed.
var Postgres Dialect = postgresDialect{}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "pgx" }

func (postgresDialect) ListTablesQuery() string {
	return `SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		  AND table_name <> '` + MigrationsTable + `'
		ORDER BY table_name`
}

func (postgresDialect) TableColumnsQuery() string {
	return `SELECT c.ordinal_position - 1,
		       c.column_name,
		       c.data_type,
		       CASE WHEN c.is_nullable = 'NO' THEN 1 ELSE 0 END,
		       c.column_default,
		       COALESCE(k.ordinal_position, 0)
		FROM information_schema.columns c
		LEFT JOIN information_schema.table_constraints tc
		       ON tc.table_schema = c.table_schema
		      AND tc.table_name = c.table_name
		      AND tc.constraint_type = 'PRIMARY KEY'
		LEFT JOIN information_schema.key_column_usage k
		       ON k.constraint_schema = tc.constraint_schema
		      AND k.constraint_name = tc.constraint_name
		      AND k.column_name = c.column_name
		WHERE c.table_schema = 'public' AND c.table_name = $1
		ORDER BY c.ordinal_position`
}

func (postgresDialect) QuoteIdent(name string) string { return quoteIdent(name) }
func (postgresDialect) Rebind(query string) string    { return rebindDollar(query) }

// pgx already returns values as the column type defines them.
func (postgresDialect) RawSelect(string, []string) (string, bool) { return "", false }

func (postgresDialect) MigrationDriver(db *sql.DB) (dbdriver.Driver, error) {
	return postgresWithInstanceFn(db, &postgres.Config{})
}

var postgresWithInstanceFn = postgres.WithInstance
