package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	sqlOpenDB = sql.Open
	sqlite3WithInstance = sqlite3.WithInstance
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func tableNames(t *testing.T, p *Provider) []string {
	t.Helper()
	var names []string
	err := p.WithConn(context.Background(), func(q Querier) error {
		rows, err := q.QueryContext(context.Background(), q.Dialect().ListTablesQuery())
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var n string
			if err := rows.Scan(&n); err != nil {
				return err
			}
			names = append(names, n)
		}
		return rows.Err()
	})
	require.NoError(t, err)
	return names
}

func TestRunMigrationsSQLite(t *testing.T) {
	dsn := SQLiteDSN(filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, RunMigrations(SQLite, dsn))
	// second run is a no-op
	require.NoError(t, RunMigrations(SQLite, dsn))

	p := NewProvider(SQLite, dsn)
	require.Equal(t, []string{"QueryHistory", "Users"}, tableNames(t, p))

	require.NoError(t, RollbackAll(SQLite, dsn))
	require.Empty(t, tableNames(t, p))
}

func TestRunMigrationsKeepsExistingTables(t *testing.T) {
	ctx := context.Background()
	dsn := SQLiteDSN(filepath.Join(t.TempDir(), "m.db"))
	p := NewProvider(SQLite, dsn)
	err := p.WithConn(ctx, func(q Querier) error {
		_, err := q.ExecContext(ctx, `CREATE TABLE Users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_ts INTEGER)`)
		if err != nil {
			return err
		}
		_, err = q.ExecContext(ctx, "INSERT INTO Users (username, password_hash) VALUES ('old', 'h')")
		return err
	})
	require.NoError(t, err)

	require.NoError(t, RunMigrations(SQLite, dsn))

	var n int
	err = p.WithConn(ctx, func(q Querier) error {
		return q.QueryRowContext(ctx, "SELECT count(*) FROM Users").Scan(&n)
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRunMigrationsAndRollbackErrors(t *testing.T) {
	t.Cleanup(restore)

	sqlOpenDB = func(driver, dsn string) (*sql.DB, error) { return nil, errors.New("open") }
	require.Error(t, RunMigrations(SQLite, "url"))
	require.Error(t, RollbackAll(SQLite, "url"))

	sqlOpenDB = func(driver, dsn string) (*sql.DB, error) { return sql.Open("sqlite3", ":memory:") }
	sqlite3WithInstance = func(*sql.DB, *sqlite3.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
	require.Error(t, RunMigrations(SQLite, "url"))
	require.Error(t, RollbackAll(SQLite, "url"))

	sqlite3WithInstance = func(*sql.DB, *sqlite3.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
	require.Error(t, RunMigrations(SQLite, "url"))

	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return nil, errors.New("mig")
	}
	require.Error(t, RunMigrations(SQLite, "url"))

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return fakeMigrator{upErr: errors.New("u")}, nil
	}
	require.Error(t, RunMigrations(SQLite, "url"))

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return fakeMigrator{upErr: migrate.ErrNoChange, downErr: migrate.ErrNoChange}, nil
	}
	require.NoError(t, RunMigrations(SQLite, "url"))
	require.NoError(t, RollbackAll(SQLite, "url"))

	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return fakeMigrator{downErr: errors.New("d")}, nil
	}
	require.Error(t, RollbackAll(SQLite, "url"))
}

func TestEmbeddedMigrationsPerDialect(t *testing.T) {
	for _, d := range []Dialect{SQLite, Postgres} {
		entries, err := fs.ReadDir(migrationsFS, "migrations/"+d.Name())
		require.NoError(t, err, d.Name())
		require.Len(t, entries, 4, d.Name())
	}
}
