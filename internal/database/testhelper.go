package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// OpenTestProvider migrates a fresh SQLite file under t.TempDir() and returns
// a provider for it.
func OpenTestProvider(t testing.TB) *Provider {
	t.Helper()
	dsn := SQLiteDSN(filepath.Join(t.TempDir(), "sql_runner.db"))
	if err := RunMigrations(SQLite, dsn); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return NewProvider(SQLite, dsn)
}

// OpenPostgresTestProvider migrates the database named by DATABASE_URL and
// rolls it back when the test ends. The test is skipped without one.
func OpenPostgresTestProvider(t testing.TB) *Provider {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if !strings.HasPrefix(url, "postgres://") && !strings.HasPrefix(url, "postgresql://") {
		t.Skip("DATABASE_URL not set to a PostgreSQL database")
	}
	if err := RunMigrations(Postgres, url); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() {
		if err := RollbackAll(Postgres, url); err != nil {
			t.Errorf("rollback migrations: %v", err)
		}
	})
	return NewProvider(Postgres, url)
}
