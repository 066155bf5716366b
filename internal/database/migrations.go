// File: internal/database/migrations.go
package database

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
	Down() error
}

var (
	sqlOpenDB              = sql.Open
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// RunMigrations 建立 Users 與 QueryHistory (up all)
func RunMigrations(d Dialect, dsn string) error {
	return withMigrator(d, dsn, func(m migrateInstance) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	})
}

// RollbackAll 退回所有 migration (down to version 0)
func RollbackAll(d Dialect, dsn string) error {
	return withMigrator(d, dsn, func(m migrateInstance) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	})
}

func withMigrator(d Dialect, dsn string, fn func(migrateInstance) error) error {
	sqlDB, err := sqlOpenDB(d.DriverName(), dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	driver, err := d.MigrationDriver(sqlDB)
	if err != nil {
		return err
	}

	// 每個 dialect 各自一個 migrations 子目錄
	sourceDriver, err := iofsNewFn(migrationsFS, "migrations/"+d.Name())
	if err != nil {
		return err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, d.Name(), driver)
	if err != nil {
		return err
	}
	return fn(m)
}
