package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const pgUniqueViolation = "23505"

// UnknownTableError reports a table name that is not in the catalog.
type UnknownTableError struct {
	Table string
}

func (e *UnknownTableError) Error() string {
	return "no such table: " + e.Table
}

// StoreError returns the error raised by the store itself (bad SQL,
// constraint violation, unknown table) wrapped somewhere in err, or nil when
// err came from connectivity or the process.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	var unknown *UnknownTableError
	if errors.As(err, &unknown) {
		return unknown
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr
	}
	var sqliteErrPtr *sqlite3.Error
	if errors.As(err, &sqliteErrPtr) {
		return sqliteErrPtr
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

func IsStoreError(err error) bool {
	return StoreError(err) != nil
}

// IsUniqueViolation reports whether err is a unique-constraint failure.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
