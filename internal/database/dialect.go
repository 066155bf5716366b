package database

import (
	"database/sql"
	"strconv"
	"strings"

	dbdriver "github.com/golang-migrate/migrate/v4/database"
)

// MigrationsTable is the bookkeeping table golang-migrate keeps in the store.
// It is treated like a system catalog table and never listed.
const MigrationsTable = "schema_migrations"

// Dialect captures everything that differs between the supported stores.
type Dialect interface {
	// Name is the migrate database name and the migrations sub-directory.
	Name() string
	// DriverName is the database/sql driver name.
	DriverName() string
	ListTablesQuery() string
	// TableColumnsQuery selects cid, name, type, notnull, dflt_value, pk for
	// the table bound to the single placeholder.
	TableColumnsQuery() string
	QuoteIdent(name string) string
	// Rebind rewrites ? placeholders into the dialect's native form.
	Rebind(query string) string
	// RawSelect wraps a single SELECT so that every column comes back as the
	// stored value, without driver conversions driven by the declared type.
	// ok is false when the dialect needs no wrapping.
	RawSelect(query string, columns []string) (wrapped string, ok bool)
	MigrationDriver(db *sql.DB) (dbdriver.Driver, error)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func rebindDollar(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
