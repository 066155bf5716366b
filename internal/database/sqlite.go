package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/mattn/go-sqlite3"
)

const defaultBusyTimeout = "5000" // ms

// SQLite is the default dialect: one database file on local disk.
var SQLite Dialect = sqliteDialect{}

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return "sqlite3" }
func (sqliteDialect) DriverName() string { return "sqlite3" }

func (sqliteDialect) ListTablesQuery() string {
	return `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name != '` + MigrationsTable + `'
		ORDER BY name`
}

// pragma_table_info takes the table name as a bound argument, so the name is
// never spliced into SQL here.
func (sqliteDialect) TableColumnsQuery() string {
	return `SELECT cid, name, type, "notnull", dflt_value, pk
		FROM pragma_table_info(?) ORDER BY cid`
}

func (sqliteDialect) QuoteIdent(name string) string { return quoteIdent(name) }
func (sqliteDialect) Rebind(query string) string    { return query }

// rawSelectCTE names the CTE RawSelect wraps a query in.
const rawSelectCTE = "sql_runner_raw"

// RawSelect runs query as a CTE and re-selects every column through unary +.
// The result columns then carry no declared type, so go-sqlite3 leaves
// DATE, DATETIME, TIMESTAMP and BOOLEAN values as stored. The newline before
// the closing parenthesis ends a trailing line comment.
func (d sqliteDialect) RawSelect(query string, columns []string) (string, bool) {
	if len(columns) == 0 {
		return "", false
	}
	params := make([]string, len(columns))
	exprs := make([]string, len(columns))
	for i, name := range columns {
		params[i] = fmt.Sprintf("c%d", i)
		exprs[i] = fmt.Sprintf("+c%d AS %s", i, d.QuoteIdent(name))
	}
	return fmt.Sprintf("WITH %s(%s) AS (\n%s\n) SELECT %s FROM %s",
		rawSelectCTE, strings.Join(params, ", "), query, strings.Join(exprs, ", "), rawSelectCTE), true
}

func (sqliteDialect) MigrationDriver(db *sql.DB) (dbdriver.Driver, error) {
	return sqlite3WithInstance(db, &sqlite3.Config{})
}

var sqlite3WithInstance = sqlite3.WithInstance

// SQLiteDSN builds the DSN for a database file. Writers wait on the busy
// timeout before a lock conflict is reported. Every other pragma keeps the
// SQLite default, foreign key enforcement included.
func SQLiteDSN(path string) string {
	params := url.Values{}
	params.Set("_busy_timeout", defaultBusyTimeout)
	return path + "?" + params.Encode()
}
