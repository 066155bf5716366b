// File: internal/repository/query.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sql-runner/internal/database"
	"sql-runner/internal/model"
)

// go-sqlite3 converts values of columns declared with these types into
// time.Time and bool. Lower-cased, as the driver compares them.
var convertedDeclTypes = map[string]bool{
	"date":      true,
	"datetime":  true,
	"timestamp": true,
	"boolean":   true,
}

// RunSelect runs a read statement and decodes every row it returns. Only the
// first statement of query is compiled and run. Values come back as stored,
// not as the declared column type suggests.
func RunSelect(ctx context.Context, q database.Querier, query string) (*model.ResultSet, error) {
	stmt, err := q.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("RunSelect: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("RunSelect: %w", err)
	}
	defer rows.Close()

	cols, converted, err := inspectColumns(rows)
	if err != nil {
		return nil, fmt.Errorf("RunSelect: %w", err)
	}
	if !converted {
		return decodeRows(rows, nil)
	}
	wrapped, ok := q.Dialect().RawSelect(query, cols)
	if !ok {
		return decodeRows(rows, nil)
	}

	rows.Close()
	rs, err := selectWrapped(ctx, q, wrapped)
	if err == nil {
		rs.Columns = cols
		return rs, nil
	}

	// Not every SELECT can sit inside a CTE. Undo the conversions instead.
	rows, err = stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("RunSelect: %w", err)
	}
	defer rows.Close()
	return decodeRows(rows, sqliteStorageValue)
}

func decodeRows(rows *sql.Rows, conv func(any) any) (*model.ResultSet, error) {
	rs, err := scanResultSet(rows, conv)
	if err != nil {
		return nil, fmt.Errorf("RunSelect: %w", err)
	}
	return rs, nil
}

func selectWrapped(ctx context.Context, q database.Querier, query string) (*model.ResultSet, error) {
	stmt, err := q.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResultSet(rows, nil)
}

func inspectColumns(rows *sql.Rows) ([]string, bool, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, false, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, false, err
	}
	for _, ct := range types {
		if convertedDeclTypes[strings.ToLower(ct.DatabaseTypeName())] {
			return cols, true, nil
		}
	}
	return cols, false, nil
}

// sqliteStorageValue maps go-sqlite3's conversions back to storage classes:
// time.Time to SQLite date text, bool to 0 or 1.
func sqliteStorageValue(v any) any {
	switch v := v.(type) {
	case time.Time:
		s := v.Format("2006-01-02 15:04:05.999999999")
		if v.Location() != time.UTC {
			s += v.Format("-07:00")
		}
		return s
	case bool:
		if v {
			return int64(1)
		}
		return int64(0)
	default:
		return v
	}
}

// RunStatement runs a write statement in autocommit mode. Only the first
// statement of query is compiled and run. The returned count is nil when the
// driver cannot report one.
func RunStatement(ctx context.Context, q database.Querier, query string) (*int64, error) {
	stmt, err := q.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("RunStatement: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("RunStatement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, nil
	}
	return &n, nil
}

func scanResultSet(rows *sql.Rows, conv func(any) any) (*model.ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &model.ResultSet{Columns: cols, Rows: []map[string]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		pointers := make([]any, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, name := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			if conv != nil {
				v = conv(v)
			}
			row[name] = v
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if rs.Columns == nil {
		rs.Columns = []string{}
	}
	return rs, nil
}
