// File: internal/repository/schema.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"sql-runner/internal/database"
	"sql-runner/internal/model"
)

// SampleLimit is the number of rows table previews return.
const SampleLimit = 5

// ListTables 列出使用者資料表 (不含系統表)
func ListTables(ctx context.Context, q database.Querier) ([]string, error) {
	rows, err := q.QueryContext(ctx, q.Dialect().ListTablesQuery())
	if err != nil {
		return nil, fmt.Errorf("ListTables: %w", err)
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("ListTables: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTables: %w", err)
	}
	return tables, nil
}

// LookupTable succeeds only for an exact catalog table name. Callers must
// pass every caller-supplied name through it before quoting it into SQL.
func LookupTable(ctx context.Context, q database.Querier, name string) error {
	tables, err := ListTables(ctx, q)
	if err != nil {
		return err
	}
	for _, t := range tables {
		if t == name {
			return nil
		}
	}
	return &database.UnknownTableError{Table: name}
}

func TableColumns(ctx context.Context, q database.Querier, table string) ([]model.ColumnInfo, error) {
	if err := LookupTable(ctx, q, table); err != nil {
		return nil, fmt.Errorf("TableColumns: %w", err)
	}
	rows, err := q.QueryContext(ctx, q.Dialect().TableColumnsQuery(), table)
	if err != nil {
		return nil, fmt.Errorf("TableColumns: %w", err)
	}
	defer rows.Close()

	cols := []model.ColumnInfo{}
	for rows.Next() {
		var (
			c    model.ColumnInfo
			dflt sql.NullString
		)
		if err := rows.Scan(&c.CID, &c.Name, &c.Type, &c.NotNull, &dflt, &c.PK); err != nil {
			return nil, fmt.Errorf("TableColumns: %w", err)
		}
		if dflt.Valid {
			c.DefaultValue = dflt.String
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TableColumns: %w", err)
	}
	return cols, nil
}

// SampleRows 取前 SampleLimit 筆資料
func SampleRows(ctx context.Context, q database.Querier, table string) (*model.ResultSet, error) {
	if err := LookupTable(ctx, q, table); err != nil {
		return nil, fmt.Errorf("SampleRows: %w", err)
	}
	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d", q.Dialect().QuoteIdent(table), SampleLimit)
	rs, err := RunSelect(ctx, q, query)
	if err != nil {
		return nil, fmt.Errorf("SampleRows: %w", err)
	}
	return rs, nil
}
