// File: internal/model/table.go
package model

// ColumnInfo mirrors one row of SQLite's PRAGMA table_info.
type ColumnInfo struct {
	CID          int    `json:"cid"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	NotNull      int    `json:"notnull"`
	DefaultValue any    `json:"dflt_value"`
	PK           int    `json:"pk"`
}

// ResultSet is a decoded result: ordered column names and one
// name-to-value map per row. Duplicate column names collapse, last one wins.
type ResultSet struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
