// File: internal/model/query_history.go
package model

// QueryHistoryEntry 一筆執行紀錄，ts 為 unix 秒
type QueryHistoryEntry struct {
	ID       int64  `db:"id" json:"-"`
	Username string `db:"username" json:"-"`
	Query    string `db:"query" json:"query"`
	TS       int64  `db:"ts" json:"ts"`
}
