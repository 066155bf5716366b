// File: internal/repository/query_history.go
package repository

import (
	"context"
	"fmt"

	"sql-runner/internal/database"
	"sql-runner/internal/model"
)

// HistoryLimit caps ListQueryHistory.
const HistoryLimit = 100

func AppendQueryHistory(ctx context.Context, q database.Querier, e model.QueryHistoryEntry) error {
	_, err := q.ExecContext(ctx, q.Dialect().Rebind(
		`INSERT INTO QueryHistory (username, query, ts) VALUES (?, ?, ?)`),
		e.Username,
		e.Query,
		e.TS,
	)
	if err != nil {
		return fmt.Errorf("AppendQueryHistory: %w", err)
	}
	return nil
}

// ListQueryHistory 回傳該使用者最新的紀錄 (新到舊)
func ListQueryHistory(ctx context.Context, q database.Querier, username string, limit int) ([]model.QueryHistoryEntry, error) {
	if limit <= 0 || limit > HistoryLimit {
		limit = HistoryLimit
	}
	rows, err := q.QueryContext(ctx, q.Dialect().Rebind(
		`SELECT id, username, query, ts FROM QueryHistory
		 WHERE username = ?
		 ORDER BY ts DESC, id DESC
		 LIMIT ?`),
		username,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListQueryHistory: %w", err)
	}
	defer rows.Close()

	entries := []model.QueryHistoryEntry{}
	for rows.Next() {
		var (
			e     model.QueryHistoryEntry
			query *string
			ts    *int64
		)
		if err := rows.Scan(&e.ID, &e.Username, &query, &ts); err != nil {
			return nil, fmt.Errorf("ListQueryHistory: %w", err)
		}
		if query != nil {
			e.Query = *query
		}
		if ts != nil {
			e.TS = *ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListQueryHistory: %w", err)
	}
	return entries, nil
}
