// File: internal/service/execute.go
package service

import (
	"context"

	"sql-runner/internal/database"
	"sql-runner/internal/model"
	"sql-runner/internal/repository"
)

// QueryResult is the outcome of ExecuteQuery. Exactly one of Rows and the
// write fields is meaningful, depending on Kind.
type QueryResult struct {
	Kind         StatementKind
	Rows         *model.ResultSet
	RowsAffected *int64
	// HistoryErr is set when the history insert failed. It never fails the
	// request.
	HistoryErr error
}

// ExecuteQuery 執行任意 SQL。username 非空時於同一連線寫入 QueryHistory。
// The history insert runs after the statement has been committed, so a crash
// in between leaves an unlogged statement.
func ExecuteQuery(ctx context.Context, db database.DB, query, username string) (*QueryResult, error) {
	st, err := ClassifyStatement(query)
	if err != nil {
		return nil, err
	}

	res := &QueryResult{Kind: st.Kind}
	err = db.WithConn(ctx, func(q database.Querier) error {
		switch st.Kind {
		case StatementRead:
			rs, err := repository.RunSelect(ctx, q, st.Body)
			if err != nil {
				return err
			}
			res.Rows = rs
		default:
			n, err := repository.RunStatement(ctx, q, st.Body)
			if err != nil {
				return err
			}
			res.RowsAffected = n
		}

		if username != "" {
			res.HistoryErr = repository.AppendQueryHistory(ctx, q, model.QueryHistoryEntry{
				Username: username,
				Query:    st.Text,
				TS:       timeNow().Unix(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
