// File: internal/repository/user.go
package repository

import (
	"context"
	"fmt"

	"sql-runner/internal/database"
	"sql-runner/internal/model"
)

func GetUserByUsername(ctx context.Context, q database.Querier, username string) (*model.User, error) {
	row := q.QueryRowContext(ctx, q.Dialect().Rebind(
		`SELECT id, username, password_hash, created_ts
		 FROM Users WHERE username = ?`),
		username,
	)
	u := &model.User{}
	var created *int64
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&created,
	); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	if created != nil {
		u.CreatedTS = *created
	}
	return u, nil
}

func CreateUser(ctx context.Context, q database.Querier, u *model.User) (*model.User, error) {
	row := q.QueryRowContext(ctx, q.Dialect().Rebind(
		`INSERT INTO Users (username, password_hash, created_ts)
		 VALUES (?, ?, ?)
		 RETURNING id`),
		u.Username,
		u.PasswordHash,
		u.CreatedTS,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}
