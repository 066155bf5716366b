// File: internal/service/account.go
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sql-runner/internal/database"
	"sql-runner/internal/model"
	"sql-runner/internal/repository"
)

var (
	// ErrUsernameTaken 帳號已存在
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned for an unknown user and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var timeNow = time.Now

// Signup 建立帳號並儲存 bcrypt 雜湊。輸入須已 trim 並驗證。
func Signup(ctx context.Context, db database.DB, username, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *model.User
	err = db.WithConn(ctx, func(q database.Querier) error {
		u, err := repository.CreateUser(ctx, q, &model.User{
			Username:     username,
			PasswordHash: hash,
			CreatedTS:    timeNow().Unix(),
		})
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return created, nil
}

// Login 驗證帳密，成功回傳使用者
func Login(ctx context.Context, db database.DB, username, password string) (*model.User, error) {
	var user *model.User
	err := db.WithConn(ctx, func(q database.Querier) error {
		u, err := repository.GetUserByUsername(ctx, q, username)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
