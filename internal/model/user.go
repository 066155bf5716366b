// File: internal/model/user.go
package model

type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	CreatedTS    int64  `db:"created_ts" json:"created_ts"`
}
