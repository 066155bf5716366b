// File: internal/handler/auth/validation.go
package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	msgCredentialsRequired = "username and password required"
	msgPasswordTooShort    = "password must be at least 6 characters"
)

// credentialsMessage 把 validator 的錯誤轉成對外訊息
func credentialsMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return msgCredentialsRequired
		}
	}
	for _, fe := range verrs {
		if fe.Tag() == "min" {
			return msgPasswordTooShort
		}
	}
	return err.Error()
}
