// File: internal/dto/credentials_request.go
package dto

import "strings"

// swagger:model dto.SignupRequest
type SignupRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
}

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

func (r *SignupRequest) Trim() {
	r.Username = strings.TrimSpace(r.Username)
	r.Password = strings.TrimSpace(r.Password)
}

func (r *LoginRequest) Trim() {
	r.Username = strings.TrimSpace(r.Username)
	r.Password = strings.TrimSpace(r.Password)
}
