// File: internal/dto/user_response.go
package dto

type UserPayload struct {
	Username string `json:"username" example:"alice"`
}

// swagger:model dto.UserResponse
type UserResponse struct {
	Status string      `json:"status" example:"success"`
	User   UserPayload `json:"user"`
}
