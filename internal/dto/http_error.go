// File: internal/dto/http_error.go
package dto

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	Status string `json:"status" example:"error"`
	// message 錯誤描述
	Message string `json:"message" example:"no such table: t"`
}

func NewHTTPError(message string) HTTPError {
	return HTTPError{Status: StatusError, Message: message}
}
