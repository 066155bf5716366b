// File: internal/dto/execute_query_request.go
package dto

// swagger:model dto.ExecuteQueryRequest
type ExecuteQueryRequest struct {
	Query string `json:"query" example:"SELECT * FROM Users"`
	// 選填，有值時寫入 QueryHistory
	Username string `json:"username,omitempty" example:"alice"`
}
