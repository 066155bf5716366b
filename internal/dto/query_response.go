// File: internal/dto/query_response.go
package dto

// swagger:model dto.RowsResponse
type RowsResponse struct {
	Status  string           `json:"status" example:"success"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// swagger:model dto.ExecuteResponse
type ExecuteResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Query executed"`
	// null when the driver cannot report a count
	RowsAffected *int64 `json:"rows_affected" example:"1"`
}

type HistoryItem struct {
	Query string `json:"query" example:"SELECT 1"`
	TS    int64  `json:"ts" example:"1700000000"`
}

// swagger:model dto.HistoryResponse
type HistoryResponse struct {
	Status  string        `json:"status" example:"success"`
	History []HistoryItem `json:"history"`
}
