// File: internal/dto/schema_response.go
package dto

import "sql-runner/internal/model"

// swagger:model dto.TablesResponse
type TablesResponse struct {
	Status string   `json:"status" example:"success"`
	Tables []string `json:"tables"`
}

// swagger:model dto.TableInfoResponse
type TableInfoResponse struct {
	Status  string             `json:"status" example:"success"`
	Columns []model.ColumnInfo `json:"columns"`
	Sample  []map[string]any   `json:"sample"`
}

// swagger:model dto.PingResponse
type PingResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"pong"`
}
