// File: internal/handler/schema/tables.go
package schema

import (
	"net/http"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"
	"sql-runner/internal/handler"
	"sql-runner/internal/repository"

	"github.com/labstack/echo/v4"
)

// ListTablesHandler 列出所有使用者資料表
// @Summary     List tables
// @Description 回傳資料庫中所有使用者資料表名稱 (不含系統表)
// @Tags        schema
// @Produce     json
// @Success     200 {object} dto.TablesResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /tables [get]
func ListTablesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var tables []string
		err := db.WithConn(ctx, func(q database.Querier) error {
			var err error
			tables, err = repository.ListTables(ctx, q)
			return err
		})
		if err != nil {
			return handler.Fail(c, http.StatusInternalServerError, err)
		}
		return c.JSON(http.StatusOK, dto.TablesResponse{Status: dto.StatusSuccess, Tables: tables})
	}
}
