// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		err := db.WithConn(ctx, func(q database.Querier) error {
			return q.PingContext(ctx)
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.NewHTTPError("database unhealthy"))
		}
		return c.JSON(http.StatusOK, dto.PingResponse{Status: dto.StatusSuccess, Message: "pong"})
	}
}
