// File: internal/handler/query/history.go
package query

import (
	"net/http"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"
	"sql-runner/internal/handler"
	"sql-runner/internal/model"
	"sql-runner/internal/repository"

	"github.com/labstack/echo/v4"
)

// HistoryHandler 取得使用者最近的查詢紀錄 (最多 100 筆，新到舊)
// @Summary     Query history
// @Tags        query
// @Produce     json
// @Param       username query    string true "使用者名稱"
// @Success     200      {object} dto.HistoryResponse
// @Failure     400      {object} dto.HTTPError
// @Failure     500      {object} dto.HTTPError
// @Router      /history [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.QueryParam("username")
		if username == "" {
			return c.JSON(http.StatusBadRequest, dto.NewHTTPError("username required"))
		}

		ctx := c.Request().Context()
		var entries []model.QueryHistoryEntry
		err := db.WithConn(ctx, func(q database.Querier) error {
			var err error
			entries, err = repository.ListQueryHistory(ctx, q, username, repository.HistoryLimit)
			return err
		})
		if err != nil {
			return handler.Fail(c, http.StatusInternalServerError, err)
		}

		items := make([]dto.HistoryItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, dto.HistoryItem{Query: e.Query, TS: e.TS})
		}
		return c.JSON(http.StatusOK, dto.HistoryResponse{Status: dto.StatusSuccess, History: items})
	}
}
