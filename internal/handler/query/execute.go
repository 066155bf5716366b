// File: internal/handler/query/execute.go
package query

import (
	"errors"
	"net/http"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"
	"sql-runner/internal/handler"
	"sql-runner/internal/service"

	"github.com/labstack/echo/v4"
)

// ExecuteQueryHandler 執行任意 SQL
// @Summary     Execute query
// @Description 以 SELECT 開頭者回傳結果集，其餘語句直接執行並回傳影響筆數。帶 username 時寫入查詢紀錄。
// @Tags        query
// @Accept      json
// @Produce     json
// @Param       body body     dto.ExecuteQueryRequest true "SQL 與選填的使用者名稱"
// @Success     200  {object} dto.RowsResponse "SELECT 結果；其他語句回傳 dto.ExecuteResponse"
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /execute-query [post]
func ExecuteQueryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ExecuteQueryRequest
		if err := c.Bind(&req); err != nil {
			return handler.BindFailed(c, err)
		}

		res, err := service.ExecuteQuery(c.Request().Context(), db, req.Query, req.Username)
		switch {
		case errors.Is(err, service.ErrEmptyQuery),
			errors.Is(err, service.ErrStatementNotAllowed),
			errors.Is(err, service.ErrMultipleStatements):
			return handler.Fail(c, http.StatusBadRequest, err)
		case err != nil:
			return handler.Fail(c, handler.StoreStatus(err), err)
		}

		c.Logger().Debugf("executed %s statement", res.Kind)
		if res.HistoryErr != nil {
			c.Logger().Warnf("query history not saved for %q: %v", req.Username, res.HistoryErr)
		}

		if res.Kind == service.StatementRead {
			return c.JSON(http.StatusOK, dto.RowsResponse{
				Status:  dto.StatusSuccess,
				Columns: res.Rows.Columns,
				Rows:    res.Rows.Rows,
			})
		}
		return c.JSON(http.StatusOK, dto.ExecuteResponse{
			Status:       dto.StatusSuccess,
			Message:      "Query executed",
			RowsAffected: res.RowsAffected,
		})
	}
}
