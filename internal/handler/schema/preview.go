// File: internal/handler/schema/preview.go
package schema

import (
	"net/http"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"
	"sql-runner/internal/handler"
	"sql-runner/internal/model"
	"sql-runner/internal/repository"

	"github.com/labstack/echo/v4"
)

// PreviewHandler 預覽資料表前幾筆資料
// @Summary     Preview table
// @Tags        schema
// @Produce     json
// @Param       name path     string true "資料表名稱"
// @Success     200  {object} dto.RowsResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /preview/{name} [get]
func PreviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		name := c.Param("name")

		var rs *model.ResultSet
		err := db.WithConn(ctx, func(q database.Querier) error {
			var err error
			rs, err = repository.SampleRows(ctx, q, name)
			return err
		})
		if err != nil {
			return handler.Fail(c, handler.StoreStatus(err), err)
		}
		return c.JSON(http.StatusOK, dto.RowsResponse{
			Status:  dto.StatusSuccess,
			Columns: rs.Columns,
			Rows:    rs.Rows,
		})
	}
}
