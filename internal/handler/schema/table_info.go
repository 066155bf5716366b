// File: internal/handler/schema/table_info.go
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

// TableInfoHandler 取得欄位定義與前幾筆資料
// @Summary     Table info
// @Description 回傳欄位資訊 (cid, name, type, notnull, dflt_value, pk) 與最多 5 筆範例資料
// @Tags        schema
// @Produce     json
// @Param       name path     string true "資料表名稱"
// @Success     200  {object} dto.TableInfoResponse
// @Failure     400  {object} dto.HTTPError "資料表不存在"
// @Failure     500  {object} dto.HTTPError
// @Router      /table-info/{name} [get]
func TableInfoHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		name := c.Param("name")

		var (
			cols   []model.ColumnInfo
			sample *model.ResultSet
		)
		err := db.WithConn(ctx, func(q database.Querier) error {
			var err error
			if cols, err = repository.TableColumns(ctx, q, name); err != nil {
				return err
			}
			sample, err = repository.SampleRows(ctx, q, name)
			return err
		})
		if err != nil {
			return handler.Fail(c, handler.StoreStatus(err), err)
		}
		return c.JSON(http.StatusOK, dto.TableInfoResponse{
			Status:  dto.StatusSuccess,
			Columns: cols,
			Sample:  sample.Rows,
		})
	}
}
