// File: internal/router/router.go
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sql-runner/internal/database"
	"sql-runner/internal/handler"
	"sql-runner/internal/handler/auth"
	"sql-runner/internal/handler/query"
	"sql-runner/internal/handler/schema"
)

// Route 一筆路由定義
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
}

// Routes 回傳完整路由表；新增端點只需要在這裡加一行
func Routes(db database.DB) []Route {
	return []Route{
		// 健康檢查
		{http.MethodGet, "/ping", handler.PingHandler(db)},

		// 資料表瀏覽
		{http.MethodGet, "/tables", schema.ListTablesHandler(db)},
		{http.MethodGet, "/table-info/:name", schema.TableInfoHandler(db)},
		{http.MethodGet, "/preview/:name", schema.PreviewHandler(db)},

		// 執行 SQL 與查詢紀錄
		{http.MethodPost, "/execute-query", query.ExecuteQueryHandler(db)},
		{http.MethodGet, "/history", query.HistoryHandler(db)},

		// 帳號
		{http.MethodPost, "/signup", auth.SignupHandler(db)},
		{http.MethodPost, "/login", auth.LoginHandler(db)},
	}
}

// Setup 註冊所有路由
func Setup(e *echo.Echo, db database.DB) {
	for _, r := range Routes(db) {
		e.Add(r.Method, r.Path, r.Handler)
	}
}
