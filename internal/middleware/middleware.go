package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"sql-runner/internal/dto"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Stack 回傳全域中介層：存取紀錄、panic 復原、CORS
func Stack(allowOrigins []string) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echomw.Logger(),
		echomw.Recover(),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: allowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}),
	}
}

// ErrorHandler renders every error that escapes a handler (unknown route,
// wrong method, recovered panic) in the same envelope the handlers use.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, dto.NewHTTPError(msg))
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
