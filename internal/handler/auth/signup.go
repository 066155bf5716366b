// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"
	"sql-runner/internal/handler"
	"sql-runner/internal/service"

	"github.com/labstack/echo/v4"
)

// SignupHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 使用者名稱與密碼會先去除前後空白；密碼至少 6 個字元
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.SignupRequest true "帳號密碼"
// @Success     200  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return handler.BindFailed(c, err)
		}
		req.Trim()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewHTTPError(credentialsMessage(err)))
		}

		user, err := service.Signup(c.Request().Context(), db, req.Username, req.Password)
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			return handler.Fail(c, http.StatusBadRequest, err)
		case err != nil:
			return handler.Fail(c, http.StatusInternalServerError, err)
		}

		return c.JSON(http.StatusOK, dto.UserResponse{
			Status: dto.StatusSuccess,
			User:   dto.UserPayload{Username: user.Username},
		})
	}
}
