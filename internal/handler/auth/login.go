// File: internal/handler/auth/login.go
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

// LoginHandler 使用 Username/Password 驗證
// @Summary     登入使用者
// @Description 驗證成功僅回傳使用者名稱，不發行 session 或 token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "帳號密碼"
// @Success     200  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return handler.BindFailed(c, err)
		}
		req.Trim()
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewHTTPError(credentialsMessage(err)))
		}

		user, err := service.Login(c.Request().Context(), db, req.Username, req.Password)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return handler.Fail(c, http.StatusUnauthorized, err)
		case err != nil:
			return handler.Fail(c, http.StatusInternalServerError, err)
		}

		return c.JSON(http.StatusOK, dto.UserResponse{
			Status: dto.StatusSuccess,
			User:   dto.UserPayload{Username: user.Username},
		})
	}
}
