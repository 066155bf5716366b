// File: internal/handler/respond.go
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"

	"github.com/labstack/echo/v4"
)

// StoreStatus maps a failed store interaction to its response code: errors
// raised by the store itself are the caller's fault, the rest are ours.
func StoreStatus(err error) int {
	if database.IsStoreError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Message is the text reported for err: the store's own message when err
// wraps one, err in full otherwise.
func Message(err error) string {
	if se := database.StoreError(err); se != nil {
		return se.Error()
	}
	return err.Error()
}

// Fail writes err in the error envelope.
func Fail(c echo.Context, status int, err error) error {
	return c.JSON(status, dto.NewHTTPError(Message(err)))
}

// BindFailed reports a request body echo could not bind. echo's own status
// (415 for an unsupported content type) is kept.
func BindFailed(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return c.JSON(he.Code, dto.NewHTTPError(fmt.Sprintf("invalid request body: %v", he.Message)))
	}
	return c.JSON(http.StatusBadRequest, dto.NewHTTPError(fmt.Sprintf("invalid request body: %v", err)))
}
