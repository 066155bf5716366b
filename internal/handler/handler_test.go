package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sql-runner/internal/database"
	"sql-runner/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.HTTPError {
	t.Helper()
	var body dto.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPingHandler(t *testing.T) {
	e := echo.New()

	// 正常
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, PingHandler(database.OpenTestProvider(t))(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	var ok dto.PingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	require.Equal(t, dto.PingResponse{Status: dto.StatusSuccess, Message: "pong"}, ok)

	// 連線失敗
	fake := &database.FakeDB{WithConnFn: func(context.Context, func(database.Querier) error) error {
		return errors.New("connect sqlite3: boom")
	}}
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, PingHandler(fake)(e.NewContext(req, rec)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, dto.NewHTTPError("database unhealthy"), decodeError(t, rec))
}

func TestStoreStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, StoreStatus(&database.UnknownTableError{Table: "x"}))
	require.Equal(t, http.StatusBadRequest, StoreStatus(sqlite3.Error{Code: sqlite3.ErrError}))
	require.Equal(t, http.StatusInternalServerError, StoreStatus(errors.New("disk gone")))
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("SampleRows: %w", &database.UnknownTableError{Table: "t"})
	require.Equal(t, "no such table: t", Message(wrapped))
	require.Equal(t, "RunSelect: boom", Message(fmt.Errorf("RunSelect: %w", errors.New("boom"))))
}

func TestFail(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Fail(c, http.StatusTeapot, errors.New("short and stout")))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, dto.NewHTTPError("short and stout"), decodeError(t, rec))
}

func TestBindFailed(t *testing.T) {
	e := echo.New()

	// echo.HTTPError 保留原本的狀態碼
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, BindFailed(c, echo.ErrUnsupportedMediaType))
	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	require.True(t, strings.HasPrefix(decodeError(t, rec).Message, "invalid request body"))

	// 其他錯誤一律 400
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, BindFailed(c, errors.New("bad")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid request body: bad", decodeError(t, rec).Message)
}

func TestCustomValidator(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(&dto.LoginRequest{Username: "a", Password: "b"}))
	require.Error(t, v.Validate(&dto.LoginRequest{Username: "a"}))
	require.Error(t, v.Validate(&dto.SignupRequest{Username: "a", Password: "12345"}))
}
