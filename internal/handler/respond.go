// File: internal/handler/respond.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"taskify/internal/api"
	"taskify/internal/model"

	"github.com/labstack/echo/v4"
)

// IsFormRequest 判斷請求是否為表單送出；表單成功時回應 redirect，JSON 則回應 JSON
func IsFormRequest(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm)
}

// StatusFor 將服務層錯誤轉為 HTTP 狀態碼與訊息
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrDuplicateEmail):
		return http.StatusBadRequest, model.ErrDuplicateEmail.Error()
	case errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound, model.ErrUserNotFound.Error()
	case errors.Is(err, model.ErrTaskNotFound):
		return http.StatusNotFound, model.ErrTaskNotFound.Error()
	case errors.Is(err, model.ErrBadCredential):
		return http.StatusUnauthorized, model.ErrBadCredential.Error()
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, "login required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// WriteError 以 api.ErrorResponse 回應錯誤；500 會記錄原始錯誤
func WriteError(c echo.Context, err error) error {
	code, msg := StatusFor(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(code, api.ErrorResponse{Message: msg})
}
