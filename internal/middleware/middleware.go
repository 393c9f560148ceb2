package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"taskify/internal/model"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user_id"

// Authorizer 驗證會話 token 並回傳使用者 id
type Authorizer interface {
	Authorize(ctx context.Context, token string) (int, error)
}

// SessionToken 從 cookie 取出會話 token；沒有 cookie 時回傳空字串
func SessionToken(c echo.Context, cookieName string) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireSession 只放行帶有效會話的請求，並將使用者 id 存入 ContextUserKey
func RequireSession(auth Authorizer, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := auth.Authorize(c.Request().Context(), SessionToken(c, cookieName))
			if err != nil {
				if errors.Is(err, model.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "login required")
				}
				slog.ErrorContext(c.Request().Context(), "authorize session", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable")
			}
			c.Set(ContextUserKey, userID)
			return next(c)
		}
	}
}

// UserID 回傳 RequireSession 存入的使用者 id
func UserID(c echo.Context) (int, bool) {
	id, ok := c.Get(ContextUserKey).(int)
	return id, ok && id != 0
}
