// File: internal/handler/auth/logout.go
package auth

import (
	"log/slog"
	"net/http"

	"taskify/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷目前會話並清除 cookie；沒有會話時一樣轉址
// @Summary     Log out
// @Tags        auth
// @Success     302
// @Router      /logout [get]
func LogoutHandler(sessions Sessions, cookie CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := middleware.SessionToken(c, cookie.Name); token != "" {
			if err := sessions.Logout(c.Request().Context(), token); err != nil {
				slog.WarnContext(c.Request().Context(), "revoke session", "error", err)
			}
		}
		c.SetCookie(cookie.clear())
		return c.Redirect(http.StatusFound, "/login")
	}
}

// HomeHandler 有有效會話時轉到 /tasks，否則轉到 /login
// @Summary     Home
// @Tags        auth
// @Success     302
// @Router      / [get]
func HomeHandler(sessions Sessions, cookie CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := middleware.SessionToken(c, cookie.Name)
		if token != "" {
			if _, err := sessions.Authorize(c.Request().Context(), token); err == nil {
				return c.Redirect(http.StatusFound, "/tasks")
			}
		}
		return c.Redirect(http.StatusFound, "/login")
	}
}
