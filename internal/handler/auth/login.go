// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"taskify/internal/api"
	"taskify/internal/handler"

	"github.com/labstack/echo/v4"
)

// LoginPageHandler 描述登入表單
// @Summary     Login form
// @Description 回傳登入表單需要的欄位
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.FormResponse
// @Router      /login [get]
func LoginPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.FormResponse{
			Message: "POST email and password to /login",
			Action:  "/login",
			Fields:  []string{"email", "password"},
		})
	}
}

// LoginHandler 驗證 Email/Password 並以 cookie 發出一小時的會話
// @Summary     Log in
// @Description 成功時設定 HttpOnly 會話 cookie；表單送出成功時 303 轉址到 /tasks
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.MessageResponse
// @Success     303
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(auth Authenticator, cookie CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		session, err := auth.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.WriteError(c, err)
		}

		c.SetCookie(cookie.issue(session))
		if handler.IsFormRequest(c) {
			return c.Redirect(http.StatusSeeOther, "/tasks")
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "logged in"})
	}
}
