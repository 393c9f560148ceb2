// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"taskify/internal/api"
	"taskify/internal/handler"

	"github.com/labstack/echo/v4"
)

// RegisterPageHandler 描述註冊表單
// @Summary     Register form
// @Description 回傳註冊表單需要的欄位
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.FormResponse
// @Router      /register [get]
func RegisterPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.FormResponse{
			Message: "POST name, email and password to /register",
			Action:  "/register",
			Fields:  []string{"name", "email", "password"},
		})
	}
}

// RegisterHandler 建立新使用者
// @Summary     Register a new user
// @Description 接受 JSON 或表單；Email 會去除空白並轉小寫。表單送出成功時 303 轉址到 /login
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.MessageResponse
// @Success     303
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := auth.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
			return handler.WriteError(c, err)
		}

		if handler.IsFormRequest(c) {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "user registered"})
	}
}
