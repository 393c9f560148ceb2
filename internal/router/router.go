// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskify/internal/app"
	"taskify/internal/handler"
	"taskify/internal/handler/auth"
	"taskify/internal/handler/tasks"
	"taskify/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, a *app.App) {
	cookie := a.Cookie()

	// 健康檢查
	e.GET("/ping", handler.PingHandler(a.DB, a.Cache))

	// 註冊、登入、登出
	e.GET("/", auth.HomeHandler(a.Sessions, cookie))
	e.GET("/register", auth.RegisterPageHandler())
	e.POST("/register", auth.RegisterHandler(a.Auth))
	e.GET("/login", auth.LoginPageHandler())
	e.POST("/login", auth.LoginHandler(a.Auth, cookie))
	e.GET("/logout", auth.LogoutHandler(a.Sessions, cookie))

	// 任務 CRUD（需登入）
	t := e.Group("/tasks", middleware.RequireSession(a.Sessions, cookie.Name))
	t.POST("", tasks.CreateTaskHandler(a.TaskSvc))
	t.GET("", tasks.ListTasksHandler(a.TaskSvc))
	t.GET("/:id", tasks.GetTaskHandler(a.TaskSvc))
	t.PUT("/:id", tasks.UpdateTaskHandler(a.TaskSvc))
	t.DELETE("/:id", tasks.DeleteTaskHandler(a.TaskSvc))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
