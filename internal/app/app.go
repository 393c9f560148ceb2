// File: internal/app/app.go
package app

import (
	"errors"

	"taskify/internal/cache"
	"taskify/internal/config"
	"taskify/internal/database"
	"taskify/internal/handler/auth"
	"taskify/internal/logger"
	"taskify/internal/service"
	"taskify/internal/store"
	"taskify/internal/worker"
)

// App 啟動時建立一次的行程範圍物件，交給 router 使用，關閉時呼叫 Close
type App struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      database.DB
	Cache   cache.Cache
	Workers worker.Pool

	Users    *store.UserStore
	Tasks    *store.TaskStore
	Sessions *service.SessionManager
	Auth     *service.Authenticator
	TaskSvc  *service.TaskService
}

// New 以已連線的資源組出所有 store 與 service
func New(cfg *config.Config, l *logger.Logger, db database.DB, c cache.Cache, workers worker.Pool) *App {
	a := &App{
		Config:  cfg,
		Logger:  l,
		DB:      db,
		Cache:   c,
		Workers: workers,
	}
	a.Users = store.NewUserStore(db)
	a.Tasks = store.NewTaskStore(db)
	a.Sessions = service.NewSessionManager(c, cfg.Session.Secret)
	a.Auth = service.NewAuthenticator(a.Users, a.Sessions, workers)
	a.TaskSvc = service.NewTaskService(a.Tasks)
	return a
}

// Cookie 會話 cookie 設定
func (a *App) Cookie() auth.CookieConfig {
	return auth.CookieConfig{
		Name:   a.Config.Session.CookieName,
		Secure: a.Config.Session.CookieSecure,
	}
}

// Close 依序停止 worker pool、Redis、Postgres
func (a *App) Close() error {
	if a.Workers != nil {
		a.Workers.Stop()
	}
	var errs []error
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.DB != nil {
		a.DB.Close()
	}
	return errors.Join(errs...)
}
