// @title        Taskify API
// @version      1.0
// @description  任務管理 API，使用 cookie 會話驗證
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"taskify/internal/app"
	"taskify/internal/cache"
	"taskify/internal/config"
	"taskify/internal/database"
	"taskify/internal/logger"
	mw "taskify/internal/middleware"
	"taskify/internal/router"
	"taskify/internal/worker"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "taskify/docs" // 引入 swag 產出的 docs
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig       = config.NewConfig
	newPgxPool       = database.NewPgxPool
	newRedisClient   = cache.NewRedisClient
	runMigrationsFn  = database.RunMigrations
	startServer      = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool    = worker.NewPool
	gracefulShutdown = func(ctx context.Context, timeout time.Duration, ops map[string]gfshutdown.Operation) <-chan int {
		return gfshutdown.GracefulShutdown(ctx, timeout, ops)
	}
	exitFunc = os.Exit
)

func newEcho(l *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(mw.RequestLogger(l))
	e.Use(middleware.Recover())
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	l := logger.New(cfg.LogLevel)
	slog.SetDefault(l.Logger)

	db, err := newPgxPool(context.Background(), cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		db.Close()
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		_ = rdb.Close()
		db.Close()
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	a := app.New(cfg, l, db, rdb, newWorkerPool(cfg.WorkerCount))
	defer func() {
		if err := a.Close(); err != nil {
			l.Error("close resources", "error", err)
		}
	}()

	e := newEcho(a.Logger)
	router.Setup(e, a)

	serverErr := make(chan error, 1)
	go func() {
		l.Info("http server listening", "addr", cfg.HTTP.Addr)
		serverErr <- startServer(e, cfg.HTTP.Addr)
	}()

	// 收到 SIGINT/SIGTERM 後先讓 HTTP 請求排空，再由 defer 關閉 worker 與連線
	wait := gracefulShutdown(context.Background(), cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http": func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return exitCode(<-wait)
		}
		if err != nil {
			return fmt.Errorf("HTTP 伺服器錯誤: %w", err)
		}
		return nil
	case code := <-wait:
		return exitCode(code)
	}
}

func exitCode(code int) error {
	if code != 0 {
		return fmt.Errorf("graceful shutdown exit code %d", code)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", "error", err)
		exitFunc(1)
	}
}
