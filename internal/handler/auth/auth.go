// File: internal/handler/auth/auth.go
package auth

import (
	"context"
	"net/http"

	"taskify/internal/model"
)

// Authenticator 註冊與登入
type Authenticator interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.Session, error)
}

// Sessions 驗證與撤銷既有會話
type Sessions interface {
	Authorize(ctx context.Context, token string) (int, error)
	Logout(ctx context.Context, token string) error
}

// CookieConfig 會話 cookie 設定
type CookieConfig struct {
	Name   string
	Secure bool
}

func (cfg CookieConfig) issue(s *model.Session) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(s.ExpiresAt.Sub(s.IssuedAt).Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// clear 讓瀏覽器立即刪除 cookie
func (cfg CookieConfig) clear() *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
