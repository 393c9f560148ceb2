// File: internal/model/session.go
package model

import "time"

// Session 登入成功後發出的伺服器端會話
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	// Token 為放入 cookie 的簽章值，不寫入 Redis
	Token string `json:"-"`
}
