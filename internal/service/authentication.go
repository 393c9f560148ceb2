// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskify/internal/model"
	"taskify/internal/worker"

	"golang.org/x/crypto/bcrypt"
)

// UserStore 為 Authenticator 所需的使用者存取操作
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// SessionIssuer 在登入成功後發出會話
type SessionIssuer interface {
	Issue(ctx context.Context, userID int) (*model.Session, error)
}

// Authenticator 處理註冊與登入
type Authenticator struct {
	users    UserStore
	sessions SessionIssuer
	// hashers 限制同時進行的 bcrypt 運算；nil 時直接在呼叫端 goroutine 執行
	hashers worker.Pool
}

func NewAuthenticator(users UserStore, sessions SessionIssuer, hashers worker.Pool) *Authenticator {
	return &Authenticator{users: users, sessions: sessions, hashers: hashers}
}

// NormalizeEmail 去除前後空白並轉小寫，作為唯一性比對的 key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register 建立新使用者。欄位缺漏回傳 model.ErrValidation；
// email 已被註冊回傳 model.ErrDuplicateEmail。
func (a *Authenticator) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", model.ErrValidation)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", model.ErrValidation, maxPasswordBytes)
	}

	var hash string
	err := a.runHash(ctx, func() error {
		var err error
		hash, err = HashPassword(password)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Register: hash password: %w", err)
	}

	user, err := a.users.CreateUser(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	return user, nil
}

// Login 驗證帳密並發出會話。
// 使用者不存在回傳 model.ErrUserNotFound；密碼錯誤回傳 model.ErrBadCredential。
func (a *Authenticator) Login(ctx context.Context, email, password string) (*model.Session, error) {
	user, err := a.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}

	err = a.runHash(ctx, func() error {
		return ComparePassword(user.PasswordHash, password)
	})
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, fmt.Errorf("Login: %w", model.ErrBadCredential)
	}
	if err != nil {
		return nil, fmt.Errorf("Login: compare password: %w", err)
	}

	session, err := a.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	return session, nil
}

func (a *Authenticator) runHash(ctx context.Context, fn func() error) error {
	if a.hashers == nil {
		return fn()
	}
	return worker.Run(ctx, a.hashers, fn)
}
