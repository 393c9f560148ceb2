// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"taskify/internal/cache"
	"taskify/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionTTL 會話自發出起固定有效一小時，不會因使用而延長
const SessionTTL = time.Hour

const sessionKeyPrefix = "session:"

var (
	timeNow         = time.Now
	newSessionID    = uuid.NewString
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
	parseWithClaims = jwt.ParseWithClaims
)

// sessionRecord 為存放在 Redis 的會話內容
type sessionRecord struct {
	UserID   int       `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// SessionManager 發出、驗證與撤銷會話。
// 會話狀態存放在 Redis；cookie 內只放 HS256 簽章過的會話 id。
type SessionManager struct {
	cache  cache.Cache
	secret []byte
}

func NewSessionManager(c cache.Cache, secret string) *SessionManager {
	return &SessionManager{cache: c, secret: []byte(secret)}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Issue 為 userID 建立新會話並回傳可放入 cookie 的 token
func (m *SessionManager) Issue(ctx context.Context, userID int) (*model.Session, error) {
	if len(m.secret) == 0 {
		return nil, fmt.Errorf("Issue: session secret not set")
	}

	now := timeNow()
	id := newSessionID()
	data, err := jsonMarshal(sessionRecord{UserID: userID, IssuedAt: now})
	if err != nil {
		return nil, fmt.Errorf("Issue: %w", err)
	}
	if err := m.cache.Set(ctx, sessionKey(id), data, SessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("Issue: store session: %w", err)
	}

	expiresAt := now.Add(SessionTTL)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        id,
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(ceilSecond(expiresAt)),
	}).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("Issue: sign token: %w", err)
	}

	return &model.Session{
		ID:        id,
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
		Token:     token,
	}, nil
}

// ceilSecond 將時間向上取整到秒；JWT exp 只有秒精度，
// 實際期限以 Redis 記錄的 issued_at 為準
func ceilSecond(t time.Time) time.Time {
	s := t.Truncate(time.Second)
	if s.Before(t) {
		s = s.Add(time.Second)
	}
	return s
}

func (m *SessionManager) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return m.secret, nil
}

// Authorize 驗證 token 並回傳對應的使用者 id。
// token 缺漏、簽章錯誤、逾時或已登出時回傳 model.ErrUnauthenticated。
func (m *SessionManager) Authorize(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: missing session", model.ErrUnauthenticated)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := parseWithClaims(token, claims, m.keyFunc,
		jwt.WithTimeFunc(timeNow),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}
	if !parsed.Valid || claims.ID == "" {
		return 0, fmt.Errorf("%w: invalid session token", model.ErrUnauthenticated)
	}

	raw, err := m.cache.Get(ctx, sessionKey(claims.ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("%w: session not found", model.ErrUnauthenticated)
	}
	if err != nil {
		return 0, fmt.Errorf("Authorize: %w", err)
	}

	var rec sessionRecord
	if err := jsonUnmarshal(raw, &rec); err != nil {
		return 0, fmt.Errorf("Authorize: %w", err)
	}
	if strconv.Itoa(rec.UserID) != claims.Subject {
		return 0, fmt.Errorf("%w: session subject mismatch", model.ErrUnauthenticated)
	}
	if timeNow().Sub(rec.IssuedAt) >= SessionTTL {
		return 0, fmt.Errorf("%w: session expired", model.ErrUnauthenticated)
	}
	return rec.UserID, nil
}

// Logout 立即刪除會話；token 無法解析時視為已登出
func (m *SessionManager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims := &jwt.RegisteredClaims{}
	if _, err := parseWithClaims(token, claims, m.keyFunc, jwt.WithoutClaimsValidation()); err != nil || claims.ID == "" {
		return nil
	}
	if err := m.cache.Del(ctx, sessionKey(claims.ID)).Err(); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}
	return nil
}
