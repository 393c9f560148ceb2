package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"taskify/internal/cache"
	"taskify/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	newSessionID = uuid.NewString
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	parseWithClaims = jwt.ParseWithClaims
}

// memUserStore 以 email 為唯一鍵，模擬資料庫的 unique 約束
type memUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*model.User{}}
}

func (s *memUserStore) CreateUser(_ context.Context, u *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return nil, model.ErrDuplicateEmail
	}
	s.nextID++
	cp := *u
	cp.ID = s.nextID
	cp.CreatedAt = time.Now()
	s.users[u.Email] = &cp
	out := cp
	return &out, nil
}

func (s *memUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *memUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// memTaskStore 的 id 只增不減，刪除後不重複使用
type memTaskStore struct {
	mu     sync.Mutex
	nextID int
	tasks  map[int]model.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: map[int]model.Task{}}
}

func (s *memTaskStore) CreateTask(_ context.Context, t *model.Task) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t.ID = s.nextID
	t.CreatedAt = time.Now().UTC()
	s.tasks[t.ID] = *t
	out := *t
	return &out, nil
}

func (s *memTaskStore) ListTasks(context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memTaskStore) GetTask(_ context.Context, id int) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, model.ErrTaskNotFound
	}
	return &t, nil
}

func (s *memTaskStore) UpdateTask(_ context.Context, id int, p model.TaskPatch) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, model.ErrTaskNotFound
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	s.tasks[id] = t
	return &t, nil
}

func (s *memTaskStore) DeleteTask(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return model.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// newMapCache 回傳以 map 為後端的 FakeCache 與記錄 TTL 的 map
func newMapCache() (*cache.FakeCache, map[string][]byte, map[string]time.Duration) {
	var mu sync.Mutex
	data := map[string][]byte{}
	ttls := map[string]time.Duration{}
	c := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			mu.Lock()
			defer mu.Unlock()
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(string(v), nil)
		},
		SetFn: func(_ context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			mu.Lock()
			defer mu.Unlock()
			data[key] = val.([]byte)
			ttls[key] = exp
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			mu.Lock()
			defer mu.Unlock()
			var n int64
			for _, k := range keys {
				if _, ok := data[k]; ok {
					delete(data, k)
					n++
				}
			}
			return redis.NewIntResult(n, nil)
		},
	}
	return c, data, ttls
}
