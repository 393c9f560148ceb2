// File: internal/model/task.go
package model

import "time"

// DefaultTaskStatus 建立任務時未指定狀態所使用的預設值
const DefaultTaskStatus = "pending"

type Task struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// TaskPatch 部分更新；nil 欄位保留原值
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// Empty 回報是否沒有任何欄位需要更新
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}
