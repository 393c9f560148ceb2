// File: internal/service/task.go
package service

import (
	"context"
	"fmt"
	"strings"

	"taskify/internal/model"
)

// TaskStore 為 TaskService 所需的任務存取操作
type TaskStore interface {
	CreateTask(ctx context.Context, t *model.Task) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id int) (*model.Task, error)
	UpdateTask(ctx context.Context, id int, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// CreateTaskInput Description 與 Status 為 nil 或空白時套用預設值
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *string
}

// TaskService 任務 CRUD；不檢查擁有者
type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrValidation)
	}

	task := &model.Task{Title: title, Status: model.DefaultTaskStatus}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		task.Status = strings.TrimSpace(*in.Status)
	}

	created, err := s.store.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return created, nil
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id int) (*model.Task, error) {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return task, nil
}

// Update 套用部分更新；patch 為空時僅回傳目前內容
func (s *TaskService) Update(ctx context.Context, id int, patch model.TaskPatch) (*model.Task, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", model.ErrValidation)
		}
		patch.Title = &title
	}
	if patch.Empty() {
		return s.Get(ctx, id)
	}

	task, err := s.store.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
