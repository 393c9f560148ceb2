package store

import (
	"context"
	"errors"
	"fmt"

	"taskify/internal/database"
	"taskify/internal/model"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `id, title, description, status, created_at`

// TaskStore 存取 tasks 資料表
type TaskStore struct {
	db database.DB
}

func NewTaskStore(db database.DB) *TaskStore {
	return &TaskStore{db: db}
}

func scanTask(row pgx.Row) (*model.Task, error) {
	t := &model.Task{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskStore) CreateTask(ctx context.Context, t *model.Task) (*model.Task, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		t.Title,
		t.Description,
		t.Status,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

// ListTasks 回傳所有任務，依 id 排序
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListTasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("ListTasks: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskStore) GetTask(ctx context.Context, id int) (*model.Task, error) {
	t, err := scanTask(s.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetTask: %w", model.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("GetTask: %w", err)
	}
	return t, nil
}

// UpdateTask 只更新 patch 中非 nil 的欄位（NULL 參數經 COALESCE 保留原值）
func (s *TaskStore) UpdateTask(ctx context.Context, id int, patch model.TaskPatch) (*model.Task, error) {
	t, err := scanTask(s.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = COALESCE($1, title),
		     description = COALESCE($2, description),
		     status = COALESCE($3, status)
		 WHERE id = $4
		 RETURNING `+taskColumns,
		patch.Title,
		patch.Description,
		patch.Status,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("UpdateTask: %w", model.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("UpdateTask: %w", err)
	}
	return t, nil
}

func (s *TaskStore) DeleteTask(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteTask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTask: %w", model.ErrTaskNotFound)
	}
	return nil
}
