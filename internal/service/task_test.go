package service

import (
	"context"
	"errors"
	"testing"

	"taskify/internal/model"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

type errTaskStore struct{ *memTaskStore }

func (errTaskStore) CreateTask(context.Context, *model.Task) (*model.Task, error) {
	return nil, errors.New("insert")
}

func (errTaskStore) ListTasks(context.Context) ([]model.Task, error) {
	return nil, errors.New("select")
}

func findTask(tasks []model.Task, id int) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func TestTaskCreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newMemTaskStore())

	task, err := svc.Create(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	require.NotZero(t, task.ID)
	require.False(t, task.CreatedAt.IsZero())
	require.Equal(t, "pending", task.Status)
	require.Equal(t, "", task.Description)

	blank, err := svc.Create(ctx, CreateTaskInput{Title: "x", Status: ptr("  ")})
	require.NoError(t, err)
	require.Equal(t, model.DefaultTaskStatus, blank.Status)

	custom, err := svc.Create(ctx, CreateTaskInput{Title: " Walk ", Description: ptr("dog"), Status: ptr("in-progress")})
	require.NoError(t, err)
	require.Equal(t, "Walk", custom.Title)
	require.Equal(t, "dog", custom.Description)
	require.Equal(t, "in-progress", custom.Status)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	got, ok := findTask(list, task.ID)
	require.True(t, ok)
	require.Equal(t, "Buy milk", got.Title)
	require.Equal(t, "pending", got.Status)
}

func TestTaskCreateRequiresTitle(t *testing.T) {
	svc := NewTaskService(newMemTaskStore())
	_, err := svc.Create(context.Background(), CreateTaskInput{Title: "   "})
	require.ErrorIs(t, err, model.ErrValidation)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestTaskUpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newMemTaskStore())
	orig, err := svc.Create(ctx, CreateTaskInput{Title: "Buy milk", Description: ptr("2L")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, orig.ID, model.TaskPatch{Status: ptr("done")})
	require.NoError(t, err)
	require.Equal(t, "done", updated.Status)
	require.Equal(t, orig.Title, updated.Title)
	require.Equal(t, orig.Description, updated.Description)
	require.Equal(t, orig.CreatedAt, updated.CreatedAt)

	same, err := svc.Update(ctx, orig.ID, model.TaskPatch{})
	require.NoError(t, err)
	require.Equal(t, updated, same)

	_, err = svc.Update(ctx, orig.ID, model.TaskPatch{Title: ptr(" ")})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.Update(ctx, 999, model.TaskPatch{Status: ptr("done")})
	require.ErrorIs(t, err, model.ErrTaskNotFound)
	_, err = svc.Update(ctx, 999, model.TaskPatch{})
	require.ErrorIs(t, err, model.ErrTaskNotFound)
}

func TestTaskDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemTaskStore()
	svc := NewTaskService(store)
	task, err := svc.Create(ctx, CreateTaskInput{Title: "t"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	_, ok := findTask(list, task.ID)
	require.False(t, ok)

	require.ErrorIs(t, svc.Delete(ctx, task.ID), model.ErrTaskNotFound)
	_, err = svc.Get(ctx, task.ID)
	require.ErrorIs(t, err, model.ErrTaskNotFound)

	next, err := svc.Create(ctx, CreateTaskInput{Title: "n"})
	require.NoError(t, err)
	require.Greater(t, next.ID, task.ID)
}

func TestTaskScenario(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newMemTaskStore())

	task, err := svc.Create(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	require.Equal(t, "pending", task.Status)
	require.NotZero(t, task.ID)
	require.False(t, task.CreatedAt.IsZero())

	task, err = svc.Update(ctx, task.ID, model.TaskPatch{Status: ptr("done")})
	require.NoError(t, err)
	require.Equal(t, "done", task.Status)
	require.Equal(t, "Buy milk", task.Title)

	require.NoError(t, svc.Delete(ctx, task.ID))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	_, ok := findTask(list, task.ID)
	require.False(t, ok)
}

func TestTaskStoreErrors(t *testing.T) {
	svc := NewTaskService(errTaskStore{newMemTaskStore()})
	_, err := svc.Create(context.Background(), CreateTaskInput{Title: "x"})
	require.Error(t, err)
	_, err = svc.List(context.Background())
	require.Error(t, err)
}
