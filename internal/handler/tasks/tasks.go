// File: internal/handler/tasks/tasks.go
package tasks

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"taskify/internal/api"
	"taskify/internal/handler"
	"taskify/internal/middleware"
	"taskify/internal/model"
	"taskify/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 任務的 CRUD 操作
type Service interface {
	Create(ctx context.Context, in service.CreateTaskInput) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id int) (*model.Task, error)
	Update(ctx context.Context, id int, patch model.TaskPatch) (*model.Task, error)
	Delete(ctx context.Context, id int) error
}

// taskID 解析路徑參數 :id
func taskID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// audit 記錄執行變更的使用者
func audit(c echo.Context, msg string, taskID int) {
	userID, _ := middleware.UserID(c)
	slog.InfoContext(c.Request().Context(), msg, "task_id", taskID, "user_id", userID)
}

func badID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid task ID"})
}

// CreateTaskHandler 新增任務
// @Summary     Create a task
// @Description 標題必填；描述預設為空字串，狀態預設為 pending。表單送出成功時 303 轉址到 /tasks
// @Tags        tasks
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.CreateTaskRequest true "任務內容"
// @Success     201  {object} api.TaskMessageResponse
// @Success     303
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /tasks [post]
func CreateTaskHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		task, err := svc.Create(c.Request().Context(), service.CreateTaskInput{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
		})
		if err != nil {
			return handler.WriteError(c, err)
		}
		audit(c, "task created", task.ID)

		if handler.IsFormRequest(c) {
			return c.Redirect(http.StatusSeeOther, "/tasks")
		}
		return c.JSON(http.StatusCreated, api.TaskMessageResponse{Message: "task created", Task: *task})
	}
}

// ListTasksHandler 列出所有任務
// @Summary     List tasks
// @Tags        tasks
// @Produce     json
// @Success     200 {array}  model.Task
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tasks [get]
func ListTasksHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context())
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// GetTaskHandler 取得單一任務
// @Summary     Get a task
// @Tags        tasks
// @Produce     json
// @Param       id  path     int true "任務 ID"
// @Success     200 {object} model.Task
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /tasks/{id} [get]
func GetTaskHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := taskID(c)
		if !ok {
			return badID(c)
		}
		task, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

// UpdateTaskHandler 部分更新任務，只有送出的欄位會被修改
// @Summary     Update a task
// @Tags        tasks
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path     int                   true "任務 ID"
// @Param       body body     api.UpdateTaskRequest true "要修改的欄位"
// @Success     200  {object} api.TaskMessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /tasks/{id} [put]
func UpdateTaskHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := taskID(c)
		if !ok {
			return badID(c)
		}
		var req api.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		task, err := svc.Update(c.Request().Context(), id, req.Patch())
		if err != nil {
			return handler.WriteError(c, err)
		}
		audit(c, "task updated", id)
		return c.JSON(http.StatusOK, api.TaskMessageResponse{Message: "task updated", Task: *task})
	}
}

// DeleteTaskHandler 刪除任務
// @Summary     Delete a task
// @Tags        tasks
// @Produce     json
// @Param       id  path     int true "任務 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /tasks/{id} [delete]
func DeleteTaskHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := taskID(c)
		if !ok {
			return badID(c)
		}
		if err := svc.Delete(c.Request().Context(), id); err != nil {
			return handler.WriteError(c, err)
		}
		audit(c, "task deleted", id)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "task deleted"})
	}
}
