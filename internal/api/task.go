package api

import "taskify/internal/model"

// swagger:model api.CreateTaskRequest
type CreateTaskRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=100" example:"Buy milk"`
	Description *string `json:"description" form:"description" example:"2 liters"`
	Status      *string `json:"status" form:"status" validate:"omitempty,max=20" example:"pending"`
}

// UpdateTaskRequest 只有出現的欄位會被更新
// swagger:model api.UpdateTaskRequest
type UpdateTaskRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,max=100" example:"Buy oat milk"`
	Description *string `json:"description" form:"description" example:"1 liter"`
	Status      *string `json:"status" form:"status" validate:"omitempty,max=20" example:"done"`
}

// Patch 轉換為 model.TaskPatch
func (r UpdateTaskRequest) Patch() model.TaskPatch {
	return model.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
}

// swagger:model api.TaskMessageResponse
type TaskMessageResponse struct {
	Message string     `json:"message" example:"task created"`
	Task    model.Task `json:"task"`
}
