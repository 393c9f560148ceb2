package api

import "strings"

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=100" example:"Alice"`
	Email    string `json:"email" form:"email" validate:"required,max=100" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,max=72" example:"Secret123!"`
}

// Normalize 去除姓名與 Email 前後空白並將 Email 轉小寫，需在 Validate 之前呼叫
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"alice@example.com"`
	Password string `json:"password" form:"password" example:"Secret123!"`
}

// FormResponse 描述表單頁面需要送出的欄位
// swagger:model api.FormResponse
type FormResponse struct {
	Message string   `json:"message" example:"POST email and password to /login"`
	Action  string   `json:"action" example:"/login"`
	Fields  []string `json:"fields" example:"email,password"`
}
