package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"task not found"`
}
