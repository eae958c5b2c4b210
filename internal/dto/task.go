package dto

import "github.com/sun1tar/task-service/internal/models"

// TaskRequest is the body of POST /tasks and PUT /tasks/{id}.
// Field order is the order in which validation errors are reported.
type TaskRequest struct {
	Title       string       `json:"title" validate:"notblank"`
	Description string       `json:"description" validate:"notblank,max=500"`
	DueDate     *models.Date `json:"dueDate" validate:"required"`
}

type TaskResponse struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     models.Date `json:"dueDate"`
}
