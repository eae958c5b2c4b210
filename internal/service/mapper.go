package service

import (
	"github.com/sirupsen/logrus"
	"github.com/sun1tar/task-service/internal/dto"
	"github.com/sun1tar/task-service/internal/models"
)

// TaskMapper converts between wire DTOs and stored tasks. It never validates.
type TaskMapper struct {
	logger *logrus.Logger
}

func NewTaskMapper(logger *logrus.Logger) *TaskMapper {
	return &TaskMapper{logger: logger}
}

func (m *TaskMapper) ToEntity(req dto.TaskRequest) *models.Task {
	m.logger.WithField("component", "mapper").Debug("mapping task request to entity")

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	return task
}

func (m *TaskMapper) ToResponse(t *models.Task) dto.TaskResponse {
	m.logger.WithFields(logrus.Fields{
		"component": "mapper",
		"task_id":   t.ID,
	}).Debug("mapping task entity to response")

	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
	}
}

func (m *TaskMapper) ToResponseList(tasks []*models.Task) []dto.TaskResponse {
	m.logger.WithFields(logrus.Fields{
		"component": "mapper",
		"count":     len(tasks),
	}).Debug("mapping task entities to responses")

	result := make([]dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = m.ToResponse(t)
	}
	return result
}
