package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/task-service/internal/dto"
)

type TaskService struct {
	helper *TaskDatabaseHelper
	mapper *TaskMapper
	logger *logrus.Logger
}

func NewTaskService(helper *TaskDatabaseHelper, mapper *TaskMapper, logger *logrus.Logger) *TaskService {
	return &TaskService{
		helper: helper,
		mapper: mapper,
		logger: logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.TaskRequest) (dto.TaskResponse, error) {
	s.logger.WithField("title", req.Title).Info("creating task")

	saved, err := s.helper.SaveTask(ctx, s.mapper.ToEntity(req))
	if err != nil {
		return dto.TaskResponse{}, err
	}
	return s.mapper.ToResponse(saved), nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]dto.TaskResponse, error) {
	s.logger.Info("fetching all tasks")

	tasks, err := s.helper.FindAllTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponseList(tasks), nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int64) (dto.TaskResponse, error) {
	task, err := s.helper.FindTaskByID(ctx, id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	return s.mapper.ToResponse(task), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, req dto.TaskRequest) (dto.TaskResponse, error) {
	s.logger.WithField("task_id", id).Info("updating task")

	updated, err := s.helper.UpdateTask(ctx, id, s.mapper.ToEntity(req))
	if err != nil {
		return dto.TaskResponse{}, err
	}
	return s.mapper.ToResponse(updated), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.helper.DeleteTaskByID(ctx, id)
}
