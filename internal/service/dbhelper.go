package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/task-service/internal/models"
	"github.com/sun1tar/task-service/internal/repository"
)

// TaskDatabaseHelper wraps the repository and turns its results into
// NotFoundError, SaveError, RetrievalError and DeletionError.
type TaskDatabaseHelper struct {
	repo   repository.TaskRepository
	logger *logrus.Logger
}

func NewTaskDatabaseHelper(repo repository.TaskRepository, logger *logrus.Logger) (*TaskDatabaseHelper, error) {
	if repo == nil {
		return nil, ErrRepositoryNil
	}
	return &TaskDatabaseHelper{repo: repo, logger: logger}, nil
}

func (h *TaskDatabaseHelper) entry(operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"component": "db_helper",
		"operation": operation,
	})
}

func (h *TaskDatabaseHelper) SaveTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	logEntry := h.entry("save")

	saved, err := h.repo.Save(ctx, task)
	if err != nil {
		logEntry.WithError(err).WithField("title", task.Title).Error("failed to save task")
		return nil, &SaveError{Msg: "Failed to save task", Err: err}
	}

	logEntry.WithField("task_id", saved.ID).Info("task saved")
	return saved, nil
}

func (h *TaskDatabaseHelper) FindAllTasks(ctx context.Context) ([]*models.Task, error) {
	logEntry := h.entry("find_all")

	tasks, err := h.repo.FindAll(ctx)
	if err != nil {
		logEntry.WithError(err).Error("failed to fetch tasks")
		return nil, &RetrievalError{Msg: "Failed to retrieve tasks", Err: err}
	}

	logEntry.WithField("count", len(tasks)).Info("tasks fetched")
	return tasks, nil
}

func (h *TaskDatabaseHelper) FindTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	logEntry := h.entry("find_by_id").WithField("task_id", id)

	task, err := h.repo.FindByID(ctx, id)
	if err != nil {
		logEntry.WithError(err).Error("failed to fetch task")
		return nil, &RetrievalError{Msg: fmt.Sprintf("Failed to fetch task with ID: %d", id), Err: err}
	}
	if task == nil {
		logEntry.Warn("task not found")
		return nil, &NotFoundError{ID: id}
	}

	logEntry.Info("task fetched")
	return task, nil
}

// UpdateTask overwrites title, description and due date of an existing task.
// The lookup and the write are separate store calls; a concurrent delete in
// between surfaces as a SaveError from the write.
func (h *TaskDatabaseHelper) UpdateTask(ctx context.Context, id int64, updated *models.Task) (*models.Task, error) {
	logEntry := h.entry("update").WithField("task_id", id)

	existing, err := h.repo.FindByID(ctx, id)
	if err != nil {
		logEntry.WithError(err).Error("failed to load task for update")
		return nil, &SaveError{Msg: "Failed to save task", Err: err}
	}
	if existing == nil {
		logEntry.Warn("task not found for update")
		return nil, &NotFoundError{ID: id}
	}

	existing.Title = updated.Title
	existing.Description = updated.Description
	existing.DueDate = updated.DueDate

	saved, err := h.repo.Save(ctx, existing)
	if err != nil {
		logEntry.WithError(err).Error("failed to save updated task")
		return nil, &SaveError{Msg: "Failed to save task", Err: err}
	}

	logEntry.Info("task updated")
	return saved, nil
}

func (h *TaskDatabaseHelper) DeleteTaskByID(ctx context.Context, id int64) error {
	logEntry := h.entry("delete").WithField("task_id", id)
	msg := fmt.Sprintf("Failed to delete task with ID: %d", id)

	exists, err := h.repo.ExistsByID(ctx, id)
	if err != nil {
		logEntry.WithError(err).Error("failed to check task existence")
		return &DeletionError{Msg: msg, Err: err}
	}
	if !exists {
		logEntry.Warn("task not found for deletion")
		return &NotFoundError{ID: id}
	}

	if err := h.repo.DeleteByID(ctx, id); err != nil {
		logEntry.WithError(err).Error("failed to delete task")
		return &DeletionError{Msg: msg, Err: err}
	}

	logEntry.Info("task deleted")
	return nil
}
