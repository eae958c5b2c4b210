package repository

import (
	"context"

	"github.com/sun1tar/task-service/internal/models"
)

// TaskRepository is the record store behind the task service.
// FindByID returns (nil, nil) when no task has the given id.
type TaskRepository interface {
	Save(ctx context.Context, task *models.Task) (*models.Task, error)
	FindAll(ctx context.Context) ([]*models.Task, error)
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
