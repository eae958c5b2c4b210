package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/sun1tar/task-service/internal/models"
)

// MemoryTaskRepository keeps tasks in process memory. Ids start at 1.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]models.Task
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[int64]models.Task),
	}
}

func (r *MemoryTaskRepository) Save(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *task
	if saved.ID == 0 {
		r.nextID++
		saved.ID = r.nextID
	} else if saved.ID > r.nextID {
		r.nextID = saved.ID
	}
	r.tasks[saved.ID] = saved

	return &saved, nil
}

func (r *MemoryTaskRepository) FindAll(ctx context.Context) ([]*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		t := t
		tasks = append(tasks, &t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

func (r *MemoryTaskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *MemoryTaskRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	_, ok := r.tasks[id]
	r.mu.RUnlock()

	return ok, nil
}

func (r *MemoryTaskRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.tasks, id)
	r.mu.Unlock()

	return nil
}
