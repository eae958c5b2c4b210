package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sun1tar/task-service/internal/dto"
	"github.com/sun1tar/task-service/internal/models"
	"github.com/sun1tar/task-service/internal/repository"
)

func newService(t *testing.T) *TaskService {
	t.Helper()

	logger := quietLogger()
	helper, err := NewTaskDatabaseHelper(repository.NewMemoryTaskRepository(), logger)
	if err != nil {
		t.Fatalf("NewTaskDatabaseHelper() err=%v", err)
	}
	return NewTaskService(helper, NewTaskMapper(logger), logger)
}

func request(title, description string, due models.Date) dto.TaskRequest {
	return dto.TaskRequest{Title: title, Description: description, DueDate: &due}
}

func TestCreateTask_EchoesInput(t *testing.T) {
	svc := newService(t)
	due := models.NewDate(2025, time.May, 15)

	out, err := svc.CreateTask(context.Background(), request("Title", "Description", due))
	if err != nil {
		t.Fatalf("CreateTask() err=%v", err)
	}
	if out.ID <= 0 {
		t.Fatalf("CreateTask() id=%d, want > 0", out.ID)
	}
	if out.Title != "Title" || out.Description != "Description" || out.DueDate != due {
		t.Fatalf("CreateTask()=%+v", out)
	}
}

func TestGetAllTasks_EmptyAndFilled(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	empty, err := svc.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks() err=%v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("GetAllTasks() = %v, want empty non-nil slice", empty)
	}

	due := models.NewDate(2025, time.May, 15)
	for _, title := range []string{"a", "b"} {
		if _, err := svc.CreateTask(ctx, request(title, "d", due)); err != nil {
			t.Fatalf("CreateTask() err=%v", err)
		}
	}

	all, err := svc.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks() err=%v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllTasks() len=%d, want 2", len(all))
	}
}

func TestUpdateThenGet_Idempotent(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, _ := svc.CreateTask(ctx, request("Title", "Description", models.NewDate(2025, time.May, 15)))
	req := request("Updated", "Changed", models.NewDate(2026, time.January, 31))

	for i := 0; i < 2; i++ {
		updated, err := svc.UpdateTask(ctx, created.ID, req)
		if err != nil {
			t.Fatalf("UpdateTask() #%d err=%v", i, err)
		}
		if updated.ID != created.ID {
			t.Fatalf("UpdateTask() id=%d, want %d", updated.ID, created.ID)
		}
	}

	got, err := svc.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() err=%v", err)
	}
	want := dto.TaskResponse{ID: created.ID, Title: "Updated", Description: "Changed", DueDate: *req.DueDate}
	if got != want {
		t.Fatalf("GetTaskByID()=%+v, want %+v", got, want)
	}

	all, _ := svc.GetAllTasks(ctx)
	if len(all) != 1 {
		t.Fatalf("GetAllTasks() len=%d after updates, want 1", len(all))
	}
}

func TestDeleteThenGet_NotFound(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, _ := svc.CreateTask(ctx, request("Title", "Description", models.NewDate(2025, time.May, 15)))

	if err := svc.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask() err=%v", err)
	}

	_, err := svc.GetTaskByID(ctx, created.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != created.ID {
		t.Fatalf("GetTaskByID() err=%v, want NotFoundError(%d)", err, created.ID)
	}
}

func TestUnknownID_NotFoundEverywhere(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	req := request("t", "d", models.NewDate(2025, time.May, 15))

	_, getErr := svc.GetTaskByID(ctx, 42)
	_, updErr := svc.UpdateTask(ctx, 42, req)
	delErr := svc.DeleteTask(ctx, 42)

	for name, err := range map[string]error{"get": getErr, "update": updErr, "delete": delErr} {
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.ID != 42 {
			t.Fatalf("%s: err=%v, want NotFoundError(42)", name, err)
		}
	}
}
