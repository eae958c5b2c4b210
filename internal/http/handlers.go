package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/task-service/internal/dto"
	"github.com/sun1tar/task-service/internal/middleware"
)

type TaskService interface {
	CreateTask(ctx context.Context, req dto.TaskRequest) (dto.TaskResponse, error)
	GetAllTasks(ctx context.Context) ([]dto.TaskResponse, error)
	GetTaskByID(ctx context.Context, id int64) (dto.TaskResponse, error)
	UpdateTask(ctx context.Context, id int64, req dto.TaskRequest) (dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id int64) error
}

type TaskHandler struct {
	taskService TaskService
	validator   *RequestValidator
	logger      *logrus.Logger
}

func NewTaskHandler(ts TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: ts,
		validator:   NewRequestValidator(),
		logger:      logger,
	}
}

func (h *TaskHandler) logEntry(r *http.Request, handler string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    handler,
		"request_id": middleware.GetRequestID(r.Context()),
	})
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "CreateTask")

	req, ok := h.decodeTaskRequest(w, r, logEntry)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req)
	if err != nil {
		h.fail(w, logEntry, err)
		return
	}

	logEntry.WithField("task_id", task.ID).Info("task created successfully")
	writeJSON(w, http.StatusCreated, task)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "ListTasks")

	tasks, err := h.taskService.GetAllTasks(r.Context())
	if err != nil {
		h.fail(w, logEntry, err)
		return
	}

	logEntry.WithField("count", len(tasks)).Debug("tasks listed")
	writeJSON(w, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "GetTask")

	id, ok := parseID(w, r)
	if !ok {
		return
	}
	logEntry = logEntry.WithField("task_id", id)

	task, err := h.taskService.GetTaskByID(r.Context(), id)
	if err != nil {
		h.fail(w, logEntry, err)
		return
	}

	logEntry.Debug("task retrieved")
	writeJSON(w, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "UpdateTask")

	id, ok := parseID(w, r)
	if !ok {
		return
	}
	logEntry = logEntry.WithField("task_id", id)

	req, ok := h.decodeTaskRequest(w, r, logEntry)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req)
	if err != nil {
		h.fail(w, logEntry, err)
		return
	}

	logEntry.Info("task updated successfully")
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "DeleteTask")

	id, ok := parseID(w, r)
	if !ok {
		return
	}
	logEntry = logEntry.WithField("task_id", id)

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		h.fail(w, logEntry, err)
		return
	}

	logEntry.Info("task deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) (dto.TaskRequest, bool) {
	var req dto.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	if err := h.validator.ValidateTaskRequest(req); err != nil {
		logEntry.WithError(err).Warn("request validation failed")
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func (h *TaskHandler) fail(w http.ResponseWriter, logEntry *logrus.Entry, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		logEntry.WithError(err).Error("request failed")
	} else {
		logEntry.WithError(err).Warn("request rejected")
	}
	writeError(w, status, msg)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid task id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
