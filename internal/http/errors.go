package http

import (
	"errors"
	"net/http"

	"github.com/sun1tar/task-service/internal/service"
)

// statusFor maps an error from the service layer to the response status and
// plain-text body.
func statusFor(err error) (int, string) {
	var (
		notFound   *service.NotFoundError
		saveErr    *service.SaveError
		retrErr    *service.RetrievalError
		delErr     *service.DeletionError
		invalidErr *service.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest, invalidErr.Error()
	case errors.As(err, &saveErr):
		return http.StatusInternalServerError, "Task saving failed: " + saveErr.Error()
	case errors.As(err, &retrErr):
		return http.StatusInternalServerError, "Error retrieving tasks: " + retrErr.Error()
	case errors.As(err, &delErr):
		return http.StatusInternalServerError, "Error deleting task: " + delErr.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
