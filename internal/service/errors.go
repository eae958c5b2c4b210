package service

import (
	"errors"
	"fmt"
)

var ErrRepositoryNil = errors.New("task repository is nil")

// NotFoundError reports that no task exists with ID. Layers pass it through
// without wrapping.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Task not found with id %d", e.ID)
}

type SaveError struct {
	Msg string
	Err error
}

func (e *SaveError) Error() string { return e.Msg }
func (e *SaveError) Unwrap() error { return e.Err }

type RetrievalError struct {
	Msg string
	Err error
}

func (e *RetrievalError) Error() string { return e.Msg }
func (e *RetrievalError) Unwrap() error { return e.Err }

type DeletionError struct {
	Msg string
	Err error
}

func (e *DeletionError) Error() string { return e.Msg }
func (e *DeletionError) Unwrap() error { return e.Err }

// ValidationError is the first constraint a request violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
