package models

// Task is the persisted task record. ID is zero until the store assigns one.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     Date
}
