package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the position of a task in its lifecycle.
type TaskStatus string

// Possible task status values
const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusReview     TaskStatus = "REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID          = errors.New("task ID cannot be empty")
	ErrEmptyTaskProjectID   = errors.New("task project ID cannot be empty")
	ErrEmptyTaskTitle       = errors.New("task title cannot be empty")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
)

// Task represents a unit of work inside a project. Tasks carry no direct
// user reference; their effective owner is the owning project's user.
// CompletedAt is non-nil exactly when the last status change moved the
// task into DONE.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	ProjectID   uuid.UUID  `json:"project_id"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task inside the given project. An empty status
// defaults to TODO. It generates a new UUID for the task ID and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewTask(projectID uuid.UUID, title, description string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusTodo
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      status,
		ProjectID:   projectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.ProjectID == uuid.Nil {
		return ErrEmptyTaskProjectID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	default:
		return false
	}
}
