package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxProjectsPerUser is the maximum number of projects a single user may
// own simultaneously. Enforced at creation time.
const MaxProjectsPerUser = 4

// Common validation errors for Project
var (
	ErrEmptyProjectID          = errors.New("project ID cannot be empty")
	ErrEmptyProjectUserID      = errors.New("project user ID cannot be empty")
	ErrEmptyProjectName        = errors.New("project name cannot be empty")
	ErrEmptyProjectDescription = errors.New("project description cannot be empty")
)

// Project represents a container for tasks, owned by exactly one user.
// The owning user never changes after creation.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject creates a new Project owned by the given user.
// It generates a new UUID for the project ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewProject(userID uuid.UUID, name, description string) (*Project, error) {
	now := time.Now().UTC()
	project := &Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
// Returns an error if any field fails validation.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProjectID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyProjectUserID
	}

	if p.Name == "" {
		return ErrEmptyProjectName
	}

	if p.Description == "" {
		return ErrEmptyProjectDescription
	}

	return nil
}
