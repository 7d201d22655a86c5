package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/domain"
)

// Request payloads. Validation limits mirror the public API contract:
// user names 3-50 characters, passwords at least 6, project names 3-50,
// descriptions 3-500, task titles 3-100.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Country  string `json:"country"  validate:"required,min=2,max=56"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UpdateProfileRequest defines the payload for the profile update endpoint.
// Both fields are optional but at least one must be present. Email and
// password cannot be changed.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"    validate:"omitempty,min=3,max=50"`
	Country *string `json:"country,omitempty" validate:"omitempty,min=2,max=56"`
}

// HasUpdates reports whether the request carries at least one field.
func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.Name != nil || r.Country != nil
}

// CreateProjectRequest defines the payload for the project creation endpoint.
type CreateProjectRequest struct {
	Name        string `json:"name"        validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=3,max=500"`
}

// UpdateProjectRequest defines the payload for the project update endpoint.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=3,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=3,max=500"`
}

// HasUpdates reports whether the request carries at least one field.
func (r *UpdateProjectRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil
}

// CreateTaskRequest defines the payload for the task creation endpoint.
// Status is optional and defaults to TODO.
type CreateTaskRequest struct {
	Title       string    `json:"title"       validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"required,min=3,max=500"`
	Status      string    `json:"status,omitempty" validate:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
	ProjectID   uuid.UUID `json:"projectId"   validate:"required"`
}

// UpdateTaskRequest defines the payload for the task update endpoint.
// The task's project cannot be changed.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=3,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=3,max=500"`
	Status      *string `json:"status,omitempty"      validate:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
}

// HasUpdates reports whether the request carries at least one field.
func (r *UpdateTaskRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.Status != nil
}

// Response payloads.

// UserResponse is the public representation of a user. The password hash
// never appears here.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse builds a UserResponse from a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Country:   user.Country,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// AuthResponse is the successful response for authentication endpoints.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ProjectResponse is the public representation of a project.
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProjectResponse builds a ProjectResponse from a domain project.
func NewProjectResponse(project *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		UserID:      project.UserID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// NewProjectListResponse builds the response for project listings.
// An empty list serializes as [], never null.
func NewProjectListResponse(projects []*domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

// TaskResponse is the public representation of a task. CompletedAt is null
// unless the task is currently DONE.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ProjectID   uuid.UUID  `json:"projectId"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTaskResponse builds a TaskResponse from a domain task.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		ProjectID:   task.ProjectID,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskListResponse builds the response for task listings.
func NewTaskListResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}

// HealthResponse is the body of the public health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
