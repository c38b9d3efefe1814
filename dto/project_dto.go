package dto

import "github.com/projectflow-simple/models"

// CreateProjectRequest carries the client-supplied fields for a new
// project. Server-assigned fields (id, timestamps) are never accepted.
type CreateProjectRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	Priority    models.Priority      `json:"priority"`
	StartDate   *string              `json:"startDate"`
	DueDate     *string              `json:"dueDate"`
	Owner       string               `json:"owner"`
}

// UpdateProjectRequest is a partial-merge patch: nil fields keep their
// current value, the id is immutable regardless of the payload.
type UpdateProjectRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
	Priority    *models.Priority      `json:"priority"`
	StartDate   *string               `json:"startDate"`
	DueDate     *string               `json:"dueDate"`
	Owner       *string               `json:"owner"`
}
