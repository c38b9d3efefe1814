package services

import (
	"strings"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	store *repositories.Store
}

// NewProjectService creates a new project service instance
func NewProjectService(store *repositories.Store) *ProjectService {
	return &ProjectService{store: store}
}

// ListProjects retrieves all projects in insertion order.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.store.Projects.FindAll()
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(id string) (models.Project, error) {
	return s.store.Projects.FindByID(id)
}

// CreateProject validates the request and persists a new project.
// Validation happens before any mutation.
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Project{}, apperrors.NewValidation("Project title is required")
	}

	status := req.Status
	if status == "" {
		status = models.StatusNotStarted
	}
	if !status.Valid() {
		return models.Project{}, apperrors.NewValidation("Invalid project status: %s", req.Status)
	}

	priority := req.Priority
	if priority == 0 {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Project{}, apperrors.NewValidation("Project priority must be 1 (High), 2 (Medium) or 3 (Low)")
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Owner:       req.Owner,
	}
	return s.store.Projects.Create(project)
}

// UpdateProject applies a partial-merge patch: nil fields keep their
// current value and the id never changes.
func (s *ProjectService) UpdateProject(id string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.store.Projects.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return models.Project{}, apperrors.NewValidation("Invalid project status: %s", *req.Status)
		}
		project.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return models.Project{}, apperrors.NewValidation("Project priority must be 1 (High), 2 (Medium) or 3 (Low)")
		}
		project.Priority = *req.Priority
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		project.DueDate = req.DueDate
	}
	if req.Owner != nil {
		project.Owner = *req.Owner
	}

	return s.store.Projects.Update(project)
}

// DeleteProject removes a project and cascades to its dependents. The
// cascade policy is deliberate: dependent tasks and billing services
// would otherwise be orphaned with no UI able to reach them.
func (s *ProjectService) DeleteProject(id string) error {
	return s.store.Projects.Delete(id)
}
