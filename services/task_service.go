package services

import (
	"strings"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

// TaskService handles business logic for tasks
type TaskService struct {
	store *repositories.Store
}

// NewTaskService creates a new task service instance
func NewTaskService(store *repositories.Store) *TaskService {
	return &TaskService{store: store}
}

// ListTasks retrieves tasks, optionally narrowed to one project. A
// project with no tasks yields an empty slice, not an error.
func (s *TaskService) ListTasks(projectID string) ([]models.Task, error) {
	return s.store.Tasks.FindAll(projectID)
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(id string) (models.Task, error) {
	return s.store.Tasks.FindByID(id)
}

// CreateTask validates the request and persists a new task bound to
// its project. The title requirement is enforced here even though the
// historical behavior accepted untitled tasks.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest) (models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Task{}, apperrors.NewValidation("Task title is required")
	}
	if req.ProjectID == "" {
		return models.Task{}, apperrors.NewValidation("Task projectId is required")
	}
	if err := s.requireProject(req.ProjectID); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}
	return s.store.Tasks.Create(task)
}

// UpdateTask applies a partial-merge patch. An absent or empty
// projectId in the patch never erases the existing binding.
func (s *TaskService) UpdateTask(id string, req dto.UpdateTaskRequest) (models.Task, error) {
	task, err := s.store.Tasks.FindByID(id)
	if err != nil {
		return models.Task{}, err
	}

	if req.ProjectID != nil && *req.ProjectID != "" && *req.ProjectID != task.ProjectID {
		if err := s.requireProject(*req.ProjectID); err != nil {
			return models.Task{}, err
		}
		task.ProjectID = *req.ProjectID
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	return s.store.Tasks.Update(task)
}

// DeleteTask removes a task independently of its project.
func (s *TaskService) DeleteTask(id string) error {
	return s.store.Tasks.Delete(id)
}

func (s *TaskService) requireProject(projectID string) error {
	exists, err := s.store.Projects.Exists(projectID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidation("Referenced project does not exist")
	}
	return nil
}
