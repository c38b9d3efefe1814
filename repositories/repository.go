// Package repositories is the persistence boundary. Each entity kind
// gets a small CRUD interface with two implementations: a GORM-backed
// one for the relational store and a mutex-guarded in-memory one used
// for development mode and tests. Handlers and services only ever see
// the interfaces.
package repositories

import "github.com/projectflow-simple/models"

// ProjectRepository handles persistence for projects
type ProjectRepository interface {
	FindAll() ([]models.Project, error)
	FindByID(id string) (models.Project, error)
	Create(project models.Project) (models.Project, error)
	Update(project models.Project) (models.Project, error)
	// Delete removes the project and cascades to its tasks, billing
	// services and their attachment metadata. Deleting an unknown or
	// already-deleted id yields a NotFoundError.
	Delete(id string) error
	Exists(id string) (bool, error)
}

// TaskRepository handles persistence for tasks
type TaskRepository interface {
	// FindAll returns all tasks, narrowed to one project when
	// projectID is non-empty. An empty result is a valid empty slice.
	FindAll(projectID string) ([]models.Task, error)
	FindByID(id string) (models.Task, error)
	Create(task models.Task) (models.Task, error)
	Update(task models.Task) (models.Task, error)
	Delete(id string) error
}

// BillingRepository handles persistence for billing services
type BillingRepository interface {
	FindAll(projectID string) ([]models.BillingService, error)
	FindByID(id string) (models.BillingService, error)
	Create(billing models.BillingService) (models.BillingService, error)
	Update(billing models.BillingService) (models.BillingService, error)
	Delete(id string) error
}

// FileRepository handles persistence for file attachment metadata
type FileRepository interface {
	FindByBinding(entityType models.EntityType, entityID string) ([]models.FileAttachment, error)
	FindByID(id string) (models.FileAttachment, error)
	Create(file models.FileAttachment) (models.FileAttachment, error)
	Delete(id string) error
}

// UserRepository handles persistence for signed-in identities
type UserRepository interface {
	FindByEmail(email string) (models.User, error)
	FindByID(id string) (models.User, error)
	Create(user models.User) (models.User, error)
	Update(user models.User) (models.User, error)
}

// Store bundles the per-entity repositories behind one boundary so the
// rest of the application is storage-agnostic.
type Store struct {
	Projects ProjectRepository
	Tasks    TaskRepository
	Billing  BillingRepository
	Files    FileRepository
	Users    UserRepository
}
