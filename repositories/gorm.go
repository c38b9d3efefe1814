package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/models"
)

// NewGormStore builds the relational Store over an established GORM
// connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Projects: &gormProjectRepository{db: db},
		Tasks:    &gormTaskRepository{db: db},
		Billing:  &gormBillingRepository{db: db},
		Files:    &gormFileRepository{db: db},
		Users:    &gormUserRepository{db: db},
	}
}

// wrapFind translates a GORM lookup error into the shared taxonomy.
func wrapFind(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(resource)
	}
	return apperrors.NewStore(err)
}

// gormProjectRepository handles database operations for projects
type gormProjectRepository struct {
	db *gorm.DB
}

func (r *gormProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Order("created_at").Find(&projects)
	if result.Error != nil {
		return nil, apperrors.NewStore(result.Error)
	}
	return projects, nil
}

func (r *gormProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, wrapFind(result.Error, "Project")
}

func (r *gormProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	if result.Error != nil {
		return project, apperrors.NewStore(result.Error)
	}
	return project, nil
}

func (r *gormProjectRepository) Update(project models.Project) (models.Project, error) {
	result := r.db.Save(&project)
	if result.Error != nil {
		return project, apperrors.NewStore(result.Error)
	}
	return project, nil
}

// Delete removes the project together with its dependents inside one
// transaction, mirroring the cascade the relational schema declares.
func (r *gormProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return apperrors.NewStore(err)
		}
		var billingIDs []string
		if err := tx.Model(&models.BillingService{}).Where("project_id = ?", id).Pluck("id", &billingIDs).Error; err != nil {
			return apperrors.NewStore(err)
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("entity_type = ? AND entity_id IN ?", models.EntityTask, taskIDs).
				Delete(&models.FileAttachment{}).Error; err != nil {
				return apperrors.NewStore(err)
			}
		}
		if len(billingIDs) > 0 {
			if err := tx.Where("entity_type = ? AND entity_id IN ?", models.EntityBilling, billingIDs).
				Delete(&models.FileAttachment{}).Error; err != nil {
				return apperrors.NewStore(err)
			}
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return apperrors.NewStore(err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.BillingService{}).Error; err != nil {
			return apperrors.NewStore(err)
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return apperrors.NewStore(result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFound("Project")
		}
		return nil
	})
}

func (r *gormProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.NewStore(err)
	}
	return count > 0, nil
}

// gormTaskRepository handles database operations for tasks
type gormTaskRepository struct {
	db *gorm.DB
}

func (r *gormTaskRepository) FindAll(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	db := r.db.Preload("Attachments").Order("created_at")
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	if err := db.Find(&tasks).Error; err != nil {
		return nil, apperrors.NewStore(err)
	}
	return tasks, nil
}

func (r *gormTaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := r.db.Preload("Attachments").First(&task, "id = ?", id)
	return task, wrapFind(result.Error, "Task")
}

func (r *gormTaskRepository) Create(task models.Task) (models.Task, error) {
	result := r.db.Create(&task)
	if result.Error != nil {
		return task, apperrors.NewStore(result.Error)
	}
	if task.Attachments == nil {
		task.Attachments = []models.FileAttachment{}
	}
	return task, nil
}

func (r *gormTaskRepository) Update(task models.Task) (models.Task, error) {
	result := r.db.Omit("Attachments").Save(&task)
	if result.Error != nil {
		return task, apperrors.NewStore(result.Error)
	}
	return task, nil
}

func (r *gormTaskRepository) Delete(id string) error {
	result := r.db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewStore(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Task")
	}
	return nil
}

// gormBillingRepository handles database operations for billing services
type gormBillingRepository struct {
	db *gorm.DB
}

func (r *gormBillingRepository) FindAll(projectID string) ([]models.BillingService, error) {
	var billing []models.BillingService
	db := r.db.Preload("Attachments").Order("created_at")
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	if err := db.Find(&billing).Error; err != nil {
		return nil, apperrors.NewStore(err)
	}
	return billing, nil
}

func (r *gormBillingRepository) FindByID(id string) (models.BillingService, error) {
	var billing models.BillingService
	result := r.db.Preload("Attachments").First(&billing, "id = ?", id)
	return billing, wrapFind(result.Error, "Billing service")
}

func (r *gormBillingRepository) Create(billing models.BillingService) (models.BillingService, error) {
	result := r.db.Create(&billing)
	if result.Error != nil {
		return billing, apperrors.NewStore(result.Error)
	}
	if billing.Attachments == nil {
		billing.Attachments = []models.FileAttachment{}
	}
	return billing, nil
}

func (r *gormBillingRepository) Update(billing models.BillingService) (models.BillingService, error) {
	result := r.db.Omit("Attachments").Save(&billing)
	if result.Error != nil {
		return billing, apperrors.NewStore(result.Error)
	}
	return billing, nil
}

func (r *gormBillingRepository) Delete(id string) error {
	result := r.db.Delete(&models.BillingService{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewStore(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("Billing service")
	}
	return nil
}

// gormFileRepository handles database operations for file attachment
// metadata
type gormFileRepository struct {
	db *gorm.DB
}

func (r *gormFileRepository) FindByBinding(entityType models.EntityType, entityID string) ([]models.FileAttachment, error) {
	files := []models.FileAttachment{}
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at").Find(&files).Error
	if err != nil {
		return nil, apperrors.NewStore(err)
	}
	return files, nil
}

func (r *gormFileRepository) FindByID(id string) (models.FileAttachment, error) {
	var file models.FileAttachment
	result := r.db.First(&file, "id = ?", id)
	return file, wrapFind(result.Error, "File attachment")
}

func (r *gormFileRepository) Create(file models.FileAttachment) (models.FileAttachment, error) {
	result := r.db.Create(&file)
	if result.Error != nil {
		return file, apperrors.NewStore(result.Error)
	}
	return file, nil
}

func (r *gormFileRepository) Delete(id string) error {
	result := r.db.Delete(&models.FileAttachment{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.NewStore(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound("File attachment")
	}
	return nil
}

// gormUserRepository handles database operations for users
type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	return user, wrapFind(result.Error, "User")
}

func (r *gormUserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	return user, wrapFind(result.Error, "User")
}

func (r *gormUserRepository) Create(user models.User) (models.User, error) {
	result := r.db.Create(&user)
	if result.Error != nil {
		return user, apperrors.NewStore(result.Error)
	}
	return user, nil
}

func (r *gormUserRepository) Update(user models.User) (models.User, error) {
	result := r.db.Save(&user)
	if result.Error != nil {
		return user, apperrors.NewStore(result.Error)
	}
	return user, nil
}
