package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/models"
)

// memoryData is the shared backing state for the in-memory Store. One
// mutex guards every collection so id assignment and cascade deletes
// stay serialized under concurrent requests.
type memoryData struct {
	mu       sync.Mutex
	projects []models.Project
	tasks    []models.Task
	billing  []models.BillingService
	files    []models.FileAttachment
	users    []models.User
}

// NewMemoryStore builds a Store over process memory. Records live in
// insertion order and survive only for the lifetime of the process.
func NewMemoryStore() *Store {
	data := &memoryData{}
	return &Store{
		Projects: &memoryProjectRepository{data: data},
		Tasks:    &memoryTaskRepository{data: data},
		Billing:  &memoryBillingRepository{data: data},
		Files:    &memoryFileRepository{data: data},
		Users:    &memoryUserRepository{data: data},
	}
}

func (d *memoryData) attachmentsFor(entityType models.EntityType, entityID string) []models.FileAttachment {
	out := []models.FileAttachment{}
	for _, f := range d.files {
		if f.EntityType == entityType && f.EntityID == entityID {
			out = append(out, f)
		}
	}
	return out
}

type memoryProjectRepository struct {
	data *memoryData
}

func (r *memoryProjectRepository) FindAll() ([]models.Project, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	out := make([]models.Project, len(r.data.projects))
	copy(out, r.data.projects)
	return out, nil
}

func (r *memoryProjectRepository) FindByID(id string) (models.Project, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for _, p := range r.data.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, apperrors.NewNotFound("Project")
}

func (r *memoryProjectRepository) Create(project models.Project) (models.Project, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	r.data.projects = append(r.data.projects, project)
	return project, nil
}

func (r *memoryProjectRepository) Update(project models.Project) (models.Project, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, p := range r.data.projects {
		if p.ID == project.ID {
			project.CreatedAt = p.CreatedAt
			project.UpdatedAt = time.Now().UTC()
			r.data.projects[i] = project
			return project, nil
		}
	}
	return project, apperrors.NewNotFound("Project")
}

func (r *memoryProjectRepository) Delete(id string) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, p := range r.data.projects {
		if p.ID != id {
			continue
		}
		// Cascade: drop dependent tasks, billing services and their
		// attachment metadata along with the project.
		keptTasks := r.data.tasks[:0]
		for _, t := range r.data.tasks {
			if t.ProjectID == id {
				r.data.files = dropFiles(r.data.files, models.EntityTask, t.ID)
				continue
			}
			keptTasks = append(keptTasks, t)
		}
		r.data.tasks = keptTasks

		keptBilling := r.data.billing[:0]
		for _, b := range r.data.billing {
			if b.ProjectID == id {
				r.data.files = dropFiles(r.data.files, models.EntityBilling, b.ID)
				continue
			}
			keptBilling = append(keptBilling, b)
		}
		r.data.billing = keptBilling

		r.data.projects = append(r.data.projects[:i], r.data.projects[i+1:]...)
		return nil
	}
	return apperrors.NewNotFound("Project")
}

func (r *memoryProjectRepository) Exists(id string) (bool, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for _, p := range r.data.projects {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func dropFiles(files []models.FileAttachment, entityType models.EntityType, entityID string) []models.FileAttachment {
	kept := files[:0]
	for _, f := range files {
		if f.EntityType == entityType && f.EntityID == entityID {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

type memoryTaskRepository struct {
	data *memoryData
}

func (r *memoryTaskRepository) FindAll(projectID string) ([]models.Task, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	out := []models.Task{}
	for _, t := range r.data.tasks {
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		t.Attachments = r.data.attachmentsFor(models.EntityTask, t.ID)
		out = append(out, t)
	}
	return out, nil
}

func (r *memoryTaskRepository) FindByID(id string) (models.Task, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for _, t := range r.data.tasks {
		if t.ID == id {
			t.Attachments = r.data.attachmentsFor(models.EntityTask, t.ID)
			return t, nil
		}
	}
	return models.Task{}, apperrors.NewNotFound("Task")
}

func (r *memoryTaskRepository) Create(task models.Task) (models.Task, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Attachments = nil
	r.data.tasks = append(r.data.tasks, task)
	task.Attachments = []models.FileAttachment{}
	return task, nil
}

func (r *memoryTaskRepository) Update(task models.Task) (models.Task, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, t := range r.data.tasks {
		if t.ID == task.ID {
			task.CreatedAt = t.CreatedAt
			task.UpdatedAt = time.Now().UTC()
			task.Attachments = nil
			r.data.tasks[i] = task
			task.Attachments = r.data.attachmentsFor(models.EntityTask, task.ID)
			return task, nil
		}
	}
	return task, apperrors.NewNotFound("Task")
}

func (r *memoryTaskRepository) Delete(id string) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, t := range r.data.tasks {
		if t.ID == id {
			r.data.tasks = append(r.data.tasks[:i], r.data.tasks[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("Task")
}

type memoryBillingRepository struct {
	data *memoryData
}

func (r *memoryBillingRepository) FindAll(projectID string) ([]models.BillingService, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	out := []models.BillingService{}
	for _, b := range r.data.billing {
		if projectID != "" && b.ProjectID != projectID {
			continue
		}
		b.Attachments = r.data.attachmentsFor(models.EntityBilling, b.ID)
		out = append(out, b)
	}
	return out, nil
}

func (r *memoryBillingRepository) FindByID(id string) (models.BillingService, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for _, b := range r.data.billing {
		if b.ID == id {
			b.Attachments = r.data.attachmentsFor(models.EntityBilling, b.ID)
			return b, nil
		}
	}
	return models.BillingService{}, apperrors.NewNotFound("Billing service")
}

func (r *memoryBillingRepository) Create(billing models.BillingService) (models.BillingService, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if billing.ID == "" {
		billing.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	billing.CreatedAt = now
	billing.UpdatedAt = now
	billing.Attachments = nil
	r.data.billing = append(r.data.billing, billing)
	billing.Attachments = []models.FileAttachment{}
	return billing, nil
}

func (r *memoryBillingRepository) Update(billing models.BillingService) (models.BillingService, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, b := range r.data.billing {
		if b.ID == billing.ID {
			billing.CreatedAt = b.CreatedAt
			billing.UpdatedAt = time.Now().UTC()
			billing.Attachments = nil
			r.data.billing[i] = billing
			billing.Attachments = r.data.attachmentsFor(models.EntityBilling, billing.ID)
			return billing, nil
		}
	}
	return billing, apperrors.NewNotFound("Billing service")
}

func (r *memoryBillingRepository) Delete(id string) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, b := range r.data.billing {
		if b.ID == id {
			r.data.billing = append(r.data.billing[:i], r.data.billing[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("Billing service")
}

type memoryFileRepository struct {
	data *memoryData
}

func (r *memoryFileRepository) FindByBinding(entityType models.EntityType, entityID string) ([]models.FileAttachment, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	return r.data.attachmentsFor(entityType, entityID), nil
}

func (r *memoryFileRepository) FindByID(id string) (models.FileAttachment, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for _, f := range r.data.files {
		if f.ID == id {
			return f, nil
		}
	}
	return models.FileAttachment{}, apperrors.NewNotFound("File attachment")
}

func (r *memoryFileRepository) Create(file models.FileAttachment) (models.FileAttachment, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	file.CreatedAt = time.Now().UTC()
	r.data.files = append(r.data.files, file)
	return file, nil
}

func (r *memoryFileRepository) Delete(id string) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, f := range r.data.files {
		if f.ID == id {
			r.data.files = append(r.data.files[:i], r.data.files[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("File attachment")
}

type memoryUserRepository struct {
	data *memoryData
}

func (r *memoryUserRepository) FindByEmail(email string) (models.User, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for _, u := range r.data.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperrors.NewNotFound("User")
}

func (r *memoryUserRepository) FindByID(id string) (models.User, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for _, u := range r.data.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, apperrors.NewNotFound("User")
}

func (r *memoryUserRepository) Create(user models.User) (models.User, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.data.users = append(r.data.users, user)
	return user, nil
}

func (r *memoryUserRepository) Update(user models.User) (models.User, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i, u := range r.data.users {
		if u.ID == user.ID {
			user.CreatedAt = u.CreatedAt
			user.UpdatedAt = time.Now().UTC()
			r.data.users[i] = user
			return user, nil
		}
	}
	return user, apperrors.NewNotFound("User")
}
