package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a unit of work bound to a project at creation time
type Task struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	ProjectID   string         `json:"projectId" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	DueDate     *string        `json:"dueDate" gorm:"default:null"`
	Completed   bool           `json:"completed" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Attachments []FileAttachment `json:"attachments" gorm:"polymorphic:Entity;polymorphicValue:task"`
}

// TableName sets the table name for Task model
func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AfterFind keeps the attachments list a JSON array rather than null
// when a task has none.
func (t *Task) AfterFind(tx *gorm.DB) error {
	if t.Attachments == nil {
		t.Attachments = []FileAttachment{}
	}
	return nil
}
