package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityType identifies which kind of record an attachment belongs to
type EntityType string

const (
	EntityTask    EntityType = "task"
	EntityBilling EntityType = "billing"
)

// Valid reports whether t names an attachable entity kind.
func (t EntityType) Valid() bool {
	return t == EntityTask || t == EntityBilling
}

// FileAttachment is the metadata record for an uploaded file. The
// bytes themselves live in the document store; attachments are created
// once and never mutated in place.
type FileAttachment struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	EntityType  EntityType `json:"entityType" gorm:"type:varchar(20);not null;index:idx_attachment_binding"`
	EntityID    string     `json:"entityId" gorm:"not null;index:idx_attachment_binding"`
	Name        string     `json:"name" gorm:"not null"`
	Path        string     `json:"path"`
	ContentType string     `json:"contentType"`
	Size        int64      `json:"size"`
	DownloadURL string     `json:"downloadUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TableName sets the table name for FileAttachment model
func (FileAttachment) TableName() string {
	return "file_attachments"
}

func (f *FileAttachment) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
