package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingService represents a billed service or recurring cost tied to
// a project
type BillingService struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	ProjectID string         `json:"projectId" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Amount    float64        `json:"amount" gorm:"not null"`
	DueDate   *string        `json:"dueDate" gorm:"default:null"`
	Paid      bool           `json:"paid" gorm:"default:false"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Attachments []FileAttachment `json:"attachments" gorm:"polymorphic:Entity;polymorphicValue:billing"`
}

// TableName sets the table name for BillingService model
func (BillingService) TableName() string {
	return "billing_services"
}

func (b *BillingService) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *BillingService) AfterFind(tx *gorm.DB) error {
	if b.Attachments == nil {
		b.Attachments = []FileAttachment{}
	}
	return nil
}
