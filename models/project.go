package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the workflow state of a project
type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "Not Started"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Priority is the shared 1..3 priority scale (1 = High, 3 = Low)
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Valid reports whether p is within the 1..3 scale.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Project represents a project container owning tasks and billing services
type Project struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Status      ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'Not Started'"`
	Priority    Priority       `json:"priority" gorm:"default:2"`
	StartDate   *string        `json:"startDate" gorm:"default:null"`
	DueDate     *string        `json:"dueDate" gorm:"default:null"`
	Owner       string         `json:"owner" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Tasks           []Task           `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	BillingServices []BillingService `json:"billingServices,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate assigns a UUID so the model works on any backing
// database; the in-memory store uses the same generator.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
