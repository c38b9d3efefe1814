package services

import (
	"strings"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

// BillingService handles business logic for billing services
type BillingService struct {
	store *repositories.Store
}

// NewBillingService creates a new billing service instance
func NewBillingService(store *repositories.Store) *BillingService {
	return &BillingService{store: store}
}

// ListBilling retrieves billing services, optionally narrowed to one
// project.
func (s *BillingService) ListBilling(projectID string) ([]models.BillingService, error) {
	return s.store.Billing.FindAll(projectID)
}

// GetBilling retrieves a billing service by ID.
func (s *BillingService) GetBilling(id string) (models.BillingService, error) {
	return s.store.Billing.FindByID(id)
}

// CreateBilling validates the request and persists a new billing
// service. Amount is required and must be non-negative.
func (s *BillingService) CreateBilling(req dto.CreateBillingRequest) (models.BillingService, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.BillingService{}, apperrors.NewValidation("Billing service name is required")
	}
	if req.ProjectID == "" {
		return models.BillingService{}, apperrors.NewValidation("Billing service projectId is required")
	}
	if req.Amount == nil {
		return models.BillingService{}, apperrors.NewValidation("Billing service amount is required")
	}
	if *req.Amount < 0 {
		return models.BillingService{}, apperrors.NewValidation("Billing service amount must be non-negative")
	}
	if err := s.requireProject(req.ProjectID); err != nil {
		return models.BillingService{}, err
	}

	billing := models.BillingService{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Amount:    *req.Amount,
		DueDate:   req.DueDate,
		Paid:      req.Paid,
	}
	return s.store.Billing.Create(billing)
}

// UpdateBilling applies a partial-merge patch. An absent or empty
// projectId in the patch never erases the existing binding.
func (s *BillingService) UpdateBilling(id string, req dto.UpdateBillingRequest) (models.BillingService, error) {
	billing, err := s.store.Billing.FindByID(id)
	if err != nil {
		return models.BillingService{}, err
	}

	if req.ProjectID != nil && *req.ProjectID != "" && *req.ProjectID != billing.ProjectID {
		if err := s.requireProject(*req.ProjectID); err != nil {
			return models.BillingService{}, err
		}
		billing.ProjectID = *req.ProjectID
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		billing.Name = *req.Name
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return models.BillingService{}, apperrors.NewValidation("Billing service amount must be non-negative")
		}
		billing.Amount = *req.Amount
	}
	if req.DueDate != nil {
		billing.DueDate = req.DueDate
	}
	if req.Paid != nil {
		billing.Paid = *req.Paid
	}

	return s.store.Billing.Update(billing)
}

// DeleteBilling removes a billing service independently of its project.
func (s *BillingService) DeleteBilling(id string) error {
	return s.store.Billing.Delete(id)
}

func (s *BillingService) requireProject(projectID string) error {
	exists, err := s.store.Projects.Exists(projectID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidation("Referenced project does not exist")
	}
	return nil
}
