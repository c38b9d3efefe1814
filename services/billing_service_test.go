package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

func newBillingFixture(t *testing.T) (*BillingService, models.Project) {
	t.Helper()
	store := repositories.NewMemoryStore()
	project, err := store.Projects.Create(models.Project{Title: "Fixture"})
	require.NoError(t, err)
	return NewBillingService(store), project
}

func amount(v float64) *float64 { return &v }

func TestBillingService_CreateThenGet(t *testing.T) {
	svc, project := newBillingFixture(t)

	created, err := svc.CreateBilling(dto.CreateBillingRequest{
		ProjectID: project.ID,
		Name:      "Web Hosting",
		Amount:    amount(19.99),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Paid)

	found, err := svc.GetBilling(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestBillingService_CreateValidation(t *testing.T) {
	svc, project := newBillingFixture(t)

	_, err := svc.CreateBilling(dto.CreateBillingRequest{ProjectID: project.ID, Amount: amount(1)})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Billing service name is required", err.Error())

	_, err = svc.CreateBilling(dto.CreateBillingRequest{ProjectID: project.ID, Name: "x"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Billing service amount is required", err.Error())

	_, err = svc.CreateBilling(dto.CreateBillingRequest{ProjectID: project.ID, Name: "x", Amount: amount(-5)})
	assert.True(t, apperrors.IsValidation(err))

	// Zero is a valid amount.
	created, err := svc.CreateBilling(dto.CreateBillingRequest{ProjectID: project.ID, Name: "free", Amount: amount(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.Amount)
}

func TestBillingService_UpdatePreservesProjectID(t *testing.T) {
	svc, project := newBillingFixture(t)

	created, err := svc.CreateBilling(dto.CreateBillingRequest{
		ProjectID: project.ID, Name: "Design Services", Amount: amount(250),
	})
	require.NoError(t, err)

	empty := ""
	paid := true
	updated, err := svc.UpdateBilling(created.ID, dto.UpdateBillingRequest{
		ProjectID: &empty,
		Paid:      &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, project.ID, updated.ProjectID)
	assert.True(t, updated.Paid)
	assert.Equal(t, 250.0, updated.Amount)
}

func TestBillingService_UpdateRejectsNegativeAmount(t *testing.T) {
	svc, project := newBillingFixture(t)

	created, err := svc.CreateBilling(dto.CreateBillingRequest{
		ProjectID: project.ID, Name: "Hosting", Amount: amount(49.99),
	})
	require.NoError(t, err)

	_, err = svc.UpdateBilling(created.ID, dto.UpdateBillingRequest{Amount: amount(-1)})
	assert.True(t, apperrors.IsValidation(err))

	// The failed patch mutated nothing.
	current, err := svc.GetBilling(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 49.99, current.Amount)
}

func TestBillingService_DeleteUnknown(t *testing.T) {
	svc, _ := newBillingFixture(t)

	err := svc.DeleteBilling("unknown-id")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Billing service not found", err.Error())
}
