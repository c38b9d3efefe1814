package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

func TestSeedFixtures(t *testing.T) {
	store := repositories.NewMemoryStore()
	require.NoError(t, Seed(store))

	projects, err := store.Projects.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Sample Project 1", projects[0].Title)

	tasks, err := store.Tasks.FindAll("")
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	// Every task belongs to a seeded project.
	for _, task := range tasks {
		_, err := store.Projects.FindByID(task.ProjectID)
		assert.NoError(t, err)
	}

	billing, err := store.Billing.FindAll("")
	require.NoError(t, err)
	assert.Len(t, billing, 3)

	files, err := store.Files.FindByBinding(models.EntityTask, tasks[0].ID)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	// The dev account is usable right after seeding.
	_, err = NewAuthService(store).DevLogin(dto.DevLoginRequest{
		Email: "dev@example.com", Password: "password",
	})
	assert.NoError(t, err)
}
