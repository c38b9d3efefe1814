package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/projectflow-simple/api/v1"
	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
	"github.com/projectflow-simple/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *repositories.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewMemoryStore()
	docs, err := storage.NewLocalDocumentStore(t.TempDir(), "")
	require.NoError(t, err)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(v1.MethodNotAllowed)
	engine.NoRoute(v1.NotFoundRoute)
	v1.RegisterRoutes(engine.Group("/api"), v1.RouterConfig{Store: store, Docs: docs})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return server, store
}

func strPtr(s string) *string { return &s }

func TestClientProjectRoundtrip(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	project, err := c.CreateProject(ctx, dto.CreateProjectRequest{Title: "Website"})
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, models.StatusNotStarted, project.Status)

	fetched, err := c.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, fetched.ID)

	updated, err := c.UpdateProject(ctx, project.ID, dto.UpdateProjectRequest{
		Description: strPtr("Company site"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Company site", updated.Description)
	assert.Equal(t, "Website", updated.Title)

	projects, err := c.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	require.NoError(t, c.DeleteProject(ctx, project.ID))

	projects, err = c.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestClientAPIError(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL)

	_, err := c.GetProject(context.Background(), "unknown")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Project not found")
	assert.Contains(t, apiErr.Error(), "404")
}

func TestClientTaskFiltering(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	first, err := c.CreateProject(ctx, dto.CreateProjectRequest{Title: "First"})
	require.NoError(t, err)
	second, err := c.CreateProject(ctx, dto.CreateProjectRequest{Title: "Second"})
	require.NoError(t, err)

	_, err = c.CreateTask(ctx, dto.CreateTaskRequest{ProjectID: first.ID, Title: "A"})
	require.NoError(t, err)
	_, err = c.CreateTask(ctx, dto.CreateTaskRequest{ProjectID: second.ID, Title: "B"})
	require.NoError(t, err)

	all, err := c.ListTasks(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := c.ListTasks(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "A", scoped[0].Title)

	viaProject, err := c.ListProjectTasks(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, scoped, viaProject)
}

func TestClientBillingRoundtrip(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	project, err := c.CreateProject(ctx, dto.CreateProjectRequest{Title: "Demo"})
	require.NoError(t, err)

	amount := 99.0
	billing, err := c.CreateBilling(ctx, dto.CreateBillingRequest{
		ProjectID: project.ID,
		Name:      "Hosting",
		Amount:    &amount,
	})
	require.NoError(t, err)

	paid := true
	updated, err := c.UpdateBilling(ctx, billing.ID, dto.UpdateBillingRequest{Paid: &paid})
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	assert.Equal(t, 99.0, updated.Amount)

	require.NoError(t, c.DeleteBilling(ctx, billing.ID))
	err = c.DeleteBilling(ctx, billing.ID)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClientAttachments(t *testing.T) {
	server, _ := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	project, err := c.CreateProject(ctx, dto.CreateProjectRequest{Title: "Demo"})
	require.NoError(t, err)
	task, err := c.CreateTask(ctx, dto.CreateTaskRequest{ProjectID: project.ID, Title: "With files"})
	require.NoError(t, err)

	files, err := c.ListAttachments(ctx, "task", task.ID)
	require.NoError(t, err)
	assert.Empty(t, files)

	file, err := c.UploadAttachment(ctx, "task", task.ID, "notes.txt", "text/plain",
		strings.NewReader("remember the milk"))
	require.NoError(t, err)
	assert.NotEmpty(t, file.ID)
	assert.Equal(t, "notes.txt", file.Name)

	fetched, err := c.GetAttachment(ctx, "task", task.ID, file.ID)
	require.NoError(t, err)
	assert.Equal(t, file.ID, fetched.ID)

	require.NoError(t, c.DeleteAttachment(ctx, "task", task.ID, file.ID))

	files, err = c.ListAttachments(ctx, "task", task.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSessionContext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	server, store := newTestServer(t)

	anon := NewSessionContext(New(server.URL))
	assert.Equal(t, StateUnknown, anon.State())
	assert.Equal(t, "unknown", anon.State().String())

	require.NoError(t, anon.Refresh(context.Background()))
	assert.Equal(t, StateUnauthenticated, anon.State())
	assert.Nil(t, anon.Principal())

	user, err := services.NewAuthService(store).UpsertUser("jordan@example.com", "Jordan", "github")
	require.NoError(t, err)
	token, _, err := services.GenerateSessionToken(user)
	require.NoError(t, err)

	authed := NewSessionContext(New(server.URL, WithSessionToken(token)))
	require.NoError(t, authed.Refresh(context.Background()))
	assert.Equal(t, StateAuthenticated, authed.State())
	require.NotNil(t, authed.Principal())
	assert.Equal(t, "Jordan", authed.Principal().UserDetails)

	assert.Equal(t, server.URL+"/api/auth/login", authed.LoginURL())
	assert.Equal(t, server.URL+"/api/auth/logout", authed.LogoutURL())
}

func TestSessionContextUnreachableServer(t *testing.T) {
	server, _ := newTestServer(t)
	url := server.URL
	server.Close()

	session := NewSessionContext(New(url))
	err := session.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, session.State())
}
