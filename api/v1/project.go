package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
)

// ProjectController dispatches project CRUD requests to the project
// service.
type ProjectController struct {
	service *services.ProjectService
	tasks   *services.TaskService
}

// NewProjectController creates a new project controller instance
func NewProjectController(store *repositories.Store) *ProjectController {
	return &ProjectController{
		service: services.NewProjectService(store),
		tasks:   services.NewTaskService(store),
	}
}

// RegisterRoutes registers project endpoints, including the
// project-scoped task listing.
func (ctl *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/projects")
	{
		group.GET("", ctl.List)
		group.POST("", ctl.Create)
		group.GET("/:id", ctl.Get)
		group.PATCH("/:id", ctl.Update)
		group.DELETE("/:id", ctl.Delete)

		// Scoped variant of the tasks collection.
		group.GET("/:id/tasks", ctl.ListTasks)
		group.POST("/:id/tasks", ctl.CreateTask)
	}
}

// List returns every project.
func (ctl *ProjectController) List(c *gin.Context) {
	projects, err := ctl.service.ListProjects()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get returns one project by id.
func (ctl *ProjectController) Get(c *gin.Context) {
	project, err := ctl.service.GetProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create validates and persists a new project, answering 201 with the
// stored record including its generated id.
func (ctl *ProjectController) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	project, err := ctl.service.CreateProject(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update applies a partial-merge patch to one project.
func (ctl *ProjectController) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	project, err := ctl.service.UpdateProject(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete removes a project and its dependents. Deleting an unknown id
// answers 404; success is an empty 204.
func (ctl *ProjectController) Delete(c *gin.Context) {
	if err := ctl.service.DeleteProject(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTasks returns the tasks bound to one project. A project with no
// tasks yields an empty list.
func (ctl *ProjectController) ListTasks(c *gin.Context) {
	tasks, err := ctl.tasks.ListTasks(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task under the project named in the path; a
// projectId in the body is ignored in favor of the path binding.
func (ctl *ProjectController) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	req.ProjectID = c.Param("id")

	task, err := ctl.tasks.CreateTask(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}
