package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
)

// TaskController dispatches task CRUD requests to the task service.
type TaskController struct {
	service *services.TaskService
}

// NewTaskController creates a new task controller instance
func NewTaskController(store *repositories.Store) *TaskController {
	return &TaskController{service: services.NewTaskService(store)}
}

// RegisterRoutes registers task endpoints.
func (ctl *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/tasks")
	{
		group.GET("", ctl.List)
		group.POST("", ctl.Create)
		group.GET("/:id", ctl.Get)
		group.PATCH("/:id", ctl.Update)
		group.DELETE("/:id", ctl.Delete)
	}
}

// List returns tasks, narrowed by the optional projectId query filter.
func (ctl *TaskController) List(c *gin.Context) {
	tasks, err := ctl.service.ListTasks(c.Query("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Get returns one task by id.
func (ctl *TaskController) Get(c *gin.Context) {
	task, err := ctl.service.GetTask(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create validates and persists a new task.
func (ctl *TaskController) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	task, err := ctl.service.CreateTask(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update applies a partial-merge patch to one task.
func (ctl *TaskController) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	task, err := ctl.service.UpdateTask(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete removes a task. The second delete of the same id answers 404.
func (ctl *TaskController) Delete(c *gin.Context) {
	if err := ctl.service.DeleteTask(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
