package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
)

// BillingController dispatches billing CRUD requests to the billing
// service.
type BillingController struct {
	service *services.BillingService
}

// NewBillingController creates a new billing controller instance
func NewBillingController(store *repositories.Store) *BillingController {
	return &BillingController{service: services.NewBillingService(store)}
}

// RegisterRoutes registers billing endpoints.
func (ctl *BillingController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/billing")
	{
		group.GET("", ctl.List)
		group.POST("", ctl.Create)
		group.GET("/:id", ctl.Get)
		group.PATCH("/:id", ctl.Update)
		group.DELETE("/:id", ctl.Delete)
	}
}

// List returns billing services, narrowed by the optional projectId
// query filter.
func (ctl *BillingController) List(c *gin.Context) {
	billing, err := ctl.service.ListBilling(c.Query("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, billing)
}

// Get returns one billing service by id.
func (ctl *BillingController) Get(c *gin.Context) {
	billing, err := ctl.service.GetBilling(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, billing)
}

// Create validates and persists a new billing service.
func (ctl *BillingController) Create(c *gin.Context) {
	var req dto.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	billing, err := ctl.service.CreateBilling(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, billing)
}

// Update applies a partial-merge patch to one billing service.
func (ctl *BillingController) Update(c *gin.Context) {
	var req dto.UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	billing, err := ctl.service.UpdateBilling(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, billing)
}

// Delete removes a billing service.
func (ctl *BillingController) Delete(c *gin.Context) {
	if err := ctl.service.DeleteBilling(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
