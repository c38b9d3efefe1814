package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/projectflow-simple/lib/identity"
	"github.com/projectflow-simple/middleware"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/storage"
)

// RouterConfig carries the wired collaborators for route registration.
type RouterConfig struct {
	Store    *repositories.Store
	Docs     storage.DocumentStore
	Provider identity.Provider
	// DevAuth enables the local dev login endpoint.
	DevAuth bool
	// RequireAuth gates every entity route behind a valid session.
	// Introspection and health stay public either way.
	RequireAuth bool
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, cfg RouterConfig) {
	router.GET("/health", HealthCheck)

	NewAuthController(cfg.Store, cfg.Provider, cfg.DevAuth).RegisterRoutes(router)

	entityRouter := router.Group("")
	if cfg.RequireAuth {
		entityRouter.Use(middleware.AuthMiddleware())
	}

	NewProjectController(cfg.Store).RegisterRoutes(entityRouter)
	NewTaskController(cfg.Store).RegisterRoutes(entityRouter)
	NewBillingController(cfg.Store).RegisterRoutes(entityRouter)
	NewFileController(cfg.Store, cfg.Docs).RegisterRoutes(entityRouter)
}
