package cli

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	v1 "github.com/projectflow-simple/api/v1"
	"github.com/projectflow-simple/config"
	"github.com/projectflow-simple/database"
	"github.com/projectflow-simple/lib/identity"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
	"github.com/projectflow-simple/storage"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the ProjectFlow API server.

The store is chosen by STORE_DRIVER: "memory" (default) runs on seeded
process memory like the original mock handlers, "database" connects to
DATABASE_URL through the single configuration-driven connector.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	gin.SetMode(gin.ReleaseMode)

	store, err := openStore()
	if err != nil {
		return err
	}

	attachDir := config.GetEnv("ATTACHMENTS_DIR", "./attachments")
	port := config.GetEnv("PORT", "8080")
	publicBase := config.GetEnv("PUBLIC_BASE_URL", "http://localhost:"+port)
	docs, err := storage.NewLocalDocumentStore(attachDir, publicBase)
	if err != nil {
		return err
	}

	var provider identity.Provider
	if p, err := identity.NewOAuthProviderFromEnv(); err != nil {
		log.Printf("Warning: %v; redirect login disabled", err)
	} else {
		provider = p
	}
	devAuth := config.GetEnvBool("DEV_AUTH", provider == nil)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	router.HandleMethodNotAllowed = true
	router.NoMethod(v1.MethodNotAllowed)
	router.NoRoute(v1.NotFoundRoute)
	router.Static("/attachments", docs.BaseDir())

	v1.RegisterRoutes(router.Group("/api"), v1.RouterConfig{
		Store:       store,
		Docs:        docs,
		Provider:    provider,
		DevAuth:     devAuth,
		RequireAuth: config.GetEnvBool("REQUIRE_AUTH", false),
	})

	log.Printf("ProjectFlow API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// openStore builds the configured Entity Store. The memory driver
// starts pre-seeded, matching the original mock data arrays.
func openStore() (*repositories.Store, error) {
	driver := config.GetEnv("STORE_DRIVER", "memory")
	switch driver {
	case "memory":
		store := repositories.NewMemoryStore()
		if err := services.Seed(store); err != nil {
			return nil, err
		}
		log.Println("Using in-memory store with sample data")
		return store, nil
	case "database":
		db, err := database.Connect(config.GetEnv("DATABASE_URL", "sqlite://projectflow.db"))
		if err != nil {
			return nil, err
		}
		return repositories.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want memory or database)", driver)
	}
}
