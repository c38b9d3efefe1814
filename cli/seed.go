package cli

import (
	"github.com/spf13/cobra"

	"github.com/projectflow-simple/config"
	"github.com/projectflow-simple/database"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	var dbURL string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample fixtures into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				dbURL = config.GetEnv("DATABASE_URL", "sqlite://projectflow.db")
			}
			db, err := database.Connect(dbURL)
			if err != nil {
				return err
			}
			return services.Seed(repositories.NewGormStore(db))
		},
	}

	cmd.Flags().StringVar(&dbURL, "db", "", "database URL (defaults to DATABASE_URL)")
	return cmd
}
