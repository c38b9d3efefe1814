package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projectflow-simple/config"
	"github.com/projectflow-simple/database"
)

// NewDbCheckCommand creates the dbcheck command.
func NewDbCheckCommand() *cobra.Command {
	var dbURL string

	cmd := &cobra.Command{
		Use:   "dbcheck",
		Short: "Run database connectivity and schema diagnostics",
		Long: `Connect with the configured DATABASE_URL, check that every entity
table exists and print one JSON report. A connection failure is part of
the report, not a command error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				dbURL = config.GetEnv("DATABASE_URL", "sqlite://projectflow.db")
			}
			report := database.RunDiagnostics(dbURL)
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbURL, "db", "", "database URL (defaults to DATABASE_URL)")
	return cmd
}
