// Package cli wires the projectflow commands: serve runs the API,
// dbcheck prints the database diagnostics report and seed loads the
// sample fixtures.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/projectflow-simple/config"
)

// NewRootCommand builds the projectflow command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projectflow",
		Short: "Project, task and billing management API",
		Long: `ProjectFlow is the backend for a small project/task/billing
management application: CRUD handlers over a pluggable store, a file
attachment gateway and redirect-based session auth.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
		},
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewDbCheckCommand())
	cmd.AddCommand(NewSeedCommand())
	return cmd
}

// Execute runs the root command, printing the failure for the caller
// to exit on.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
