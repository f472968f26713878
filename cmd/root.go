// Package cmd contains the cobra command tree for envload.
package cmd

import (
	"fmt"
	"os"

	"github.com/DevExpGBB/envload/internal/envfile"
	"github.com/DevExpGBB/envload/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgEnvFile string // --env-file flag (global)
	cfgVerbose bool   // --verbose flag (global)
)

var logger = logging.New(os.Stderr, false)

var rootCmd = &cobra.Command{
	Use:   "envload",
	Short: "Load .env files and inject them into process environments",
	Long: `envload: a loader for .env configuration files.

Parses KEY=VALUE declarations (with quoting and escapes), looks values up,
and injects them into the environment of this or a child process.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(os.Stderr, cfgVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgEnvFile, "env-file", ".env", "Path to the env file")
	rootCmd.PersistentFlags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Log skipped lines and lookup sources")

	rootCmd.AddGroup(
		&cobra.Group{ID: "inspect", Title: "Inspect Commands:"},
		&cobra.Group{ID: "run", Title: "Run Commands:"},
		&cobra.Group{ID: "manage", Title: "Manage Commands:"},
	)

	for _, c := range []struct {
		cmd   *cobra.Command
		group string
	}{
		{newShowCmd(), "inspect"},
		{newGetCmd(), "inspect"},
		{newListCmd(), "inspect"},
		{newDumpCmd(), "inspect"},
		{newExecCmd(), "run"},
		{newDeleteCmd(), "manage"},
	} {
		c.cmd.GroupID = c.group
		rootCmd.AddCommand(c.cmd)
	}
}

// loadStore reads the configured env file into a fresh store.
func loadStore() (*envfile.Store, error) {
	store := envfile.New(envfile.WithLogger(logger))
	if err := store.Load(cfgEnvFile); err != nil {
		return nil, err
	}
	logger.Debug("env file loaded", "path", cfgEnvFile, "entries", store.Len())
	return store, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
