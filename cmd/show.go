package cmd

import (
	"fmt"
	"os"

	"github.com/DevExpGBB/envload/internal/envfile"
	"github.com/DevExpGBB/envload/internal/inject"
	"github.com/spf13/cobra"
)

var (
	showKeys      []string
	showOverwrite bool
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Load the env file, inject it, and compare library and process values",
		Long: `Loads the env file into the process-wide store, prints the loaded value of
each key, injects every entry into this process's environment, and prints
what the process environment now reports for the same keys.

Example:
  envload show
  envload show --keys DATABASE_URL,PORT --overwrite=false`,
		RunE: runShow,
	}

	cmd.Flags().StringSliceVar(&showKeys, "keys", []string{"API_KEY", "USER"}, "Keys to display")
	cmd.Flags().BoolVar(&showOverwrite, "overwrite", true, "Replace variables already set in the environment")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := envfile.Load(cfgEnvFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", cfgEnvFile, err)
	}
	defer envfile.Release()

	for _, key := range showKeys {
		fmt.Fprintf(out, "library %s=%s\n", key, orNotFound(envfile.Get(key)))
	}

	if err := inject.All(envfile.Default(), inject.OS{}, showOverwrite); err != nil {
		return fmt.Errorf("failed to inject env: %w", err)
	}

	for _, key := range showKeys {
		fmt.Fprintf(out, "process getenv %s=%s\n", key, orNotFound(os.LookupEnv(key)))
	}
	return nil
}

func orNotFound(v string, ok bool) string {
	if !ok {
		return "(not found)"
	}
	return v
}
