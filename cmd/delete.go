package cmd

import (
	"fmt"
	"os"

	"github.com/DevExpGBB/envload/internal/envfile"
	"github.com/DevExpGBB/envload/internal/prompt"
	"github.com/spf13/cobra"
)

var deleteForce bool

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the env file",
		Long: `Removes the env file from disk, so secrets it holds do not linger.
Asks for confirmation unless --force is given.

Example:
  envload delete --env-file .env.local --force`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	cmd.Flags().BoolVar(&deleteForce, "force", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(cfgEnvFile); os.IsNotExist(err) {
		fmt.Fprintf(out, "  %s does not exist, nothing to delete.\n", cfgEnvFile)
		return nil
	}

	if !deleteForce && !prompt.Confirm(fmt.Sprintf("Delete %s?", cfgEnvFile)) {
		fmt.Fprintln(out, "  Aborted.")
		return nil
	}

	if err := envfile.Delete(cfgEnvFile); err != nil {
		return fmt.Errorf("failed to delete %s: %w", cfgEnvFile, err)
	}
	fmt.Fprintf(out, "  ✅ Deleted %s\n", cfgEnvFile)
	return nil
}
