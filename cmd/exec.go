package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/DevExpGBB/envload/internal/inject"
	"github.com/spf13/cobra"
)

var execOverwrite bool

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec -- COMMAND [ARGS...]",
		Short: "Run a command with the env file added to its environment",
		Long: `Runs COMMAND with a copy of the current environment plus every entry of the
env file. Variables already set keep their value unless --overwrite is given.
The current process environment is not modified.

Examples:
  envload exec -- ./server
  envload exec --overwrite --env-file .env.test -- go test ./...`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExec,
	}

	cmd.Flags().BoolVar(&execOverwrite, "overwrite", false, "Replace variables already set in the environment")

	return cmd
}

func runExec(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	env := inject.FromEnviron(os.Environ())
	if err := inject.All(store, env, execOverwrite); err != nil {
		return err
	}

	child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
	child.Env = env.Environ()
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	logger.Debug("starting command", "command", args[0], "entries", store.Len())
	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &childExitError{name: args[0], code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", args[0], err)
	}
	return nil
}

// childExitError carries a child's non-zero exit status out to Execute.
type childExitError struct {
	name string
	code int
}

func (e *childExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.name, e.code)
}

// exitCode returns the status the process should exit with for err.
func exitCode(err error) int {
	var childErr *childExitError
	if errors.As(err, &childErr) && childErr.code > 0 {
		return childErr.code
	}
	return 1
}
