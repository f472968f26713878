package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/DevExpGBB/envload/internal/resolve"
	"github.com/spf13/cobra"
)

var (
	getFallbackEnv bool
	getPrompt      bool
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a key from the env file",
		Long: `Prints the first value declared for KEY in the env file.

With --env, the process environment is consulted when the file does not
declare KEY. With --prompt, the value is read from the terminal (input
hidden) as a last resort.

Examples:
  envload get DATABASE_URL
  envload get API_KEY --env --prompt`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}

	cmd.Flags().BoolVar(&getFallbackEnv, "env", false, "Fall back to the process environment")
	cmd.Flags().BoolVar(&getPrompt, "prompt", false, "Prompt for the value when no source has it")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	opts := resolve.Opts{
		Keys:        []string{key},
		DisplayName: key,
		Prompt:      getPrompt,
	}
	if getFallbackEnv {
		opts.EnvVarNames = []string{key}
	}

	store, err := loadStore()
	switch {
	case err == nil:
		opts.Store = store
	case errors.Is(err, fs.ErrNotExist) && (getFallbackEnv || getPrompt):
		logger.Warn("env file not found, using other sources", "path", cfgEnvFile)
	default:
		return err
	}

	result, err := resolve.Resolve(opts)
	if err != nil {
		if errors.Is(err, resolve.ErrNotFound) && !getFallbackEnv {
			return fmt.Errorf("%s is not declared in %s", key, cfgEnvFile)
		}
		return err
	}
	logger.Debug("resolved", "key", key, "source", result.Source)

	fmt.Fprintln(cmd.OutOrStdout(), result.Value)
	return nil
}
