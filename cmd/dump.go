package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the effective values as a normalized env file",
		Long: `Prints one KEY="VALUE" line per distinct key, sorted by key, using the
first value declared for each key. Quotes and escapes are re-encoded so
the output loads back to the same values.

Example:
  envload dump > .env.resolved`,
		Args: cobra.NoArgs,
		RunE: runDump,
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		return nil
	}

	content, err := marshalEnv(store.Values())
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}

// marshalEnv encodes values with godotenv, except that integer-looking values
// godotenv would rewrite (00501, +1, -0) are emitted quoted and unchanged.
func marshalEnv(values map[string]string) (string, error) {
	plain := make(map[string]string, len(values))
	var lines []string
	for k, v := range values {
		if n, err := strconv.Atoi(v); err == nil && strconv.Itoa(n) != v {
			// only a sign and digits, nothing to escape
			lines = append(lines, fmt.Sprintf(`%s="%s"`, k, v))
			continue
		}
		plain[k] = v
	}

	content, err := godotenv.Marshal(plain)
	if err != nil {
		return "", err
	}
	if content != "" {
		lines = append(lines, strings.Split(content, "\n")...)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}
