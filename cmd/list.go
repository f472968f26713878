package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listReveal bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the entries of the env file in load order",
		Long: `Lists every declaration in the env file, in the order it was loaded.
Repeated keys are shown and marked as shadowed: lookups return the first one.

Values are masked when writing to a terminal unless --reveal is given.

Examples:
  envload list
  envload list --reveal
  envload list --env-file config/.env.local`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listReveal, "reveal", false, "Show values even on a terminal")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Fprintf(out, "  No entries in %s.\n", cfgEnvFile)
		return nil
	}

	mask := !listReveal && isTerminal(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKey\tValue\tNote")
	fmt.Fprintln(w, strings.Repeat("─", 3)+"\t"+strings.Repeat("─", 20)+"\t"+strings.Repeat("─", 30)+"\t"+strings.Repeat("─", 8))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		note := ""
		if seen[e.Key] {
			note = "shadowed"
		}
		seen[e.Key] = true

		value := strconv.Quote(e.Value)
		if mask {
			value = maskValue(e.Value)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, e.Key, value, note)
	}
	w.Flush()

	fmt.Fprintf(out, "\n  %d entries, %d distinct keys\n", len(entries), len(seen))
	return nil
}

// maskValue hides a value while keeping a hint of its length.
func maskValue(v string) string {
	if v == "" {
		return `""`
	}
	n := len(v)
	if n > 8 {
		n = 8
	}
	return strings.Repeat("*", n)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
