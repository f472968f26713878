package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// useEnvFile writes content to a temp env file and points --env-file at it.
func useEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	setEnvFile(t, path)
	return path
}

func setEnvFile(t *testing.T, path string) {
	t.Helper()
	orig := cfgEnvFile
	t.Cleanup(func() { cfgEnvFile = orig })
	cfgEnvFile = path
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func newTestCmd(run func(*cobra.Command, []string) error) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{RunE: run}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestRootCmd_SubcommandsRegistered(t *testing.T) {
	want := map[string]string{
		"show":   "inspect",
		"get":    "inspect",
		"list":   "inspect",
		"dump":   "inspect",
		"exec":   "run",
		"delete": "manage",
	}
	for _, sub := range rootCmd.Commands() {
		group, ok := want[sub.Name()]
		if !ok {
			continue
		}
		if sub.GroupID != group {
			t.Errorf("%s: group = %q, want %q", sub.Name(), sub.GroupID, group)
		}
		delete(want, sub.Name())
	}
	for name := range want {
		t.Errorf("%q subcommand not registered under rootCmd", name)
	}
}

func TestRootCmd_EnvFileDefault(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("env-file")
	if f == nil {
		t.Fatal("--env-file flag not defined")
	}
	if f.DefValue != ".env" {
		t.Errorf("--env-file default = %q, want %q", f.DefValue, ".env")
	}
}
