package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/DevExpGBB/envload/internal/envfile"
)

func TestRunShow(t *testing.T) {
	unsetEnv(t, "ENVLOAD_SHOW_FOO")
	unsetEnv(t, "ENVLOAD_SHOW_MISSING")
	useEnvFile(t, "ENVLOAD_SHOW_FOO=bar\n")

	origKeys := showKeys
	t.Cleanup(func() { showKeys = origKeys })
	showKeys = []string{"ENVLOAD_SHOW_FOO", "ENVLOAD_SHOW_MISSING"}

	cmd, buf := newTestCmd(runShow)
	if err := runShow(cmd, nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"library ENVLOAD_SHOW_FOO=bar\n",
		"library ENVLOAD_SHOW_MISSING=(not found)\n",
		"process getenv ENVLOAD_SHOW_FOO=bar\n",
		"process getenv ENVLOAD_SHOW_MISSING=(not found)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := os.Getenv("ENVLOAD_SHOW_FOO"); got != "bar" {
		t.Errorf("ENVLOAD_SHOW_FOO = %q, want %q", got, "bar")
	}
	if n := envfile.Default().Len(); n != 0 {
		t.Errorf("default store should be released, has %d entries", n)
	}
}

func TestRunShow_MissingFile(t *testing.T) {
	setEnvFile(t, "/nonexistent/.env")

	cmd, _ := newTestCmd(runShow)
	err := runShow(cmd, nil)
	if err == nil {
		t.Fatal("expected error for missing env file")
	}
	if !strings.Contains(err.Error(), "failed to load") {
		t.Errorf("unexpected error message: %v", err)
	}
}
