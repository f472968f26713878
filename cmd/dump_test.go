package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DevExpGBB/envload/internal/envfile"
	"github.com/google/go-cmp/cmp"
)

func TestRunDump_RoundTrip(t *testing.T) {
	content := `A=1
A=2
GREETING="say \"hi\""
MULTI="line1\nline2"
PRICE=$5!
PATH_LIKE='C:\\tools\\bin'
EMPTY=
ZIP=00501
SIGN=+1
NEG=-0
COUNT=42
`
	src := useEnvFile(t, content)

	cmd, buf := newTestCmd(runDump)
	if err := runDump(cmd, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"A=1\n", "COUNT=42\n", `ZIP="00501"`, `SIGN="+1"`, `NEG="-0"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump output missing %q:\n%s", want, buf.String())
		}
	}

	dumped := filepath.Join(t.TempDir(), ".env.dump")
	if err := os.WriteFile(dumped, buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}

	orig := envfile.New()
	if err := orig.Load(src); err != nil {
		t.Fatal(err)
	}
	reloaded := envfile.New()
	if err := reloaded.Load(dumped); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig.Values(), reloaded.Values()); diff != "" {
		t.Errorf("dump does not reload to the same values (-want +got):\n%s", diff)
	}
}

func TestRunDump_Empty(t *testing.T) {
	useEnvFile(t, "# nothing\n")

	cmd, buf := newTestCmd(runDump)
	if err := runDump(cmd, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestMarshalEnv_KeepsNonCanonicalIntegers(t *testing.T) {
	got, err := marshalEnv(map[string]string{
		"PIN":   "0042",
		"PORT":  "8080",
		"DELTA": "+1",
		"NAME":  "svc",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "DELTA=\"+1\"\nNAME=\"svc\"\nPIN=\"0042\"\nPORT=8080"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
