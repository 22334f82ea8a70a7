package pyenv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/optihub-labs/optihub/internal/branding"
)

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func TestFind_EnvOverride(t *testing.T) {
	t.Setenv(branding.EnvVar("PYTHON"), "/opt/conda/bin/python")

	interp, err := Find()
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if interp.Bin != "/opt/conda/bin/python" {
		t.Errorf("Bin = %q, want the env override", interp.Bin)
	}
}

func TestVersion(t *testing.T) {
	bin := writeScript(t, "python3", `echo "Python 3.12.1"`)
	interp := &Interpreter{Bin: bin}

	version, err := interp.Version(context.Background())
	if err != nil {
		t.Fatalf("Version error: %v", err)
	}
	if version != "3.12.1" {
		t.Errorf("Version = %q, want 3.12.1", version)
	}
}

func TestVersion_ProbeFailure(t *testing.T) {
	bin := writeScript(t, "python3", "exit 2")
	interp := &Interpreter{Bin: bin}

	if _, err := interp.Version(context.Background()); err == nil {
		t.Fatal("expected error from failing interpreter, got nil")
	}
}

func TestPipRunner_Install(t *testing.T) {
	argvLog := filepath.Join(t.TempDir(), "argv.log")
	bin := writeScript(t, "python3", `echo "$@" > `+argvLog)

	r := &PipRunner{Interp: &Interpreter{Bin: bin}}
	if err := r.Install(context.Background(), "lion-pytorch"); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	data, err := os.ReadFile(argvLog)
	if err != nil {
		t.Fatalf("reading argv log: %v", err)
	}
	got := strings.TrimSpace(string(data))
	if got != "-m pip install lion-pytorch" {
		t.Errorf("pip argv = %q, want %q", got, "-m pip install lion-pytorch")
	}
}

func TestPipRunner_InstallFailure(t *testing.T) {
	bin := writeScript(t, "python3", "exit 1")

	r := &PipRunner{Interp: &Interpreter{Bin: bin}}
	err := r.Install(context.Background(), "lion-pytorch")
	if err == nil {
		t.Fatal("expected error from failing pip, got nil")
	}
	if !strings.Contains(err.Error(), "lion-pytorch") {
		t.Errorf("error %q does not mention the requirement", err.Error())
	}
}

func TestHasPip(t *testing.T) {
	ok := writeScript(t, "python3", "exit 0")
	if !(&Interpreter{Bin: ok}).HasPip(context.Background()) {
		t.Error("HasPip = false for a succeeding interpreter")
	}

	bad := writeScript(t, "python3", "exit 1")
	if (&Interpreter{Bin: bad}).HasPip(context.Background()) {
		t.Error("HasPip = true for a failing interpreter")
	}
}
