package pyenv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/optihub-labs/optihub/internal/branding"
	"github.com/optihub-labs/optihub/internal/config"
)

// Interpreter is a resolved Python binary.
type Interpreter struct {
	Bin string
}

// Find locates the Python interpreter, checking (in order):
//  1. OPTIHUB_PYTHON env var
//  2. config key "python.bin"
//  3. python3, then python, on PATH
func Find() (*Interpreter, error) {
	if v := os.Getenv(branding.EnvVar("PYTHON")); v != "" {
		return &Interpreter{Bin: v}, nil
	}
	if v := config.Get("python.bin"); v != "" {
		return &Interpreter{Bin: v}, nil
	}

	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return &Interpreter{Bin: path}, nil
		}
	}

	return nil, fmt.Errorf("no Python interpreter found on PATH (set %s or config key python.bin)",
		branding.EnvVar("PYTHON"))
}

// Version runs `python --version` and returns the reported version
// string (e.g., "3.11.4").
func (i *Interpreter) Version(ctx context.Context) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, i.Bin, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("probing %s: %w", i.Bin, err)
	}

	// Output is "Python X.Y.Z".
	version := strings.TrimSpace(out.String())
	version = strings.TrimPrefix(version, "Python ")
	if version == "" {
		return "", fmt.Errorf("probing %s: empty version output", i.Bin)
	}
	return version, nil
}

// HasPip runs `python -m pip --version` to verify pip is usable.
func (i *Interpreter) HasPip(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, i.Bin, "-m", "pip", "--version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
