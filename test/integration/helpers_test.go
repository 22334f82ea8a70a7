//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/optihub-labs/optihub/internal/branding"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	RegistryPath string // OPTIHUB_REGISTRY — the manifest under test
	PipLog       string // argv log written by the fake interpreter
	BinDir       string // directory holding the fake python3, prepended to PATH
}

// testRegistry is a small but representative manifest: a plain PyPI
// package, a pinned package, a VCS source, and a non-installable entry.
const testRegistry = `[optimizers.Lion]
source = "lion-pytorch"
module_path = "lion_pytorch"
class_name = "Lion"
reference = "https://arxiv.org/abs/2302.06675"

[optimizers.Prodigy]
source = "prodigyopt"
module_path = "prodigyopt"
class_name = "Prodigy"
requires = ">=1.0"

[optimizers.Muon]
source = "git+https://github.com/KellerJordan/Muon"
module_path = "muon"
class_name = "SingleDeviceMuonWithAuxAdam"

[optimizers.Sophia]
module_path = "sophia_opt"
class_name = "SophiaG"
installable = false
`

// setupTestEnv writes the registry manifest and a fake python3 into temp
// directories and points the environment at them, so install runs never
// touch a real interpreter.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	env := &testEnv{
		RegistryPath: filepath.Join(dir, "registry.toml"),
		PipLog:       filepath.Join(dir, "pip.log"),
		BinDir:       filepath.Join(dir, "bin"),
	}

	if err := os.WriteFile(env.RegistryPath, []byte(testRegistry), 0644); err != nil {
		t.Fatalf("writing registry: %v", err)
	}

	if err := os.MkdirAll(env.BinDir, 0755); err != nil {
		t.Fatalf("creating bin dir: %v", err)
	}
	script := "#!/bin/sh\necho \"$@\" >> " + env.PipLog + "\n"
	if err := os.WriteFile(filepath.Join(env.BinDir, "python3"), []byte(script), 0755); err != nil {
		t.Fatalf("writing fake python3: %v", err)
	}

	t.Setenv(branding.EnvVar("REGISTRY"), env.RegistryPath)
	t.Setenv(branding.EnvVar("PYTHON"), filepath.Join(env.BinDir, "python3"))

	return env
}

// pipCalls returns the recorded pip invocations, one per line.
func pipCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.PipLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading pip log: %v", err)
	}
	var calls []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			calls = append(calls, line)
		}
	}
	return calls
}
