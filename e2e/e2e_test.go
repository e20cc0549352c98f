//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var bazelifyBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "bazelify-e2e-*")
	if err != nil {
		panic(err)
	}

	bazelifyBinary = filepath.Join(tmpDir, "bazelify")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", bazelifyBinary, "./cmd/bazelify")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build bazelify binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E puts the bazelify binary and a fake toolchain on PATH.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	toolsDir := filepath.Join(env.WorkDir, ".tools")
	if err := os.MkdirAll(toolsDir, 0o750); err != nil {
		return err
	}
	for _, name := range []string{"bazel", "pub"} {
		//nolint:gosec // fake executables must be executable
		if err := os.WriteFile(filepath.Join(toolsDir, name), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			return err
		}
	}

	env.Setenv("TOOLS", toolsDir)
	env.Setenv("BAZELIFY", bazelifyBinary)
	env.Setenv("PATH", filepath.Dir(bazelifyBinary)+string(os.PathListSeparator)+toolsDir)

	return nil
}
