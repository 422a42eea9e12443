//go:build basic || database

// Package integration contains end-to-end tests for the gradebook CLI.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Database-backed tests need Docker: go test -tags database ./integration
package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedGradebookPath holds the path to a shared gradebook binary built once for all tests.
	sharedGradebookPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getGradebookBinary returns the path to the gradebook binary, building it once if needed.
func getGradebookBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "gradebook-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		gradebookPath := filepath.Join(tempDir, "gradebook")
		buildCmd := exec.Command("go", "build", "-o", gradebookPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build gradebook: %v\n%s", err, out))
		}

		sharedGradebookPath = gradebookPath
	})

	return sharedGradebookPath
}

// cliResult captures the streams of one CLI invocation.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runGradebook runs the CLI in workDir with HOME pointed there, so default
// SQLite files and config lookups stay inside the test directory.
func runGradebook(t *testing.T, workDir string, env map[string]string, args ...string) cliResult {
	t.Helper()
	cmd := exec.Command(getGradebookBinary(), args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+workDir, "GRADEBOOK_COLOR=no")
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		t.Logf("Command failed: %s\nStdout: %s\nStderr: %s", cmd.String(), stdout.String(), stderr.String())
	}
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
