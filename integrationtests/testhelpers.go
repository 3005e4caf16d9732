// Package integrationtests runs the compiled GHier binaries against
// real dump files. The tests only run when
// GHIER_INTEGRATION_TEST_RUN_MODE is set to "yes" and expect the
// binaries to be compiled at the repository root.
package integrationtests

import (
	"os"
	"path/filepath"
	"testing"
)

// cleanupTmpFiles removes all .tmp files in the current directory
// before test execution.
func cleanupTmpFiles(t *testing.T) {
	t.Helper()
	matches, err := filepath.Glob("*.tmp")
	if err != nil {
		t.Logf("Warning: failed to glob .tmp files: %v", err)
		return
	}

	for _, file := range matches {
		if err := os.Remove(file); err != nil {
			t.Logf("Warning: failed to remove %s: %v", file, err)
		}
	}
}

// cleanupFiles registers files to be removed during test cleanup.
func cleanupFiles(t *testing.T, files ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, file := range files {
			os.Remove(file)
		}
	})
}

// writeTestFile creates a file with the given content and registers it
// for cleanup.
func writeTestFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cleanupFiles(t, name)
}
