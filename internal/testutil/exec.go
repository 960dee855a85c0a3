package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RequireOSAScript aborts the calling test when osascript is not on PATH.
func RequireOSAScript(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("osascript")
	if err != nil {
		t.Skip("skipping: osascript binary not available")
	}
	return path
}

// RequireSystemEvents skips unless the System Events process query answers.
// Headless sessions and denied automation permissions both surface here
// rather than inside the test body.
func RequireSystemEvents(t *testing.T) {
	t.Helper()
	RequireOSAScript(t)
	script := `tell application "System Events" to get name of (processes where background only is false)`
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		t.Skipf("skipping: System Events unavailable: %v", err)
	}
}

// BuildBinary compiles the qapp binary into a temp dir and returns its path.
func BuildBinary(t *testing.T) string {
	t.Helper()
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "qapp")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
