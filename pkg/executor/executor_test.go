package executor

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunCapturesStdout(t *testing.T) {
	requireShell(t)

	res, err := New().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", `printf '%s' "$1"`, "sh", "hello; rm -rf /"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// The argument must arrive verbatim, never re-parsed by a shell.
	if res.Stdout != "hello; rm -rf /" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "hello; rm -rf /")
	}
}

func TestRunFailureIncludesStderr(t *testing.T) {
	requireShell(t)

	_, err := New().Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo boom 1>&2; exit 3"},
	})
	if err == nil {
		t.Fatal("Run() should fail for non-zero exit")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
	if cmdErr.Stderr != "boom" {
		t.Errorf("Stderr = %q, want %q", cmdErr.Stderr, "boom")
	}
	if !strings.Contains(err.Error(), "stderr: boom") {
		t.Errorf("Error() = %q, want stderr included", err.Error())
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("error should unwrap to *exec.ExitError, got %v", err)
	}
}

func TestRunInDir(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()

	res, err := New().Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "pwd"}, Dir: dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if filepath.Base(strings.TrimSpace(res.Stdout)) != filepath.Base(dir) {
		t.Errorf("pwd = %q, want suffix of %q", res.Stdout, dir)
	}
}

func TestRunCancelled(t *testing.T) {
	requireShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := New().Run(ctx, Command{Name: "sh", Args: []string{"-c", "sleep 5"}})
	if err == nil {
		t.Fatal("Run() should fail when context is cancelled")
	}
	if time.Since(start) > 3*time.Second {
		t.Errorf("Run() did not stop on cancel, took %v", time.Since(start))
	}
}

func TestMissing(t *testing.T) {
	requireShell(t)

	got := Missing("sh", "", "definitely-not-a-real-binary-xyz")
	if len(got) != 1 || got[0] != "definitely-not-a-real-binary-xyz" {
		t.Errorf("Missing() = %v, want only the fake binary", got)
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "yt-dlp", Args: []string{"-x", "--", "https://youtu.be/x"}}
	if got := c.String(); got != "yt-dlp -x -- https://youtu.be/x" {
		t.Errorf("String() = %q", got)
	}
}
