package helpers

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

// HooksBinary is the name of the hook binary expected in PATH.
const HooksBinary = "claude-hooks"

// HookRun holds the observable outcome of one hook process.
type HookRun struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RequireHooks skips the test if claude-hooks is not available in PATH
func RequireHooks(t *testing.T) {
	t.Helper()

	if !IsHooksAvailable() {
		t.Skip(HooksBinary + " not found in PATH")
	}
}

// IsHooksAvailable checks if claude-hooks is available without skipping
func IsHooksAvailable() bool {
	_, err := exec.LookPath(HooksBinary)
	return err == nil
}

// RunHook runs claude-hooks with args, feeding input on stdin.
// A nonzero exit status is reported in ExitCode rather than failing the test.
func RunHook(t *testing.T, input string, args ...string) HookRun {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(HooksBinary, args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	run := HookRun{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run %s: %v", HooksBinary, err)
		}
		run.ExitCode = exitErr.ExitCode()
	}

	run.Stdout = stdout.String()
	run.Stderr = stderr.String()
	return run
}
