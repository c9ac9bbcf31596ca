// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: flag parsing -> config -> walk -> parse -> validate -> output.
// The binary is built once and every test runs it in a fresh temp directory
// with HOME pointed at another temp directory, so a developer's own
// ~/.svglint/config.yaml can never leak into a test.
//
// Rule and walker edge cases are covered by unit tests in their packages;
// these tests pin down what a user sees: diagnostic lines, exit codes and
// JSON output.

package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the svglint binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "svglint-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "svglint"
		if os.PathSeparator == '\\' {
			binaryName = "svglint.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates an empty working directory and home directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// write creates a file under the working directory.
func (e *testEnv) write(name, content string) {
	e.t.Helper()
	p := filepath.Join(e.dir, filepath.FromSlash(name))
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0o644))
}

// run executes svglint and fails the test on a non-zero exit.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, code := e.runCode(args...)
	if code != 0 {
		e.t.Fatalf("svglint %v exited %d\noutput: %s", args, code, out)
	}
	return out
}

// runErr executes svglint and returns stdout and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.Output()
	return string(out), err
}

// runCode executes svglint and returns stdout and the exit code.
func (e *testEnv) runCode(args ...string) (string, int) {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err == nil {
		return out, 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, exitErr.ExitCode()
	}
	e.t.Fatalf("svglint %v: %v", args, err)
	return out, -1
}

// lines splits output into non-empty lines.
func lines(out string) []string {
	var ls []string
	for l := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		if l != "" {
			ls = append(ls, l)
		}
	}
	return ls
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// Documents used across tests.
const (
	svgValid     = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`
	svgNoViewBox = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24"/>`
	svgImage     = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><image href="a.png"/></svg>`
	svgStyle     = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><rect style="fill:red"/></svg>`
	svgInkscape  = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" viewBox="0 0 24 24" inkscape:version="1.3"/>`
	svgNotSVG    = `<html><body/></html>`
	svgMalformed = `<svg viewBox="0 0 1 1"><g></svg>`
)
