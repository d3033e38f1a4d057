package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/tutu-network/ollama-tool/internal/domain"
)

// fakeProgram writes an executable shell script into a temp dir and
// returns its path.
func fakeProgram(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "ollama")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write fake program: %v", err)
	}
	return path
}

func newTestRunner(program string) (*Runner, *bytes.Buffer) {
	r := NewRunner(program, nil)
	var out bytes.Buffer
	r.Stdin = strings.NewReader("")
	r.Stdout = &out
	r.Stderr = &out
	return r, &out
}

func TestRunner_Success(t *testing.T) {
	r, out := newTestRunner(fakeProgram(t, `echo "args:$*"`))

	if err := r.Run(context.Background(), "pull", "mistral"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "args:pull mistral" {
		t.Errorf("child output = %q, want %q", got, "args:pull mistral")
	}
}

func TestRunner_ExitCode(t *testing.T) {
	r, _ := newTestRunner(fakeProgram(t, "exit 7"))

	err := r.Run(context.Background(), "list")
	if !errors.Is(err, domain.ErrExternalCommand) {
		t.Fatalf("Run() error = %v, want ErrExternalCommand", err)
	}
	if errors.Is(err, domain.ErrSpawn) {
		t.Error("exit failure should not match ErrSpawn")
	}

	var exitErr *domain.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %T, want *domain.ExitError", err)
	}
	if exitErr.Code != 7 {
		t.Errorf("Code = %d, want 7", exitErr.Code)
	}
}

func TestRunner_Signaled(t *testing.T) {
	r, _ := newTestRunner(fakeProgram(t, "kill -9 $$"))

	var exitErr *domain.ExitError
	if err := r.Run(context.Background()); !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *domain.ExitError", err)
	}
	if exitErr.Code != domain.ExitCodeUnknown {
		t.Errorf("Code = %d, want %d", exitErr.Code, domain.ExitCodeUnknown)
	}
}

func TestRunner_Stdin(t *testing.T) {
	r, out := newTestRunner(fakeProgram(t, "read line; echo \"got:$line\""))
	r.Stdin = strings.NewReader("hello\n")

	if err := r.Run(context.Background(), "run", "llama2"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "got:hello" {
		t.Errorf("child output = %q, want %q", got, "got:hello")
	}
}

func TestRunner_NotFound(t *testing.T) {
	r, _ := newTestRunner("ollama-tool-definitely-not-installed")

	err := r.Run(context.Background(), "list")
	if !errors.Is(err, domain.ErrSpawn) {
		t.Fatalf("Run() error = %v, want ErrSpawn", err)
	}
	if errors.Is(err, domain.ErrExternalCommand) {
		t.Error("spawn failure should not match ErrExternalCommand")
	}
}

func TestRunner_NotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not enforced on windows")
	}
	path := filepath.Join(t.TempDir(), "ollama")
	if err := os.WriteFile(path, []byte("not a program"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, _ := newTestRunner(path)

	if err := r.Run(context.Background()); !errors.Is(err, domain.ErrSpawn) {
		t.Errorf("Run() error = %v, want ErrSpawn", err)
	}
}
