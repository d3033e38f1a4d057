// Package engine delegates model management to the external ollama binary.
//
// The child inherits the terminal, so interactive sessions ("ollama run")
// behave exactly as if the user had typed the command themselves:
//
//	ollama-tool pull llama2  →  Runner.Run("pull", "llama2")
//	  → exec ollama pull llama2 (stdin/stdout/stderr shared)
//	  → wait for exit; 0 = success, anything else = *domain.ExitError
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	clog "github.com/charmbracelet/log"

	"github.com/tutu-network/ollama-tool/internal/domain"
)

// Runner runs one external program synchronously.
type Runner struct {
	program string
	log     *clog.Logger

	// Standard streams handed to the child. NewRunner sets them to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner for program, resolved through PATH unless
// it contains a path separator.
func NewRunner(program string, logger *clog.Logger) *Runner {
	if logger == nil {
		logger = clog.Default()
	}
	return &Runner{
		program: program,
		log:     logger,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Program returns the executable this Runner delegates to.
func (r *Runner) Program() string { return r.program }

// Run executes the program with args and blocks until it exits.
// A program that cannot be started yields an error wrapping
// domain.ErrSpawn; a non-zero exit yields *domain.ExitError.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.program, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	// The child owns the terminal until it exits; Ctrl-C is delivered to
	// it directly and must not take this process down first.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	r.log.Debug("exec", "program", r.program, "args", args)
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = domain.ExitCodeUnknown
		}
		r.log.Debug("exec failed", "program", r.program, "code", code)
		return &domain.ExitError{Program: r.program, Code: code}
	}
	return fmt.Errorf("%w %s: %w", domain.ErrSpawn, r.program, err)
}
