package domain

import (
	"errors"
	"fmt"
)

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Transport errors
	ErrNetwork         = errors.New("network error")
	ErrDeserialization = errors.New("unexpected response body")

	// Catalog errors
	ErrParse = errors.New("could not parse catalog page")

	// External program errors
	ErrSpawn           = errors.New("could not start external program")
	ErrExternalCommand = errors.New("external command failed")

	// Input errors
	ErrInvalidModelName = errors.New("invalid model name")
)

// ExitCodeUnknown is reported when the child exited without a usable
// status code, e.g. it was killed by a signal.
const ExitCodeUnknown = -1

// ExitError reports an external program that ran to completion but
// returned a non-zero status.
type ExitError struct {
	Program string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s command failed with exit code %d", e.Program, e.Code)
}

// Unwrap lets callers match with errors.Is(err, ErrExternalCommand).
func (e *ExitError) Unwrap() error { return ErrExternalCommand }
