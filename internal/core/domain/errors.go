package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Catalog Errors.

	// ErrExternalTool indicates the catalog tool exited with a failure.
	ErrExternalTool = errors.New("catalog tool failed")

	// ErrMalformedResponse indicates the catalog tool's output could not be
	// read as a list of product objects.
	ErrMalformedResponse = errors.New("malformed catalog response")
)

// ExternalToolError is returned when the catalog tool exits non-zero or
// cannot be started. Stderr carries the tool's own diagnostics.
type ExternalToolError struct {
	Binary   string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExternalToolError) Error() string {
	var b strings.Builder
	if e.ExitCode < 0 {
		fmt.Fprintf(&b, "%s could not be run", e.Binary)
	} else {
		fmt.Fprintf(&b, "%s exited with status %d", e.Binary, e.ExitCode)
	}
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		b.WriteString(":\n")
		b.WriteString(msg)
	}
	return b.String()
}

// Is matches ErrExternalTool.
func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when the catalog tool succeeded but
// its output is not a JSON array of objects.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	msg := ErrMalformedResponse.Error() + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches ErrMalformedResponse.
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
