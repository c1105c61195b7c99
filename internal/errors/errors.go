// Package errors defines the structured error types used across the
// scaffolding pipeline. Every error the tool can surface falls into one of a
// small set of kinds, and all of them are terminal: the CLI maps each to a
// printed message and a non-zero exit.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes scaffolding errors.
type Kind string

const (
	KindUsage      Kind = "usage"
	KindExists     Kind = "exists"
	KindSubprocess Kind = "subprocess"
	KindIO         Kind = "io"
	KindConfig     Kind = "config"
)

// ScaffoldError is a structured error with kind and context.
type ScaffoldError struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
	Path    string
	Step    string
	Exit    int
}

// Error implements the error interface.
func (e *ScaffoldError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Step != "" {
		parts = append(parts, "step:"+e.Step)
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on kind and code.
func (e *ScaffoldError) Is(target error) bool {
	var t *ScaffoldError
	if errors.As(target, &t) {
		return e.Kind == t.Kind && (t.Code == "" || e.Code == t.Code)
	}

	return false
}

// WithPath adds the filesystem path involved in the error.
func (e *ScaffoldError) WithPath(path string) *ScaffoldError {
	e.Path = path

	return e
}

// Error creation functions

// NewUsageError creates an error for invalid invocations (missing or
// malformed project name).
func NewUsageError(code, message string) *ScaffoldError {
	return &ScaffoldError{
		Kind:    KindUsage,
		Code:    code,
		Message: message,
	}
}

// NewExistsError creates an error for a target path that is already occupied.
func NewExistsError(path string) *ScaffoldError {
	return &ScaffoldError{
		Kind:    KindExists,
		Code:    "E_PATH_EXISTS",
		Message: fmt.Sprintf("%q already exists, refusing to overwrite", path),
		Path:    path,
	}
}

// NewSubprocessError creates an error for an install or build step that
// exited non-zero.
func NewSubprocessError(step string, exit int) *ScaffoldError {
	return &ScaffoldError{
		Kind:    KindSubprocess,
		Code:    "E_SUBPROCESS",
		Message: fmt.Sprintf("exited with status %d", exit),
		Step:    step,
		Exit:    exit,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Kind:    KindIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ScaffoldError {
	return &ScaffoldError{
		Kind:    KindConfig,
		Code:    code,
		Message: message,
	}
}

// Kind predicates used by the CLI layer.

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	return isKind(err, KindUsage)
}

// IsExists reports whether err is a path collision error.
func IsExists(err error) bool {
	return isKind(err, KindExists)
}

// IsSubprocess reports whether err is a subprocess failure.
func IsSubprocess(err error) bool {
	return isKind(err, KindSubprocess)
}

func isKind(err error, kind Kind) bool {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Kind == kind
	}

	return false
}
