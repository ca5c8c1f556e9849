package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrIO            = errors.New("io error")
	ErrParse         = errors.New("parse error")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindIO            ErrorKind = "io"
	KindParse         ErrorKind = "parse"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel that corresponds to the error kind, so callers can
// use errors.Is(err, ErrNotFound) without inspecting the cause.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	return kindSentinel(e.Kind) == target
}

func kindSentinel(kind ErrorKind) error {
	switch kind {
	case KindNotFound:
		return ErrNotFound
	case KindIO:
		return ErrIO
	case KindParse:
		return ErrParse
	case KindInvalidConfig:
		return ErrInvalidConfig
	default:
		return nil
	}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ParseError describes which element of a loaded input failed integer
// conversion. Group is zero for flat inputs; Group and Line are 1-based.
type ParseError struct {
	Group int
	Line  int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Group > 0 {
		return fmt.Sprintf("group %d line %d: invalid integer %q: %v", e.Group, e.Line, e.Value, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid integer %q: %v", e.Line, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid integer %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
