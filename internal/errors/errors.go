// Package errors provides structured error types for pfp.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindScan
	KindSelector
	KindTmux
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindScan:
		return "scan error"
	case KindSelector:
		return "selector error"
	case KindTmux:
		return "tmux error"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for pfp.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// BadPattern reports an unparseable marker or ignore pattern. Raised at
// resolve time, before any traversal starts.
func BadPattern(pattern string, err error) error {
	return E(Op("config.Resolve"), KindConfig, fmt.Sprintf("invalid pattern %q", pattern), err)
}

// Scan errors
func ScanBadName(path string) error {
	return E(Op("scan.classify"), KindScan, fmt.Sprintf("entry name under %s is not valid UTF-8", path))
}

// Path expansion errors
func UndefinedVar(name string) error {
	return E(Op("expand.Expand"), KindNotFound, fmt.Sprintf("environment variable %s is not set", name))
}

// Selector errors
func EmptyPick() error {
	return E(Op("fzf.Select"), KindCancelled, "empty pick")
}

func SelectorFailed(err error) error {
	return E(Op("fzf.Select"), KindSelector, "fzf failed", err)
}

// Tmux errors
func TmuxFailed(subcommand string, err error) error {
	return E(Op("tmux.run"), KindTmux, fmt.Sprintf("tmux %s failed", subcommand), err)
}
