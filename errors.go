package willowui

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes the failures the toolkit reports.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMissingTransition means a lookup found nothing. Widgets snap
	// instead; the kind exists for diagnostics only.
	KindMissingTransition
	// KindInvalidDuration marks blueprint durations that were clamped to 0.
	KindInvalidDuration
	// KindReentrantSettle marks a settle callback received while resting.
	KindReentrantSettle
	// KindStaleProvider marks resources released because their skin changed.
	KindStaleProvider
	// KindBlueprint indicates a blueprint that could not be parsed.
	KindBlueprint
	// KindScript indicates a test script that could not be parsed.
	KindScript
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingTransition:
		return "missing transition"
	case KindInvalidDuration:
		return "invalid duration"
	case KindReentrantSettle:
		return "reentrant settle"
	case KindStaleProvider:
		return "stale provider"
	case KindBlueprint:
		return "blueprint"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// Error is a structured toolkit error.
type Error struct {
	// Op is the operation that failed (e.g. "LoadBlueprint").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("willowui: %s [%s]", e.Op, e.Kind)
	}
	return fmt.Sprintf("willowui: %s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrDestroyed is returned when operating on a destroyed widget.
var ErrDestroyed = errors.New("willowui: widget destroyed")

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
