package tree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStructuralConflict is matched by every *ConflictError.
var ErrStructuralConflict = errors.New("structural conflict")

// ErrInvalidUTF8 is returned, wrapped in a *LineError, for a line that is
// not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ConflictKind tells which side of the Scalar/Section invariant was broken.
type ConflictKind int

const (
	// ScalarAsSection: a dotted key tried to descend through a Scalar.
	ScalarAsSection ConflictKind = iota
	// SectionAsScalar: a key tried to store a Scalar where a Section exists.
	SectionAsScalar
)

// ConflictError reports a key whose path disagrees with the existing tree.
type ConflictError struct {
	Line    int
	Key     string
	Segment string
	// Path holds the segments up to and including Segment.
	Path []string
	Kind ConflictKind
}

// Error returns the error message
func (e *ConflictError) Error() string {
	var msg string
	switch e.Kind {
	case SectionAsScalar:
		msg = fmt.Sprintf("key %q: cannot assign a value to %q: it already holds a section", e.Key, e.Segment)
	default:
		msg = fmt.Sprintf("key %q: cannot use %q as a section: it already holds a value", e.Key, e.Segment)
	}
	if len(e.Path) > 1 {
		msg += fmt.Sprintf(" (at %s)", strings.Join(e.Path, KeySeparator))
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Is makes errors.Is(err, ErrStructuralConflict) succeed.
func (e *ConflictError) Is(target error) bool {
	return target == ErrStructuralConflict
}

// LineError attaches a 1-based line number to an error raised while
// processing that line.
type LineError struct {
	Line int
	Err  error
}

// Error returns the error message
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the wrapped error.
func (e *LineError) Unwrap() error {
	return e.Err
}
