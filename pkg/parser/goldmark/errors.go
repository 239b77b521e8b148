package goldmark

import (
	"errors"
	"fmt"
)

// ErrUnsupportedNode is matched by every *UnsupportedNodeError.
var ErrUnsupportedNode = errors.New("unsupported markdown node")

// UnsupportedNodeError reports a Markdown construct with no document
// tree equivalent.
type UnsupportedNodeError struct {
	// Kind is the goldmark node kind, e.g. "Image" or "HTMLBlock".
	Kind string

	// Line is the 1-based source line, or 0 when unknown.
	Line int
}

// Error implements the error interface.
func (e *UnsupportedNodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, ErrUnsupportedNode, e.Kind)
	}
	return fmt.Sprintf("%s: %s", ErrUnsupportedNode, e.Kind)
}

// Is reports whether target is ErrUnsupportedNode.
func (e *UnsupportedNodeError) Is(target error) bool {
	return target == ErrUnsupportedNode //nolint:errorlint // identity check against the sentinel
}

// Warning records a construct that was replaced by a placeholder leaf.
type Warning struct {
	// Kind is the goldmark node kind.
	Kind string

	// Line is the 1-based source line, or 0 when unknown.
	Line int

	// Message describes what happened.
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}
