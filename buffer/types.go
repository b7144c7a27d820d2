package buffer

import (
	"errors"
	"fmt"
)

// Caret is the single insertion point in the document.
// It sits between two characters, never on one.
type Caret struct {
	Line int
	Col  int
}

func (c Caret) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Col)
}

// Errors returned by buffer operations.
var (
	// ErrOutOfBounds is wrapped by every *RangeError.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrNewlineInLine is returned when a line payload contains '\n'.
	ErrNewlineInLine = errors.New("line text contains a newline")
)

// IndexKind names the coordinate a RangeError refers to.
type IndexKind string

const (
	IndexLine   IndexKind = "line"
	IndexColumn IndexKind = "column"
)

// RangeError reports an index outside its valid closed range [Min, Max].
type RangeError struct {
	Kind  IndexKind
	Index int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	kind := "Line"
	if e.Kind == IndexColumn {
		kind = "Column"
	}
	return fmt.Sprintf("%s index %d out of bounds [%d, %d]", kind, e.Index, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfBounds }

func checkRange(kind IndexKind, i, min, max int) error {
	if i < min || i > max {
		return &RangeError{Kind: kind, Index: i, Min: min, Max: max}
	}
	return nil
}
