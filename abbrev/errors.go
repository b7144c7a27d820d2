package abbrev

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAbbreviation is returned when there is nothing to expand.
	ErrNoAbbreviation = errors.New("no abbreviation")

	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("invalid abbreviation")
)

// SyntaxError reports where an abbreviation stopped making sense.
type SyntaxError struct {
	Abbr string
	Pos  int // rune offset into Abbr
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at char %d of %q", e.Msg, e.Pos+1, e.Abbr)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
