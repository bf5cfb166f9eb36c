package lexer

import (
	"errors"
	"fmt"

	"github.com/arnavsurve/intrus/internal/compiler/token"
)

// ErrMalformedNumeral is the fatal lexing failure: a run that starts like a
// number but cannot be converted. Lexing stops at the first one.
var ErrMalformedNumeral = errors.New("malformed numeral")

// NumeralError describes the numeral that stopped the lexer.
type NumeralError struct {
	Text string
	Pos  token.Pos
	Err  error // conversion failure, may be nil
}

func (e *NumeralError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s %q", e.Pos, ErrMalformedNumeral, e.Text)
	}
	return fmt.Sprintf("%s: %s %q: %v", e.Pos, ErrMalformedNumeral, e.Text, e.Err)
}

func (e *NumeralError) Unwrap() error { return e.Err }

func (e *NumeralError) Is(target error) bool { return target == ErrMalformedNumeral }
