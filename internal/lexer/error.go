package lexer

import (
	"fmt"

	"minic/internal/diag"
)

const (
	// ReasonUnknown marks a byte no state can classify.
	ReasonUnknown = "unknown character"
	// ReasonUnexpected marks a byte that is classifiable but invalid where
	// it appeared: a digit out of range for the active base, a misplaced
	// radix prefix, or a stray letter inside a number.
	ReasonUnexpected = "unexpected character"
)

// Error is a lexical failure at a single source position. It aborts the
// whole Tokenize call; no tokens are returned alongside it.
type Error struct {
	Line   int
	Col    int
	Ch     byte
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %q", e.Line, e.Col, e.Reason, e.Ch)
}

func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Code:    "lex",
		Message: fmt.Sprintf("%s: %q", e.Reason, e.Ch),
		Range:   diag.Range{Line: e.Line, Col: e.Col, Length: 1},
	}
}
