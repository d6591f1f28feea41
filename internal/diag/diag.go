package diag

import "fmt"

// Range locates a diagnostic in the source. Positions are 1-based; Length
// is in bytes and covers at least the offending character.
type Range struct {
	Line   int
	Col    int
	Length int
}

// Diagnostic is a user-facing report tied to a source position. The lexer
// is the only producer, so every diagnostic is an error and carries a code.
type Diagnostic struct {
	Code    string
	Message string
	Range   Range
}

func (d Diagnostic) Format(path string) string {
	return fmt.Sprintf("%s:%d:%d: error %s: %s", path, d.Range.Line, d.Range.Col, d.Code, d.Message)
}
