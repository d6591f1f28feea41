package lsp

import (
	"errors"

	"minic/internal/diag"
	"minic/internal/lexer"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DiagnosticsForText lexes the document and reports the failure, if any.
// Read errors cannot happen for in-memory text, so any error is lexical.
func DiagnosticsForText(text string) []diag.Diagnostic {
	_, err := lexer.TokenizeString(text)
	if err == nil {
		return nil
	}

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return []diag.Diagnostic{lexErr.Diagnostic()}
	}
	return []diag.Diagnostic{{
		Code:    "lex",
		Message: err.Error(),
		Range:   diag.Range{Line: 1, Col: 1, Length: 1},
	}}
}

// LSP positions are 0-based.
func toLspPosition(line1, col1 int) protocol.Position {
	line := uint32(0)
	char := uint32(0)
	if line1 > 0 {
		line = uint32(line1 - 1)
	}
	if col1 > 0 {
		char = uint32(col1 - 1)
	}
	return protocol.Position{Line: line, Character: char}
}

// ToLspDiagnostics converts lexical diagnostics to protocol ones. minic
// diagnostics are always errors.
func ToLspDiagnostics(ds []diag.Diagnostic) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError

	out := make([]protocol.Diagnostic, 0, len(ds))
	for _, d := range ds {
		start := toLspPosition(d.Range.Line, d.Range.Col)
		end := start
		if d.Range.Length > 0 {
			end.Character = start.Character + uint32(d.Range.Length)
		} else {
			end.Character = start.Character + 1
		}

		code := protocol.IntegerOrString{Value: d.Code}
		out = append(out, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: &severity,
			Source:   ptrString("minic"),
			Message:  d.Message,
			Code:     &code,
		})
	}
	return out
}

func ptrString(s string) *string { return &s }
