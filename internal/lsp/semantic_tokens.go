package lsp

import "minic/internal/lexer"

// SemanticTokensForText returns unencoded semantic tokens for the given
// source text. A source that fails to lex yields no tokens at all; the
// failure surfaces through DiagnosticsForText instead.
func SemanticTokensForText(text string) []SemTok {
	toks, err := lexer.TokenizeString(text)
	if err != nil {
		return nil
	}

	sem := make([]SemTok, 0, len(toks))
	for _, tok := range toks {
		tt, ok := Classify(tok)
		if !ok {
			continue
		}
		length := len(tok.Literal)
		if length == 0 {
			continue
		}
		sem = append(sem, SemTok{
			Line:   tok.Line,
			Col:    tok.Col,
			Length: length,
			Type:   tt,
		})
	}
	return sem
}
