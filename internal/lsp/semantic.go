package lsp

import "minic/internal/token"

// semantic token type indices (must match legend order in server)
const (
	ttKeyword  = 0
	ttNumber   = 1
	ttVariable = 2
	ttOperator = 3
)

type SemTok struct {
	Line   int // 1-based
	Col    int // 1-based
	Length int
	Type   int
}

func Classify(tok token.Token) (int, bool) {
	switch tok.Type {
	case token.INT, token.RETURN:
		return ttKeyword, true
	case token.INTEGER:
		return ttNumber, true
	case token.IDENT:
		return ttVariable, true
	case token.LBRACE, token.RBRACE, token.LPAREN, token.RPAREN, token.SEMICOLON:
		return ttOperator, true
	}
	return 0, false
}
