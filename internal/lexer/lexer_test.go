package lexer

import (
	"errors"
	"strings"
	"testing"

	"minic/internal/token"
)

func TestLexer_TourProgram(t *testing.T) {
	input := `Int main() {
    Return 0;
}`

	tests := []struct {
		typ token.Type
		lit string
	}{
		{token.INT, "Int"},
		{token.IDENT, "main"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},

		{token.RETURN, "Return"},
		{token.INTEGER, "0"},
		{token.SEMICOLON, ";"},

		{token.RBRACE, "}"},
	}

	toks, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("wrong token count. expected=%d got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Type != tt.typ {
			t.Fatalf("tests[%d] - wrong type. expected=%q got=%q (lit=%q)", i, tt.typ, toks[i].Type, toks[i].Literal)
		}
		if toks[i].Literal != tt.lit {
			t.Fatalf("tests[%d] - wrong literal. expected=%q got=%q (type=%q)", i, tt.lit, toks[i].Literal, toks[i].Type)
		}
	}
}

func TestLexer_PunctuationOnly(t *testing.T) {
	input := " { } ( ) ; \t{}();"

	types := []token.Type{
		token.LBRACE, token.RBRACE, token.LPAREN, token.RPAREN, token.SEMICOLON,
		token.LBRACE, token.RBRACE, token.LPAREN, token.RPAREN, token.SEMICOLON,
	}

	toks, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) != len(types) {
		t.Fatalf("wrong token count. expected=%d got=%d", len(types), len(toks))
	}
	for i, tt := range types {
		if toks[i].Type != tt {
			t.Fatalf("tests[%d] - wrong type. expected=%q got=%q", i, tt, toks[i].Type)
		}
	}
}

func TestLexer_WhitespaceOnly(t *testing.T) {
	for _, input := range []string{"", " ", " \t ", "\n\n", "  \n\t\n  ", "\v", "\f", " \v\f\r "} {
		toks, err := TokenizeString(input)
		if err != nil {
			t.Fatalf("tokenize error for %q: %v", input, err)
		}
		if len(toks) != 0 {
			t.Fatalf("expected no tokens for %q, got %+v", input, toks)
		}
	}
}

func TestLexer_VerticalWhitespaceSeparates(t *testing.T) {
	for _, input := range []string{"Return\v0;", "Return\f0;"} {
		tests := []struct {
			typ token.Type
			lit string
		}{
			{token.RETURN, "Return"},
			{token.INTEGER, "0"},
			{token.SEMICOLON, ";"},
		}

		toks, err := TokenizeString(input)
		if err != nil {
			t.Fatalf("tokenize error for %q: %v", input, err)
		}
		if len(toks) != len(tests) {
			t.Fatalf("wrong token count for %q. expected=%d got=%d", input, len(tests), len(toks))
		}
		for i, tt := range tests {
			if toks[i].Type != tt.typ {
				t.Fatalf("tests[%d] - wrong type for %q. expected=%q got=%q", i, input, tt.typ, toks[i].Type)
			}
			if toks[i].Literal != tt.lit {
				t.Fatalf("tests[%d] - wrong literal for %q. expected=%q got=%q", i, input, tt.lit, toks[i].Literal)
			}
		}
	}
}

func TestLexer_LongLine(t *testing.T) {
	// Well past bufio.Scanner's default 64 KiB token limit; line length
	// must not be capped.
	input := strings.Repeat(" ", 70*1024) + "Return 0;"

	tests := []struct {
		typ token.Type
		lit string
	}{
		{token.RETURN, "Return"},
		{token.INTEGER, "0"},
		{token.SEMICOLON, ";"},
	}

	toks, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("wrong token count. expected=%d got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Type != tt.typ {
			t.Fatalf("tests[%d] - wrong type. expected=%q got=%q", i, tt.typ, toks[i].Type)
		}
		if toks[i].Literal != tt.lit {
			t.Fatalf("tests[%d] - wrong literal. expected=%q got=%q", i, tt.lit, toks[i].Literal)
		}
	}
	if toks[0].Col != 70*1024+1 {
		t.Fatalf("wrong column. expected=%d got=%d", 70*1024+1, toks[0].Col)
	}
}

func TestLexer_KeywordsAreExactCase(t *testing.T) {
	input := "int x;"

	tests := []struct {
		typ token.Type
		lit string
	}{
		{token.IDENT, "int"},
		{token.IDENT, "x"},
		{token.SEMICOLON, ";"},
	}

	toks, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("wrong token count. expected=%d got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Type != tt.typ {
			t.Fatalf("tests[%d] - wrong type. expected=%q got=%q (lit=%q)", i, tt.typ, toks[i].Type, toks[i].Literal)
		}
		if toks[i].Literal != tt.lit {
			t.Fatalf("tests[%d] - wrong literal. expected=%q got=%q", i, tt.lit, toks[i].Literal)
		}
	}
}

func TestLexer_SingleLexemes(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Type
		lit   string
	}{
		{"Int", token.INT, "Int"},
		{"Return", token.RETURN, "Return"},
		{"foo", token.IDENT, "foo"},
		{"_bar9", token.IDENT, "_bar9"},
		{"Integer", token.IDENT, "Integer"},
	}

	for i, tt := range tests {
		toks, err := TokenizeString(tt.input)
		if err != nil {
			t.Fatalf("tests[%d] - tokenize error: %v", i, err)
		}
		if len(toks) != 1 {
			t.Fatalf("tests[%d] - wrong token count. expected=1 got=%d", i, len(toks))
		}
		if toks[0].Type != tt.typ {
			t.Fatalf("tests[%d] - wrong type. expected=%q got=%q", i, tt.typ, toks[0].Type)
		}
		if toks[0].Literal != tt.lit {
			t.Fatalf("tests[%d] - wrong literal. expected=%q got=%q", i, tt.lit, toks[0].Literal)
		}
	}
}

func TestLexer_LineSplitLexeme(t *testing.T) {
	input := "fo\no"

	toks, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("wrong token count. expected=2 got=%d", len(toks))
	}
	if toks[0].Type != token.IDENT || toks[0].Literal != "fo" {
		t.Fatalf("bad first token: %q %q", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != token.IDENT || toks[1].Literal != "o" {
		t.Fatalf("bad second token: %q %q", toks[1].Type, toks[1].Literal)
	}
	if toks[0].Line != 1 || toks[1].Line != 2 {
		t.Fatalf("bad lines: %d %d", toks[0].Line, toks[1].Line)
	}
}

func TestLexer_Positions(t *testing.T) {
	input := "Int abc;\n  Return 42;"

	tests := []struct {
		typ  token.Type
		line int
		col  int
	}{
		{token.INT, 1, 1},
		{token.IDENT, 1, 5},
		{token.SEMICOLON, 1, 8},
		{token.RETURN, 2, 3},
		{token.INTEGER, 2, 10},
		{token.SEMICOLON, 2, 12},
	}

	toks, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("wrong token count. expected=%d got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Type != tt.typ {
			t.Fatalf("tests[%d] - wrong type. expected=%q got=%q", i, tt.typ, toks[i].Type)
		}
		if toks[i].Line != tt.line || toks[i].Col != tt.col {
			t.Fatalf("tests[%d] - wrong position. expected=%d:%d got=%d:%d", i, tt.line, tt.col, toks[i].Line, toks[i].Col)
		}
	}
}

func TestLexer_Deterministic(t *testing.T) {
	input := "Int main() { Return 0x2a; }"

	first, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	second, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tokens[%d] differ: %+v vs %+v", i, first[i], second[i])
		}
	}
}

type failingReader struct{}

var errBoom = errors.New("boom")

func (failingReader) Read([]byte) (int, error) { return 0, errBoom }

func TestLexer_ReadErrorPropagates(t *testing.T) {
	toks, err := New().Tokenize(failingReader{})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected read error, got %v", err)
	}
	if toks != nil {
		t.Fatalf("expected no tokens, got %d", len(toks))
	}

	var lexErr *Error
	if errors.As(err, &lexErr) {
		t.Fatalf("read failure must not surface as a lexical error")
	}
}

func TestLexer_TrailingLexemeWithoutNewline(t *testing.T) {
	toks, err := New().Tokenize(strings.NewReader("Return"))
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if len(toks) != 1 || toks[0].Type != token.RETURN {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}
