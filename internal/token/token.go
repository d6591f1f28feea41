package token

type Type string

type Token struct {
	Type    Type
	Literal string
	// Value holds the decoded magnitude for INTEGER tokens; zero otherwise.
	Value uint64
	Line  int
	Col   int
}

const (
	// Identifiers + literals
	IDENT   Type = "IDENT"
	INTEGER Type = "INTEGER"

	// Keywords
	INT    Type = "INT"
	RETURN Type = "RETURN"

	// Punctuation
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	SEMICOLON Type = ";"
)

// Keyword matching is exact-case: "int" is an identifier, "Int" is not.
var keywords = map[string]Type{
	"Int":    INT,
	"Return": RETURN,
}

func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

var puncts = map[byte]Type{
	'{': LBRACE,
	'}': RBRACE,
	'(': LPAREN,
	')': RPAREN,
	';': SEMICOLON,
}

// LookupPunct reports the token type for one of the five structural
// characters. Any byte outside that set returns false.
func LookupPunct(ch byte) (Type, bool) {
	tok, ok := puncts[ch]
	return tok, ok
}
