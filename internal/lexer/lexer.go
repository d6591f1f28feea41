package lexer

import (
	"bufio"
	"io"
	"strings"

	"minic/internal/numlit"
	"minic/internal/token"
)

// stateKind selects the scanning mode between characters. stateLeadingZero
// is its own variant so "just consumed a leading 0, base undetermined" stays
// distinct from a decimal literal whose value is currently zero.
type stateKind int

const (
	stateIdle stateKind = iota
	stateIdent
	stateLeadingZero
	stateInteger
)

type state struct {
	kind  stateKind
	col   int    // 1-based column of the lexeme's first character
	raw   []byte // lexeme text as consumed, radix prefix included
	value uint64 // integer magnitude, stateLeadingZero/stateInteger
	base  int    // radix, stateInteger only
}

// Lexer scans a line-oriented stream into tokens. The state never survives
// a line boundary: any pending lexeme is flushed at end of line, so a
// literal split across two lines becomes two tokens.
type Lexer struct {
	st     state
	tokens []token.Token
	line   int // 1-based
}

func New() *Lexer {
	return &Lexer{st: state{kind: stateIdle}}
}

// Tokenize consumes the whole stream and returns the token sequence in
// source order. On the first invalid character it returns a *Error and no
// tokens; read failures from r propagate unchanged.
func (l *Lexer) Tokenize(r io.Reader) ([]token.Token, error) {
	// bufio.Reader instead of bufio.Scanner: lines have no length cap.
	br := bufio.NewReader(r)
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, rerr
		}
		if line != "" || rerr == nil {
			l.line++
			line = strings.TrimSuffix(line, "\n")
			for i := 0; i < len(line); i++ {
				if err := l.consume(line[i], i+1); err != nil {
					return nil, err
				}
			}
			l.flush()
		}
		if rerr == io.EOF {
			return l.tokens, nil
		}
	}
}

// TokenizeString lexes an in-memory source.
func TokenizeString(src string) ([]token.Token, error) {
	return New().Tokenize(strings.NewReader(src))
}

func (l *Lexer) consume(ch byte, col int) error {
	switch l.st.kind {
	case stateIdle:
		switch {
		case isPunct(ch):
			return l.emitPunct(ch, col)
		case ch == '0':
			l.st = state{kind: stateLeadingZero, col: col, raw: []byte{ch}}
		case ch >= '1' && ch <= '9':
			l.st = state{kind: stateInteger, col: col, raw: []byte{ch}, value: uint64(ch - '0'), base: 10}
		case isIdentStart(ch):
			l.st = state{kind: stateIdent, col: col, raw: []byte{ch}}
		case isSpace(ch):
		default:
			return l.errAt(col, ch, ReasonUnknown)
		}

	case stateIdent:
		switch {
		case isPunct(ch):
			l.flush()
			return l.emitPunct(ch, col)
		case isIdentPart(ch):
			l.st.raw = append(l.st.raw, ch)
		case isSpace(ch):
			l.flush()
		default:
			return l.errAt(col, ch, ReasonUnknown)
		}

	case stateLeadingZero:
		switch {
		case isPunct(ch):
			l.flush()
			return l.emitPunct(ch, col)
		case isSpace(ch):
			l.flush()
		case ch >= '0' && ch <= '9':
			l.st.kind = stateInteger
			l.st.base = 10
			l.st.value = uint64(ch - '0')
			l.st.raw = append(l.st.raw, ch)
		default:
			if base, ok := numlit.PrefixBase(ch); ok {
				l.st.kind = stateInteger
				l.st.base = base
				l.st.raw = append(l.st.raw, ch)
				break
			}
			if isLetter(ch) {
				return l.errAt(col, ch, ReasonUnexpected)
			}
			return l.errAt(col, ch, ReasonUnknown)
		}

	case stateInteger:
		switch {
		case isPunct(ch):
			l.flush()
			return l.emitPunct(ch, col)
		case isSpace(ch):
			l.flush()
		default:
			// numlit.DigitValue is the authority on digit range: a digit
			// at or above the base fails here, not in the accumulation.
			if d, ok := numlit.DigitValue(ch, l.st.base); ok {
				l.st.value = l.st.value*uint64(l.st.base) + d
				l.st.raw = append(l.st.raw, ch)
				break
			}
			if isLetter(ch) || (ch >= '0' && ch <= '9') {
				return l.errAt(col, ch, ReasonUnexpected)
			}
			return l.errAt(col, ch, ReasonUnknown)
		}
	}
	return nil
}

// flush emits any pending multi-character lexeme and resets to idle.
func (l *Lexer) flush() {
	switch l.st.kind {
	case stateIdent:
		lit := string(l.st.raw)
		l.tokens = append(l.tokens, token.Token{
			Type:    token.LookupIdent(lit),
			Literal: lit,
			Line:    l.line,
			Col:     l.st.col,
		})
	case stateLeadingZero, stateInteger:
		l.tokens = append(l.tokens, token.Token{
			Type:    token.INTEGER,
			Literal: string(l.st.raw),
			Value:   l.st.value,
			Line:    l.line,
			Col:     l.st.col,
		})
	}
	l.st = state{kind: stateIdle}
}

// emitPunct appends the punctuation token for ch. Call sites guard with
// isPunct, so the error path here guards against classifier misuse only.
func (l *Lexer) emitPunct(ch byte, col int) error {
	pt, ok := token.LookupPunct(ch)
	if !ok {
		return l.errAt(col, ch, ReasonUnexpected)
	}
	l.tokens = append(l.tokens, token.Token{
		Type:    pt,
		Literal: string(ch),
		Line:    l.line,
		Col:     col,
	})
	return nil
}

func (l *Lexer) errAt(col int, ch byte, reason string) error {
	return &Error{Line: l.line, Col: col, Ch: ch, Reason: reason}
}

func isPunct(ch byte) bool {
	_, ok := token.LookupPunct(ch)
	return ok
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentStart(ch byte) bool {
	return ch == '_' || isLetter(ch)
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
