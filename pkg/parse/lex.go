package parse

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"src.crotchet.dev/pkg/diag"
)

// TokenType is the type of a Token.
type TokenType int

// Possible values of TokenType.
const (
	NumberToken TokenType = iota
	SymbolToken
	LBracketToken
	RBracketToken
	StringToken
)

var tokenTypeNames = [...]string{
	NumberToken:   "number",
	SymbolToken:   "symbol",
	LBracketToken: "'['",
	RBracketToken: "']'",
	StringToken:   "string",
}

func (t TokenType) String() string { return tokenTypeNames[t] }

// Token is a lexical token.
type Token struct {
	Type TokenType
	// Text is the source text for symbols, numbers and brackets, and the
	// content between the quotes for strings.
	Text string
	// Num is the value of a NumberToken.
	Num float64
	diag.Ranging
}

var errStringUnterminated = errors.New("string not terminated")

// Tokenize splits the source into tokens. Comments start with ';' outside
// string literals and extend to the end of the line.
//
// Words that can be parsed as a float64 become NumberTokens; all other words
// become SymbolTokens. String literals have no escape sequences and may span
// lines.
//
// The returned error, if not nil, has type *Error.
func Tokenize(src Source) ([]Token, error) {
	lx := &lexer{src: src}
	lx.run()
	if lx.err != nil {
		return lx.tokens, lx.err
	}
	return lx.tokens, nil
}

type lexer struct {
	src    Source
	pos    int
	tokens []Token
	err    *Error
}

func (lx *lexer) run() {
	code := lx.src.Code
	for lx.pos < len(code) {
		r, size := utf8.DecodeRuneInString(code[lx.pos:])
		switch {
		case unicode.IsSpace(r):
			lx.pos += size
		case r == ';':
			if i := strings.IndexByte(code[lx.pos:], '\n'); i == -1 {
				lx.pos = len(code)
			} else {
				lx.pos += i + 1
			}
		case r == '[':
			lx.emit(LBracketToken, "[", lx.pos, lx.pos+1)
			lx.pos++
		case r == ']':
			lx.emit(RBracketToken, "]", lx.pos, lx.pos+1)
			lx.pos++
		case r == '"':
			if !lx.lexString() {
				return
			}
		default:
			lx.lexWord()
		}
	}
}

func (lx *lexer) lexString() bool {
	code := lx.src.Code
	begin := lx.pos
	end := strings.IndexByte(code[begin+1:], '"')
	if end == -1 {
		lx.err = newError(lx.src, errStringUnterminated,
			diag.Ranging{From: begin, To: len(code)}, true)
		lx.pos = len(code)
		return false
	}
	end += begin + 1
	lx.emit(StringToken, code[begin+1:end], begin, end+1)
	lx.pos = end + 1
	return true
}

func (lx *lexer) lexWord() {
	code := lx.src.Code
	begin := lx.pos
	for lx.pos < len(code) {
		r, size := utf8.DecodeRuneInString(code[lx.pos:])
		if unicode.IsSpace(r) || r == '[' || r == ']' || r == '"' || r == ';' {
			break
		}
		lx.pos += size
	}
	word := code[begin:lx.pos]
	if f, ok := parseNum(word); ok {
		lx.tokens = append(lx.tokens, Token{NumberToken, word, f,
			diag.Ranging{From: begin, To: lx.pos}})
		return
	}
	lx.emit(SymbolToken, word, begin, lx.pos)
}

func (lx *lexer) emit(typ TokenType, text string, from, to int) {
	lx.tokens = append(lx.tokens, Token{typ, text, 0,
		diag.Ranging{From: from, To: to}})
}

// Parses a word as a decimal number. Out-of-range literals become infinities
// or zeros instead of failing. Words like "inf", "nan" and "0x10" are not
// numbers.
func parseNum(word string) (float64, bool) {
	if !looksDecimal(word) {
		return 0, false
	}
	f, err := strconv.ParseFloat(word, 64)
	if err == nil {
		return f, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return f, true
	}
	return 0, false
}

func looksDecimal(word string) bool {
	s := strings.TrimLeft(word, "+-")
	if len(word)-len(s) > 1 {
		return false
	}
	s = strings.TrimPrefix(s, ".")
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	return !strings.ContainsAny(word, "xXpP_")
}
