package parse

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.crotchet.dev/pkg/diag"
)

func tok(typ TokenType, text string, from, to int) Token {
	return Token{typ, text, 0, diag.Ranging{From: from, To: to}}
}

func num(text string, f float64, from, to int) Token {
	return Token{NumberToken, text, f, diag.Ranging{From: from, To: to}}
}

var tokenizeTests = []struct {
	name string
	code string
	want []Token
}{
	{
		name: "simple form",
		code: "[+ 1 2]",
		want: []Token{
			tok(LBracketToken, "[", 0, 1),
			tok(SymbolToken, "+", 1, 2),
			num("1", 1, 3, 4),
			num("2", 2, 5, 6),
			tok(RBracketToken, "]", 6, 7),
		},
	},
	{
		name: "string literals keep inner spaces",
		code: `[puts "hello " "world!"]`,
		want: []Token{
			tok(LBracketToken, "[", 0, 1),
			tok(SymbolToken, "puts", 1, 5),
			tok(StringToken, "hello ", 6, 14),
			tok(StringToken, "world!", 15, 23),
			tok(RBracketToken, "]", 23, 24),
		},
	},
	{
		name: "brackets need no surrounding spaces",
		code: "[[let r 10]]",
		want: []Token{
			tok(LBracketToken, "[", 0, 1),
			tok(LBracketToken, "[", 1, 2),
			tok(SymbolToken, "let", 2, 5),
			tok(SymbolToken, "r", 6, 7),
			num("10", 10, 8, 10),
			tok(RBracketToken, "]", 10, 11),
			tok(RBracketToken, "]", 11, 12),
		},
	},
	{
		name: "comments are stripped",
		code: "; leading comment\n[x] ; trailing [comment]\n3.14",
		want: []Token{
			tok(LBracketToken, "[", 18, 19),
			tok(SymbolToken, "x", 19, 20),
			tok(RBracketToken, "]", 20, 21),
			num("3.14", 3.14, 43, 47),
		},
	},
	{
		name: "semicolon inside string is not a comment",
		code: `"a;b"`,
		want: []Token{tok(StringToken, "a;b", 0, 5)},
	},
	{
		name: "semicolon terminates a word",
		code: "abc;def",
		want: []Token{tok(SymbolToken, "abc", 0, 3)},
	},
	{
		name: "numeric forms",
		code: "-2.5 1e3 1e400 .5",
		want: []Token{
			num("-2.5", -2.5, 0, 4),
			num("1e3", 1000, 5, 8),
			num("1e400", math.Inf(1), 9, 14),
			num(".5", 0.5, 15, 17),
		},
	},
	{
		name: "operators and words that are not numbers are symbols",
		code: "<= != - 1a inf NaN 0x10",
		want: []Token{
			tok(SymbolToken, "<=", 0, 2),
			tok(SymbolToken, "!=", 3, 5),
			tok(SymbolToken, "-", 6, 7),
			tok(SymbolToken, "1a", 8, 10),
			tok(SymbolToken, "inf", 11, 14),
			tok(SymbolToken, "NaN", 15, 18),
			tok(SymbolToken, "0x10", 19, 23),
		},
	},
	{
		name: "empty source",
		code: "  \n ; only a comment",
		want: nil,
	},
}

func TestTokenize(t *testing.T) {
	for _, test := range tokenizeTests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Tokenize(Source{Name: "[test]", Code: test.code})
			if err != nil {
				t.Fatalf("got error %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(Source{Name: "[test]", Code: `[print "abc]`})
	e := UnpackError(err)
	if e == nil {
		t.Fatalf("got error %v, want *Error", err)
	}
	if e.Message() != "string not terminated" {
		t.Errorf("got message %q", e.Message())
	}
	if !e.Partial {
		t.Errorf("unterminated string should be a partial error")
	}
	if r := e.Range(); r != (diag.Ranging{From: 7, To: 12}) {
		t.Errorf("got range %v", r)
	}
}
