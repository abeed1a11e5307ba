// Package token defines the lexical tokens produced by lang/scanner and
// consumed by lang/parser.
package token

import "fmt"

// Kind classifies a Token.
type Kind int8

const (
	NUM     Kind = iota // integer literal
	PUNC                // punctuation: operators, braces, etc.
	IDENT               // identifier
	KEYWORD             // reserved word
	EOF                 // end of input, always the last token
)

var kindNames = [...]string{
	NUM:     "number",
	PUNC:    "punctuation",
	IDENT:   "identifier",
	KEYWORD: "keyword",
	EOF:     "end of file",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("<invalid Kind %d>", int(k))
	}
	return kindNames[k]
}

// Keywords lists every reserved word, in no particular order. A maximal
// munch over this table happens before identifier recognition; see
// lang/scanner.
var Keywords = [...]string{"return", "if", "else", "for", "while", "int", "sizeof"}

// Token is one lexeme plus its location in the source buffer. Tokens are
// produced once by the scanner and never mutated afterwards; Next links
// them into a singly-linked stream terminated by a single EOF token.
type Token struct {
	Kind   Kind
	Val    int64 // only meaningful when Kind == NUM
	Offset int   // byte offset of the lexeme in the source buffer
	Len    int   // byte length of the lexeme
	Next   *Token
}

// Lexeme returns the token's source text, given the buffer it was scanned
// from.
func (t *Token) Lexeme(src string) string {
	return src[t.Offset : t.Offset+t.Len]
}

// Is reports whether t's lexeme equals s exactly (same length, same
// bytes) — the token-vs-literal equality test from the spec.
func (t *Token) Is(src, s string) bool {
	return t.Len == len(s) && t.Lexeme(src) == s
}
