// Package scanner implements the compiler's hand-written tokenizer: it
// turns a source buffer into a singly-linked Token stream ending in a
// single EOF token.
package scanner

import (
	"strings"

	"github.com/obscurecat64/quackcc/internal/diag"
	"github.com/obscurecat64/quackcc/lang/token"
)

// multiCharPuncs lists the punctuators that are more than one byte long.
// Order matters only in that each entry must be tried before falling back
// to single-byte punctuation.
var multiCharPuncs = [...]string{"==", "!=", "<=", ">="}

// Tokenize lexes ctx.Source in full and returns the head of the resulting
// Token stream. It never returns a partial stream: any lexical error calls
// ctx.ErrorAt and terminates the process.
func Tokenize(ctx *diag.Context) *token.Token {
	var s scanner
	s.ctx = ctx
	s.src = ctx.Source

	head := token.Token{}
	cur := &head
	for {
		next := s.next()
		cur.Next = next
		cur = next
		if next.Kind == token.EOF {
			break
		}
	}
	return head.Next
}

// scanner holds the mutable cursor over the source buffer. It has no
// exported surface: callers only ever see the Token stream Tokenize
// returns.
type scanner struct {
	ctx *diag.Context
	src string
	off int // byte offset of the next unread byte
}

func (s *scanner) eof() bool { return s.off >= len(s.src) }

func (s *scanner) peekByte() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.off]
}

func (s *scanner) skipSpace() {
	for !s.eof() && isASCIISpace(s.src[s.off]) {
		s.off++
	}
}

// next scans and returns exactly one token, per the algorithm in spec.md
// §4.2.
func (s *scanner) next() *token.Token {
	s.skipSpace()

	if s.eof() {
		return &token.Token{Kind: token.EOF, Offset: s.off, Len: 1}
	}

	start := s.off
	c := s.src[start]

	if isASCIIDigit(c) {
		return s.scanNumber(start)
	}

	if punc := s.matchPunc(); punc != "" {
		s.off += len(punc)
		return &token.Token{Kind: token.PUNC, Offset: start, Len: len(punc)}
	}

	if kwLen := s.matchKeyword(); kwLen > 0 {
		s.off += kwLen
		return &token.Token{Kind: token.KEYWORD, Offset: start, Len: kwLen}
	}

	if isIdentStart(c) {
		for !s.eof() && isIdentCont(s.src[s.off]) {
			s.off++
		}
		return &token.Token{Kind: token.IDENT, Offset: start, Len: s.off - start}
	}

	s.ctx.ErrorAt(start, "invalid token")
	panic("unreachable")
}

// scanNumber consumes the longest run of decimal digits starting at start,
// parses it as an unsigned-long the way the original does, and truncates
// the result to a 32-bit signed value.
func (s *scanner) scanNumber(start int) *token.Token {
	for !s.eof() && isASCIIDigit(s.src[s.off]) {
		s.off++
	}
	lexeme := s.src[start:s.off]

	var uval uint64
	for i := 0; i < len(lexeme); i++ {
		uval = uval*10 + uint64(lexeme[i]-'0')
	}
	val := int64(int32(uval))

	return &token.Token{Kind: token.NUM, Val: val, Offset: start, Len: s.off - start}
}

// matchPunc tries the two-byte punctuators first, then falls back to any
// single ASCII punctuation byte. It returns "" if the current byte is not
// punctuation at all.
func (s *scanner) matchPunc() string {
	rest := s.src[s.off:]
	for _, p := range multiCharPuncs {
		if strings.HasPrefix(rest, p) {
			return p
		}
	}
	if isASCIIPunct(s.peekByte()) {
		return rest[:1]
	}
	return ""
}

// matchKeyword returns the byte length of the keyword starting at the
// scanner's current offset, or 0 if none matches. A prefix match is only
// accepted when the byte immediately following it is not an identifier
// continuation byte — otherwise "return_x" would lex as "return" + "_x"
// (spec.md §4.2 step 5).
func (s *scanner) matchKeyword() int {
	rest := s.src[s.off:]
	for _, kw := range token.Keywords {
		if !strings.HasPrefix(rest, kw) {
			continue
		}
		if len(rest) > len(kw) && isIdentCont(rest[len(kw)]) {
			continue
		}
		return len(kw)
	}
	return 0
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool { return isASCIIAlpha(c) || c == '_' }

func isIdentCont(c byte) bool { return isIdentStart(c) || isASCIIDigit(c) }

// isASCIIPunct mirrors C's ispunct: any printable ASCII byte that is
// neither a letter, a digit, nor a space.
func isASCIIPunct(c byte) bool {
	return c >= 0x21 && c <= 0x7e && !isASCIIAlpha(c) && !isASCIIDigit(c)
}
