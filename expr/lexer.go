// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// tokenKind enumerates lexical classes.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokComma
)

// token is a single lexeme with its byte offset in the source.
type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lexer produces tokens on demand so that the first problem in reading
// order is the one reported.
type lexer struct {
	src string
	pos int
}

// two-character operators, checked before single characters.
var twoCharOps = map[string]bool{
	"**": true, "<=": true, ">=": true, "==": true, "!=": true,
}

// single-character operators.
var oneCharOps = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '^': true, '<': true, '>': true,
}

func (l *lexer) next() (token, error) {
	// skip whitespace
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case isDigit(c) || (c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])):
		return l.number()
	case isIdentStart(c):
		for l.pos < len(l.src) && (isIdentPart(l.src[l.pos]) || l.src[l.pos] == '.') {
			l.pos++
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], pos: start}, nil
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, text: ",", pos: start}, nil
	}

	if l.pos+1 < len(l.src) && twoCharOps[l.src[l.pos:l.pos+2]] {
		l.pos += 2
		return token{kind: tokOp, text: l.src[start:l.pos], pos: start}, nil
	}
	if oneCharOps[c] {
		l.pos++
		return token{kind: tokOp, text: string(c), pos: start}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return token{}, parseErrorf(start, "unexpected character %q", r)
}

// number scans digits, an optional fraction and an optional exponent.
func (l *lexer) number() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		save := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
			// "2e" or "2*e": let the e belong to the next token only when
			// it cannot start an exponent at all.
			if save+1 < len(l.src) && (l.src[save+1] == '+' || l.src[save+1] == '-') {
				return token{}, parseErrorf(start, "malformed number %q", l.src[start:l.pos])
			}
			l.pos = save
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	text := l.src[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, parseErrorf(start, "malformed number %q", text)
	}

	return token{kind: tokNumber, text: text, num: v, pos: start}, nil
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
