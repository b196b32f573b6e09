package nox

import (
	"fmt"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Tag structure
	DOLLAR TokenType = iota // "$", introduces a selector trait-tag
	COLON                   // ":", end-of-tag marker
	PERIOD                  // ".", trait separator
	BANG                    // "!", reserved

	// Grouping
	LROUND  // "(" in whole-input scans
	RROUND  // ")"
	LSQUARE // "[" in line scans
	RSQUARE // "]"

	// Arithmetic
	DIV  // "/"
	MULT // "*"
	MINUS
	PLUS
	MOD

	// Assignment / relational
	ASSIGN  // "="
	LESS    // "<"
	GREATER // ">"

	// Two-char composites
	EQ         // "=="
	LESS_EQ    // "<="
	GREATER_EQ // ">="
	NEQ        // "!="

	// Literals & identifiers
	STRING
	IDENT
	NUMBER // whole-input scans only

	// Block structure (whole-input scans only)
	INDENT
	DEDENT
)

var tokenTypeNames = map[TokenType]string{
	DOLLAR:     "DOLLAR",
	COLON:      "COLON",
	PERIOD:     "PERIOD",
	BANG:       "BANG",
	LROUND:     "LROUND",
	RROUND:     "RROUND",
	LSQUARE:    "LSQUARE",
	RSQUARE:    "RSQUARE",
	DIV:        "DIV",
	MULT:       "MULT",
	MINUS:      "MINUS",
	PLUS:       "PLUS",
	MOD:        "MOD",
	ASSIGN:     "ASSIGN",
	LESS:       "LESS",
	GREATER:    "GREATER",
	EQ:         "EQ",
	LESS_EQ:    "LESS_EQ",
	GREATER_EQ: "GREATER_EQ",
	NEQ:        "NEQ",
	STRING:     "STRING",
	IDENT:      "IDENT",
	NUMBER:     "NUMBER",
	INDENT:     "INDENT",
	DEDENT:     "DEDENT",
}

func (tt TokenType) String() string {
	if s, ok := tokenTypeNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// opTexts holds the surface form of every operator token.
var opTexts = map[TokenType]string{
	DOLLAR:     "$",
	COLON:      ":",
	PERIOD:     ".",
	BANG:       "!",
	LROUND:     "(",
	RROUND:     ")",
	LSQUARE:    "[",
	RSQUARE:    "]",
	DIV:        "/",
	MULT:       "*",
	MINUS:      "-",
	PLUS:       "+",
	MOD:        "%",
	ASSIGN:     "=",
	LESS:       "<",
	GREATER:    ">",
	EQ:         "==",
	LESS_EQ:    "<=",
	GREATER_EQ: ">=",
	NEQ:        "!=",
}

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // decoded payload for STRING/IDENT, float64 for NUMBER
	Line    int
	Col     int
}

// text returns the decoded payload for word-like tokens, falling back to the
// raw lexeme.
func (t Token) text() string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return t.Lexeme
}

// Equal reports whether two tokens have the same type and payload.
// Source positions are ignored.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case STRING, IDENT:
		return t.text() == o.text()
	case NUMBER:
		return t.Lexeme == o.Lexeme
	default:
		return true
	}
}

// String renders the token in its canonical .nox surface form. Block-structure
// tokens have no inline form and render as placeholders; the renderer treats
// them structurally instead.
func (t Token) String() string {
	switch t.Type {
	case STRING:
		return quoteLiteral(t.text())
	case IDENT:
		return t.text()
	case NUMBER:
		if t.Lexeme != "" {
			return t.Lexeme
		}
		return fmt.Sprintf("%v", t.Literal)
	case INDENT:
		return "<indent>"
	case DEDENT:
		return "<dedent>"
	default:
		if s, ok := opTexts[t.Type]; ok {
			return s
		}
		return t.Lexeme
	}
}

// quoteLiteral re-quotes a decoded string payload, escaping inner quotes.
func quoteLiteral(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
