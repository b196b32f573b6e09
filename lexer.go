// lexer.go: whole-input scanner for nox source
package nox

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner folds nox source text into a flat token stream. It resolves
// composite operators with one rune of lookahead, collects string and
// numeric literals, strips comments, and tracks indentation as INDENT
// and DEDENT tokens.
//
// The zero Scanner is not usable; construct with NewScanner.
type Scanner struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// indentation state; indentChar and step bind on the first
	// indented content line and hold for the rest of the input
	level      int
	indentChar rune
	step       int

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewScanner creates a scanner for the given source. Trailing whitespace
// is trimmed up front so end-of-input never looks like a line break.
func NewScanner(src string) *Scanner {
	return &Scanner{
		src:  strings.TrimRightFunc(src, unicode.IsSpace),
		line: 1,
		col:  0,
	}
}

func (s *Scanner) isAtEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) peek() (rune, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.cur:])
	return r, true
}

func (s *Scanner) advance() (rune, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.cur:])
	s.cur += size
	if r == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return r, true
}

func (s *Scanner) markStart() {
	s.start = s.cur
	s.tokStartLine = s.line
	s.tokStartCol = s.col
}

func (s *Scanner) rewindToStart() {
	s.cur = s.start
	s.line = s.tokStartLine
	s.col = s.tokStartCol
}

func (s *Scanner) addToken(tt TokenType, lit interface{}) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  s.src[s.start:s.cur],
		Literal: lit,
		Line:    s.tokStartLine,
		Col:     s.tokStartCol,
	}
	debugf("Pushing token: %s", tok)
	s.tokens = append(s.tokens, tok)
	s.start = s.cur
	return tok
}

// fail logs the error return in debug mode and hands it back unchanged.
func (s *Scanner) fail(e *ScanError) *ScanError {
	debugf("Returning error: %v", e)
	return e
}

// helpers

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWordStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ----- main scanner -----

// Scan tokenizes the entire source. On failure the partial token list is
// discarded and only the error is returned.
func (s *Scanner) Scan() ([]Token, error) {
	// The input behaves as if preceded by a synthetic newline, so the
	// indentation of the very first line is processed like any other.
	if err := s.handleLineBreak(); err != nil {
		return nil, err
	}

	for {
		s.markStart()
		ch, ok := s.advance()
		if !ok {
			break
		}

		switch ch {
		case '#':
			s.skipComment()
		case '\n':
			if err := s.handleLineBreak(); err != nil {
				return nil, err
			}
		case '\\':
			if _, ok := s.peek(); !ok {
				return nil, s.fail(&ScanError{
					Kind:     UnexpectedEndOfLine,
					Expected: "char after backslash",
					Line:     s.line,
					Col:      s.col,
				})
			}
			s.rewindToStart()
			if err := s.scanWord(); err != nil {
				return nil, err
			}
		case '\'', '"':
			s.rewindToStart()
			if err := s.scanString(); err != nil {
				return nil, err
			}
		case '$':
			s.addToken(DOLLAR, nil)
		case ':':
			s.addToken(COLON, nil)
		case '.':
			s.addToken(PERIOD, nil)
		case '(':
			s.addToken(LROUND, nil)
		case ')':
			s.addToken(RROUND, nil)
		case '/':
			s.addToken(DIV, nil)
		case '*':
			s.addToken(MULT, nil)
		case '-':
			s.addToken(MINUS, nil)
		case '+':
			s.addToken(PLUS, nil)
		case '%':
			s.addToken(MOD, nil)
		case '=':
			if r, ok := s.peek(); ok && r == '=' {
				s.advance()
				s.addToken(EQ, nil)
			} else {
				s.addToken(ASSIGN, nil)
			}
		case '<':
			if r, ok := s.peek(); ok && r == '=' {
				s.advance()
				s.addToken(LESS_EQ, nil)
			} else {
				s.addToken(LESS, nil)
			}
		case '>':
			if r, ok := s.peek(); ok && r == '=' {
				s.advance()
				s.addToken(GREATER_EQ, nil)
			} else {
				s.addToken(GREATER, nil)
			}
		case '!':
			if r, ok := s.peek(); ok && r == '=' {
				s.advance()
				s.addToken(NEQ, nil)
			} else {
				s.addToken(BANG, nil)
			}
		default:
			switch {
			case isDigit(ch):
				s.rewindToStart()
				s.scanNumber()
			case isWordStart(ch):
				s.rewindToStart()
				if err := s.scanWord(); err != nil {
					return nil, err
				}
			case unicode.IsSpace(ch):
				// separator between tokens
			default:
				return nil, s.fail(&ScanError{
					Kind: InvalidCharacter,
					Ch:   ch,
					Line: s.tokStartLine,
					Col:  s.tokStartCol,
				})
			}
		}
	}

	// close out any open blocks
	s.markStart()
	for s.level > 0 {
		s.level -= s.step
		s.addToken(DEDENT, nil)
	}

	if len(s.tokens) == 0 {
		return nil, s.fail(&ScanError{Kind: NoTokensPresent, Line: s.line, Col: s.col})
	}
	return s.tokens, nil
}

// ----- sub-scanners -----

// skipComment discards everything up to, but not including, the next
// newline. The caller has already consumed the '#'.
func (s *Scanner) skipComment() {
	for {
		r, ok := s.peek()
		if !ok || r == '\n' {
			return
		}
		s.advance()
	}
}

// scanWord reads an identifier run starting at the current token start.
// Backslashes escape the following rune into the word verbatim, so the
// decoded literal may differ from the raw lexeme.
func (s *Scanner) scanWord() error {
	var out []rune
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		if r == '\\' {
			s.advance()
			esc, ok := s.advance()
			if !ok {
				return s.fail(&ScanError{
					Kind:     UnexpectedEndOfLine,
					Expected: "char after backslash",
					Line:     s.line,
					Col:      s.col,
				})
			}
			out = append(out, esc)
			continue
		}
		if !isWordRune(r) {
			break
		}
		out = append(out, r)
		s.advance()
	}
	s.addToken(IDENT, string(out))
	return nil
}

// scanString reads a quoted literal starting at the current token start.
// Single and double quotes both delimit; a backslash escapes the next
// rune, including the delimiter itself.
func (s *Scanner) scanString() error {
	del, _ := s.advance()
	var out []rune
	for {
		ch, ok := s.advance()
		if !ok {
			return s.fail(&ScanError{
				Kind:    UnterminatedStringLiteral,
				Partial: string(out),
				Line:    s.tokStartLine,
				Col:     s.tokStartCol,
			})
		}
		if ch == del {
			s.addToken(STRING, string(out))
			return nil
		}
		if ch == '\\' {
			esc, ok := s.advance()
			if !ok {
				return s.fail(&ScanError{
					Kind:     UnexpectedEndOfLine,
					Expected: "char after backslash",
					Line:     s.line,
					Col:      s.col,
				})
			}
			out = append(out, esc)
			continue
		}
		out = append(out, ch)
	}
}

// scanNumber reads digits, then at most one '.' with optional further
// digits. A second '.' is left for the next dispatch, so "1..2" lexes as
// Number, Period, Number.
func (s *Scanner) scanNumber() {
	for {
		r, ok := s.peek()
		if !ok || !isDigit(r) {
			break
		}
		s.advance()
	}
	if r, ok := s.peek(); ok && r == '.' {
		s.advance()
		for {
			r, ok := s.peek()
			if !ok || !isDigit(r) {
				break
			}
			s.advance()
		}
	}
	lex := s.src[s.start:s.cur]
	val, _ := strconv.ParseFloat(lex, 64)
	s.addToken(NUMBER, val)
}

// ----- indentation -----

// handleLineBreak runs after each newline, and once before the first
// character of the input. It consumes the leading whitespace run of the
// next line and emits INDENT or DEDENT tokens as the level changes.
// Blank and comment-only lines leave the indentation state untouched.
func (s *Scanner) handleLineBreak() error {
	var w int
	var wsChar rune
	for {
		r, ok := s.peek()
		if !ok || r == '\n' || !unicode.IsSpace(r) {
			break
		}
		if w == 0 {
			wsChar = r
		} else if r != wsChar {
			return s.fail(&ScanError{
				Kind:   InconsistentWhitespace,
				Detail: "inconsistent leading whitespace characters",
				Line:   s.line,
				Col:    s.col,
			})
		}
		w++
		s.advance()
	}

	if r, ok := s.peek(); !ok || r == '\n' || r == '#' {
		return nil
	}

	if s.indentChar != 0 && w > 0 && wsChar != s.indentChar {
		return s.fail(&ScanError{
			Kind:   InconsistentWhitespace,
			Detail: "inconsistent leading whitespace characters",
			Line:   s.line,
			Col:    s.col,
		})
	}
	if s.step > 0 && w%s.step != 0 {
		return s.fail(&ScanError{
			Kind:   InconsistentWhitespace,
			Detail: "inconsistent leading whitespace count",
			Line:   s.line,
			Col:    s.col,
		})
	}

	s.markStart()
	switch {
	case w > s.level:
		if s.step == 0 {
			s.indentChar = wsChar
			s.step = w
		}
		s.level = w
		s.addToken(INDENT, nil)
	case w < s.level:
		for s.level > w {
			s.level -= s.step
			s.addToken(DEDENT, nil)
		}
	}
	return nil
}

// ParseString scans an entire input, trailing whitespace trimmed, and
// returns the flat token list.
func ParseString(src string) ([]Token, error) {
	return NewScanner(src).Scan()
}
