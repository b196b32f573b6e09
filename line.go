// line.go: per-line scanning into token lines
package nox

import (
	"strings"
	"unicode"
)

// TokenLine is one logical line of input: its leading whitespace count
// and the tokens scanned from it.
type TokenLine struct {
	LeadingWhitespace int
	Members           []Token
}

// ExprLine is one logical line after reduction.
type ExprLine struct {
	LeadingWhitespace int
	Members           []Expr
}

// Equal reports element-wise equality, leading whitespace included.
func (l TokenLine) Equal(o TokenLine) bool {
	if l.LeadingWhitespace != o.LeadingWhitespace || len(l.Members) != len(o.Members) {
		return false
	}
	for i := range l.Members {
		if !l.Members[i].Equal(o.Members[i]) {
			return false
		}
	}
	return true
}

// Equal reports element-wise equality, leading whitespace included.
func (l ExprLine) Equal(o ExprLine) bool {
	if l.LeadingWhitespace != o.LeadingWhitespace || len(l.Members) != len(o.Members) {
		return false
	}
	for i := range l.Members {
		if !l.Members[i].Equal(o.Members[i]) {
			return false
		}
	}
	return true
}

func (l TokenLine) String() string {
	var b strings.Builder
	for i := 0; i < l.LeadingWhitespace; i++ {
		b.WriteByte(' ')
	}
	for i := range l.Members {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.Members[i].String())
	}
	return b.String()
}

func (l ExprLine) String() string {
	var b strings.Builder
	for i := 0; i < l.LeadingWhitespace; i++ {
		b.WriteByte(' ')
	}
	for i := range l.Members {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.Members[i].String())
	}
	return b.String()
}

// ScanLine scans one logical line. Unlike Scan, which gives parentheses
// and digits a token life of their own, the line scanner folds every
// undelimited run into a single word, so "me()" stays one identifier.
// Square brackets become bracket tokens and quoted content becomes a
// separate string token.
func ScanLine(text string) (TokenLine, error) {
	s := NewScanner(text)

	leading, err := s.scanLeading()
	if err != nil {
		return TokenLine{}, err
	}
	if err := s.scanLineBody(); err != nil {
		return TokenLine{}, err
	}
	if len(s.tokens) == 0 {
		return TokenLine{}, s.fail(&ScanError{Kind: NoTokensPresent, Line: s.line, Col: s.col})
	}
	return TokenLine{LeadingWhitespace: leading, Members: s.tokens}, nil
}

// scanLeading counts the leading whitespace run and checks that it does
// not mix characters.
func (s *Scanner) scanLeading() (int, error) {
	var n int
	var wsChar rune
	for {
		r, ok := s.peek()
		if !ok || !unicode.IsSpace(r) {
			break
		}
		if n == 0 {
			wsChar = r
		} else if r != wsChar {
			return 0, s.fail(&ScanError{
				Kind:   InconsistentWhitespace,
				Detail: "inconsistent leading whitespace characters",
				Line:   s.line,
				Col:    s.col,
			})
		}
		n++
		s.advance()
	}
	return n, nil
}

func (s *Scanner) scanLineBody() error {
	var word []rune
	wordLine, wordCol := 0, 0

	flushWord := func() {
		if len(word) == 0 {
			return
		}
		tok := Token{
			Type:    IDENT,
			Lexeme:  string(word),
			Literal: string(word),
			Line:    wordLine,
			Col:     wordCol,
		}
		debugf("Pushing token: %s", tok)
		s.tokens = append(s.tokens, tok)
		word = word[:0]
	}
	op := func(tt TokenType) {
		flushWord()
		s.markStart()
		s.advance()
		s.addToken(tt, nil)
	}
	composite := func(single, double TokenType) {
		flushWord()
		s.markStart()
		s.advance()
		if r, ok := s.peek(); ok && r == '=' {
			s.advance()
			s.addToken(double, nil)
		} else {
			s.addToken(single, nil)
		}
	}

	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		ln, cl := s.line, s.col

		switch r {
		case '#':
			s.advance()
			s.skipComment()
		case '\\':
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
			if len(word) == 0 {
				wordLine, wordCol = ln, cl
			}
			word = append(word, esc)
		case '\'', '"':
			flushWord()
			s.markStart()
			if err := s.scanString(); err != nil {
				return err
			}
		case ':':
			op(COLON)
		case '.':
			op(PERIOD)
		case '[':
			op(LSQUARE)
		case ']':
			op(RSQUARE)
		case '/':
			op(DIV)
		case '*':
			op(MULT)
		case '-':
			op(MINUS)
		case '+':
			op(PLUS)
		case '%':
			op(MOD)
		case '$':
			op(DOLLAR)
		case '=':
			composite(ASSIGN, EQ)
		case '<':
			composite(LESS, LESS_EQ)
		case '>':
			composite(GREATER, GREATER_EQ)
		case '!':
			composite(BANG, NEQ)
		default:
			if unicode.IsSpace(r) {
				flushWord()
				s.advance()
				break
			}
			if len(word) == 0 {
				wordLine, wordCol = ln, cl
			}
			word = append(word, r)
			s.advance()
		}
	}

	flushWord()
	return nil
}
