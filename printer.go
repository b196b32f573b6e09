// printer.go: canonical text rendering for token and expression streams
package nox

import (
	"io"
	"strings"
)

/* ---------- small writer with indentation ---------- */

type out struct {
	b       *strings.Builder
	depth   int
	started bool // something already written on the current line
	pending bool // line break owed before the next inline token
}

func (o *out) pad() {
	for i := 0; i < o.depth; i++ {
		o.b.WriteByte(' ')
	}
}

func (o *out) item(s string) {
	switch {
	case o.pending:
		if o.b.Len() > 0 {
			o.b.WriteByte('\n')
		}
		o.pad()
		o.pending = false
	case o.started:
		o.b.WriteByte(' ')
	}
	o.b.WriteString(s)
	o.started = true
}

func (o *out) indent() {
	o.depth++
	o.pending = true
}

func (o *out) dedent() {
	if o.depth > 0 {
		o.depth--
	}
	o.pending = true
}

/* ---------- public renderers ---------- */

// FormatTokens renders a token stream in canonical textual form. Tokens
// within a line are separated by single spaces; INDENT and DEDENT open a
// fresh line at the adjusted depth, one space per level, so the rendered
// text scans back to an equal stream.
func FormatTokens(tokens []Token) string {
	o := out{b: &strings.Builder{}}
	for _, t := range tokens {
		switch t.Type {
		case INDENT:
			o.indent()
		case DEDENT:
			o.dedent()
		default:
			o.item(t.String())
		}
	}
	return o.b.String()
}

// RenderTokens writes the canonical textual form of tokens to w.
func RenderTokens(w io.Writer, tokens []Token) error {
	_, err := io.WriteString(w, FormatTokens(tokens))
	return err
}

// FormatExprs renders an expression stream, space-separated.
func FormatExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// RenderExprs writes the canonical textual form of exprs to w.
func RenderExprs(w io.Writer, exprs []Expr) error {
	_, err := io.WriteString(w, FormatExprs(exprs))
	return err
}
