// printer_test.go
package nox

import (
	"bytes"
	"testing"
)

// rescan asserts that rendering a token stream and scanning the result
// yields an equal stream.
func rescan(t *testing.T, src string) {
	t.Helper()
	base := toks(t, src)
	rendered := FormatTokens(base)
	again := toks(t, rendered)
	if !sameTokens(base, again) {
		t.Fatalf("render round trip changed the stream\nsource:   %q\nrendered: %q\nbase: %v\ngot:  %v",
			src, rendered, base, again)
	}
}

func Test_Render_TokensWithinLine(t *testing.T) {
	got := FormatTokens(toks(t, `rect name="container":`))
	want := `rect name = "container" :`
	if got != want {
		t.Fatalf("render mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func Test_Render_Blocks(t *testing.T) {
	cases := []struct{ in, want string }{
		{"door:\n  locked\nout", "door :\n locked\nout"},
		{"a:\n  b:\n    c\nd", "a :\n b :\n  c\nd"},
		{"a:\n  b", "a :\n b"},
	}
	for _, tc := range cases {
		got := FormatTokens(toks(t, tc.in))
		if got != tc.want {
			t.Fatalf("block render mismatch\nin:   %q\nwant: %q\ngot:  %q", tc.in, tc.want, got)
		}
	}
}

func Test_Render_RescanEquality(t *testing.T) {
	for _, src := range []string{
		`rect name="container":`,
		"door:\n  locked=true\n  open=false\nout",
		"a:\n  b:\n    c\nd",
		"$me<child>.width-0.0",
		"a == b <= c != d",
		"n 1.50 2",
		`'it\'s' x`,
		"  a", // leading indent renders at one space per level
	} {
		rescan(t, src)
	}
}

func Test_Render_Exprs(t *testing.T) {
	got := FormatExprs(extract(t, `rect name="container":`).Members)
	want := `rect name="container" :`
	if got != want {
		t.Fatalf("expression render mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func Test_Render_CanonicalTraitForms(t *testing.T) {
	cases := []struct {
		e    Expr
		want string
	}{
		{Trait("src", "trait"), "src.trait"},
		{SelectorTrait("src", "trait"), "$src.trait"},
		{SelectorTraitArg("src", "arg", "trait"), "$src<arg>.trait"},
		{SelectorTraitArg("src", "", "trait"), "$src<>.trait"},
		{Attribute("key", "value"), `key="value"`},
		{Int(7), "7"},
		{Raw("me()"), "me()"},
		{Arithmetic(OpenBracket), "["},
		{Arithmetic(ModOp), "%"},
		{Relational(GreaterThanEqual), ">="},
		{ColonExpr(), ":"},
	}
	for _, tc := range cases {
		if got := tc.e.String(); got != tc.want {
			t.Fatalf("want %q got %q", tc.want, got)
		}
	}
}

func Test_Render_QuoteEscaping(t *testing.T) {
	if got := Attribute("k", `say "hi"`).String(); got != `k="say \"hi\""` {
		t.Fatalf("attribute escaping wrong: %q", got)
	}
	tok := Token{Type: STRING, Literal: `a"b`}
	if got := tok.String(); got != `"a\"b"` {
		t.Fatalf("string token escaping wrong: %q", got)
	}
}

func Test_Render_WriterPaths(t *testing.T) {
	tokens := toks(t, "door:\n  locked")

	var buf bytes.Buffer
	if err := RenderTokens(&buf, tokens); err != nil {
		t.Fatalf("RenderTokens error: %v", err)
	}
	if buf.String() != FormatTokens(tokens) {
		t.Fatalf("writer output differs from FormatTokens")
	}

	exprs := extract(t, "label.text :").Members
	buf.Reset()
	if err := RenderExprs(&buf, exprs); err != nil {
		t.Fatalf("RenderExprs error: %v", err)
	}
	if buf.String() != "label.text :" {
		t.Fatalf("expression writer output wrong: %q", buf.String())
	}
}
