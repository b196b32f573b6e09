// errors_test.go
package nox

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_Errors_MessageForms(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&ScanError{Kind: NoTokensPresent}, "NoTokensPresent"},
		{
			&ScanError{Kind: InconsistentWhitespace, Detail: "inconsistent leading whitespace count"},
			"InconsistentWhitespace: inconsistent leading whitespace count",
		},
		{
			&ScanError{Kind: UnexpectedEndOfLine, Expected: "char after backslash"},
			"UnexpectedEndOfLine: expected char after backslash",
		},
		{&ScanError{Kind: UnterminatedStringLiteral, Partial: "ab"}, "UnterminatedStringLiteral: ab"},
		{&ScanError{Kind: InvalidCharacter, Ch: '['}, "InvalidCharacter: ["},
		{
			&ReduceError{Kind: InvalidToken, Token: Token{Type: COLON}, Expected: "expected string"},
			"InvalidToken: expected string (got ':')",
		},
		{
			&ReduceError{Kind: UnexpectedLastToken, Token: Token{Type: ASSIGN}, Expected: "expected token after attribute operator"},
			"UnexpectedLastToken: expected token after attribute operator (last token '=')",
		},
		{&ReduceError{Kind: NotSupported, Token: Token{Type: INDENT}}, "NotSupported: '<indent>'"},
		{&ReduceError{Kind: NotYetImplemented, Token: Token{Type: BANG}}, "NotYetImplemented: '!'"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("message mismatch:\nwant %q\ngot  %q", tc.want, got)
		}
	}
}

func Test_Errors_LineStagePrefixes(t *testing.T) {
	_, err := ExtractLine(" \tx")
	if err == nil {
		t.Fatalf("expected token-stage failure")
	}
	mustContain(t, err.Error(), "TokenFailure: InconsistentWhitespace")

	_, err = ExtractLine("name=")
	if err == nil {
		t.Fatalf("expected expression-stage failure")
	}
	want := "ExprFailure: UnexpectedLastToken: expected token after attribute operator (last token '=')"
	if err.Error() != want {
		t.Fatalf("message mismatch:\nwant %q\ngot  %q", want, err.Error())
	}
}

func Test_Errors_UnwrapChain(t *testing.T) {
	_, err := ExtractLine(`"abc`)
	var le *LineError
	if !errors.As(err, &le) || le.Stage != StageToken {
		t.Fatalf("expected token-stage LineError, got %v", err)
	}
	var se *ScanError
	if !errors.As(err, &se) || se.Kind != UnterminatedStringLiteral {
		t.Fatalf("scan error not reachable through wrapper: %v", err)
	}
	if errors.Unwrap(le) != le.Err {
		t.Fatalf("Unwrap should expose the stage error")
	}

	_, err = ExtractLine("me().")
	var re *ReduceError
	if !errors.As(err, &re) || re.Kind != UnexpectedLastToken {
		t.Fatalf("reduce error not reachable through wrapper: %v", err)
	}
}

func Test_Errors_IsNoTokens(t *testing.T) {
	_, direct := ParseString("   ")
	if !IsNoTokens(direct) {
		t.Fatalf("direct scan outcome not recognized: %v", direct)
	}
	_, wrapped := ExtractLine("# skip me")
	if !IsNoTokens(wrapped) {
		t.Fatalf("wrapped line outcome not recognized: %v", wrapped)
	}
	if IsNoTokens(nil) {
		t.Fatalf("nil is not the no-tokens outcome")
	}
	if IsNoTokens(fmt.Errorf("boom")) {
		t.Fatalf("unrelated errors are not the no-tokens outcome")
	}
	if IsNoTokens(&ScanError{Kind: InvalidCharacter, Ch: '['}) {
		t.Fatalf("other scan errors are not the no-tokens outcome")
	}
}

func Test_ErrorWrap_ShowsCaretAndContext(t *testing.T) {
	src := "rect name=\"container\":\n    text \"abc"
	_, err := ParseString(src)
	if err == nil {
		t.Fatalf("expected scan error, got tokens")
	}

	msg := WrapErrorWithSource(err, src).Error()

	mustContain(t, msg, "UnterminatedStringLiteral: abc at 2:10")
	mustContain(t, msg, `   1 | rect name="container":`)
	mustContain(t, msg, `   2 |     text "abc`)
	mustContain(t, msg, "     | "+strings.Repeat(" ", 9)+"^")
}

func Test_ErrorWrap_NamedSource(t *testing.T) {
	src := "[oops]"
	_, err := ParseString(src)
	if err == nil {
		t.Fatalf("expected scan error, got tokens")
	}

	msg := WrapErrorWithName(err, "sample.nox", src).Error()
	mustContain(t, msg, "InvalidCharacter: [ in sample.nox at 1:1")
	mustContain(t, msg, "   1 | [oops]")
	mustContain(t, msg, "     | ^")
}

func Test_ErrorWrap_LeavesOtherErrorsAlone(t *testing.T) {
	re := &ReduceError{Kind: NotYetImplemented, Token: Token{Type: BANG}}
	if got := WrapErrorWithSource(re, "x"); got != error(re) {
		t.Fatalf("non-scan errors should pass through unchanged, got %v", got)
	}
}
