// errors.go: scan/reduce error taxonomy and caret-snippet rendering
//
// What this file does
// -------------------
// This module defines the typed errors produced by the two pipeline stages
// and a user-facing wrapper that turns them into readable snippets with a
// caret pointing at the offending column. The machine-readable types are
// `*ScanError` (from the scanners), `*ReduceError` (from the reducer), and
// `*LineError` (the per-line combination of the two). The display entry
// point is `WrapErrorWithSource`:
//
//	UnterminatedStringLiteral: abc
//
//	   2 | rect name="container":
//	   3 |     text "abc
//	       |           ^
//
// Error strings follow the `Name: message` convention, with the message
// omitted for variants that carry no payload. `NoTokensPresent` is special:
// it is not a user-visible condition but a signal that the caller should
// skip the line, so `IsNoTokens` is provided for that test.
//
// Scope of the public API
// -----------------------
// Public:   ScanError/ReduceError/LineError and their kind enums,
//           IsNoTokens, WrapErrorWithSource, WrapErrorWithName.
// Private:  caret-snippet renderer and tiny helpers.
package nox

import (
	"errors"
	"fmt"
	"strings"
)

/* ===========================
   SCAN ERRORS
   =========================== */

// ScanErrorKind discriminates scanner failures.
type ScanErrorKind int

const (
	NoTokensPresent           ScanErrorKind = iota // only whitespace and comments
	InconsistentWhitespace                         // mixed or misaligned leading whitespace
	UnexpectedEndOfLine                            // a construct required more input
	UnterminatedStringLiteral                      // missing closing quote
	InvalidCharacter                               // no scanning rule matched
)

// ScanError is a scanner failure with its input position.
type ScanError struct {
	Kind     ScanErrorKind
	Expected string // UnexpectedEndOfLine: what was required next
	Partial  string // UnterminatedStringLiteral: content collected so far
	Ch       rune   // InvalidCharacter: the offending character
	Detail   string // InconsistentWhitespace: characters vs. count
	Line     int
	Col      int
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case NoTokensPresent:
		return "NoTokensPresent"
	case InconsistentWhitespace:
		if e.Detail == "" {
			return "InconsistentWhitespace"
		}
		return "InconsistentWhitespace: " + e.Detail
	case UnexpectedEndOfLine:
		return "UnexpectedEndOfLine: expected " + e.Expected
	case UnterminatedStringLiteral:
		return "UnterminatedStringLiteral: " + e.Partial
	case InvalidCharacter:
		return fmt.Sprintf("InvalidCharacter: %c", e.Ch)
	}
	return fmt.Sprintf("ScanError(%d)", int(e.Kind))
}

/* ===========================
   REDUCE ERRORS
   =========================== */

// ReduceErrorKind discriminates reducer failures.
type ReduceErrorKind int

const (
	InvalidToken       ReduceErrorKind = iota // wrong token where an idiom required another
	UnexpectedLastToken                       // the token stream ended inside an idiom
	NotSupported                              // token has no expression form
	NotYetImplemented                         // reserved token (BANG)
)

// ReduceError is a reducer failure carrying the token that triggered it.
type ReduceError struct {
	Kind     ReduceErrorKind
	Token    Token
	Expected string // message text, e.g. "expected string after equals sign"
}

func (e *ReduceError) Error() string {
	switch e.Kind {
	case InvalidToken:
		return fmt.Sprintf("InvalidToken: %s (got '%s')", e.Expected, e.Token)
	case UnexpectedLastToken:
		return fmt.Sprintf("UnexpectedLastToken: %s (last token '%s')", e.Expected, e.Token)
	case NotSupported:
		return fmt.Sprintf("NotSupported: '%s'", e.Token)
	case NotYetImplemented:
		return fmt.Sprintf("NotYetImplemented: '%s'", e.Token)
	}
	return fmt.Sprintf("ReduceError(%d)", int(e.Kind))
}

/* ===========================
   LINE ERRORS
   =========================== */

// LineStage says which pipeline stage a per-line failure came from.
type LineStage int

const (
	StageToken LineStage = iota // scanning failed
	StageExpr                   // reduction failed
)

// LineError wraps a stage failure from ExtractLine.
type LineError struct {
	Stage LineStage
	Err   error
}

func (e *LineError) Error() string {
	if e.Stage == StageToken {
		return "TokenFailure: " + e.Err.Error()
	}
	return "ExprFailure: " + e.Err.Error()
}

func (e *LineError) Unwrap() error { return e.Err }

// IsNoTokens reports whether err is, or wraps, the NoTokensPresent outcome.
// Callers use it to skip blank and comment-only lines without reporting.
func IsNoTokens(err error) bool {
	var se *ScanError
	return errors.As(err, &se) && se.Kind == NoTokensPresent
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: helpers & rendering
   =========================== */

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes scan errors, which carry a
// position, and leaves other errors untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

func WrapErrorWithName(err error, srcName string, src string) error {
	var se *ScanError
	if errors.As(err, &se) {
		// Col is 0-based; render as 1-based.
		return fmt.Errorf("%s", prettyErrorStringLabeled(src, srcName, se.Line, se.Col+1, se.Error()))
	}
	return err
}

// prettyErrorStringLabeled builds a Python-like snippet with a caret. It
// shows at most one previous and one next line when available. Coordinates
// are treated as 1-based and clamped to the source bounds.
func prettyErrorStringLabeled(src, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d\n\n", msg, name, line, col)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d\n\n", msg, line, col)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
