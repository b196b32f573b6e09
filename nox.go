// Package nox tokenizes and reduces sources written in nox, a compact
// indentation-sensitive markup language.
//
// The pipeline has two stages. The scanner folds characters into
// tokens, resolving composite operators with one rune of lookahead,
// decoding quoted literals, stripping # comments, and validating
// indentation. The reducer then folds small token idioms into
// expressions:
//
//	rect name="container":
//	    $me<child>.width - 16
//
// yields an Attribute for name="container", a Colon, and on the inner
// line a selector TraitTag followed by an arithmetic operator and an
// Int.
//
// Two scanning surfaces are provided. ParseString scans a whole input
// and encodes block structure as INDENT and DEDENT tokens. ScanLine,
// ReduceLine, and ExtractLine work one line at a time and report the
// line's leading whitespace count instead; on that surface undelimited
// runs such as me() stay single words.
package nox

// Version is the library version, reported by the command line tool.
const Version = "0.2.0"
