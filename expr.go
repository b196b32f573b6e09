package nox

import "fmt"

// ArithOp identifies a binary arithmetic operator or bracket.
type ArithOp int

const (
	OpenBracket ArithOp = iota // "["
	CloseBracket
	Div
	Mult
	Sub
	Add
	ModOp
)

func (op ArithOp) String() string {
	switch op {
	case OpenBracket:
		return "["
	case CloseBracket:
		return "]"
	case Div:
		return "/"
	case Mult:
		return "*"
	case Sub:
		return "-"
	case Add:
		return "+"
	case ModOp:
		return "%"
	}
	return fmt.Sprintf("ArithOp(%d)", int(op))
}

// RelOp identifies a binary relational operator.
type RelOp int

const (
	EqualTo RelOp = iota // "=="
	GreaterThan
	GreaterThanEqual
	LessThan
	LessThanEqual
	NotEqual
)

func (op RelOp) String() string {
	switch op {
	case EqualTo:
		return "=="
	case GreaterThan:
		return ">"
	case GreaterThanEqual:
		return ">="
	case LessThan:
		return "<"
	case LessThanEqual:
		return "<="
	case NotEqual:
		return "!="
	}
	return fmt.Sprintf("RelOp(%d)", int(op))
}

// ExprKind discriminates the expression variants.
type ExprKind int

const (
	ExprAttribute ExprKind = iota
	ExprTraitTag
	ExprInt
	ExprRaw
	ExprArithmetic
	ExprRelational
	ExprColon
)

// Expr is one reduced expression. Kind selects which payload fields are
// meaningful; the rest stay zero.
type Expr struct {
	Kind ExprKind

	Key, Val string // ExprAttribute

	Src, Trait string  // ExprTraitTag
	Arg        *string // selector argument; nil when absent, may point at ""
	Selector   bool    // true for the "$src" form

	N uint16 // ExprInt

	Text string // ExprRaw

	Arith ArithOp
	Rel   RelOp
}

// Attribute builds a key="value" expression.
func Attribute(key, val string) Expr {
	return Expr{Kind: ExprAttribute, Key: key, Val: val}
}

// Trait builds a bare src.trait expression.
func Trait(src, trait string) Expr {
	return Expr{Kind: ExprTraitTag, Src: src, Trait: trait}
}

// SelectorTrait builds a $src.trait expression with no argument.
func SelectorTrait(src, trait string) Expr {
	return Expr{Kind: ExprTraitTag, Src: src, Trait: trait, Selector: true}
}

// SelectorTraitArg builds a $src<arg>.trait expression. An empty arg is
// preserved as present-and-empty, matching the `$src<>.trait` surface.
func SelectorTraitArg(src, arg, trait string) Expr {
	return Expr{Kind: ExprTraitTag, Src: src, Trait: trait, Selector: true, Arg: &arg}
}

// Int builds a small-integer expression.
func Int(n uint16) Expr {
	return Expr{Kind: ExprInt, N: n}
}

// Raw builds a pass-through text expression.
func Raw(text string) Expr {
	return Expr{Kind: ExprRaw, Text: text}
}

// Arithmetic wraps an arithmetic operator.
func Arithmetic(op ArithOp) Expr {
	return Expr{Kind: ExprArithmetic, Arith: op}
}

// Relational wraps a relational operator.
func Relational(op RelOp) Expr {
	return Expr{Kind: ExprRelational, Rel: op}
}

// ColonExpr is the end-of-tag marker expression.
func ColonExpr() Expr {
	return Expr{Kind: ExprColon}
}

// Equal reports whether two expressions are the same variant with the same
// payload. Selector arguments compare by value, with nil distinct from "".
func (e Expr) Equal(o Expr) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case ExprAttribute:
		return e.Key == o.Key && e.Val == o.Val
	case ExprTraitTag:
		if e.Src != o.Src || e.Trait != o.Trait || e.Selector != o.Selector {
			return false
		}
		if (e.Arg == nil) != (o.Arg == nil) {
			return false
		}
		return e.Arg == nil || *e.Arg == *o.Arg
	case ExprInt:
		return e.N == o.N
	case ExprRaw:
		return e.Text == o.Text
	case ExprArithmetic:
		return e.Arith == o.Arith
	case ExprRelational:
		return e.Rel == o.Rel
	case ExprColon:
		return true
	}
	return false
}

// String renders the expression in its canonical .nox surface form.
func (e Expr) String() string {
	switch e.Kind {
	case ExprAttribute:
		return e.Key + "=" + quoteLiteral(e.Val)
	case ExprTraitTag:
		switch {
		case e.Selector && e.Arg != nil:
			return fmt.Sprintf("$%s<%s>.%s", e.Src, *e.Arg, e.Trait)
		case e.Selector:
			return fmt.Sprintf("$%s.%s", e.Src, e.Trait)
		default:
			return fmt.Sprintf("%s.%s", e.Src, e.Trait)
		}
	case ExprInt:
		return fmt.Sprintf("%d", e.N)
	case ExprRaw:
		return e.Text
	case ExprArithmetic:
		return e.Arith.String()
	case ExprRelational:
		return e.Rel.String()
	case ExprColon:
		return ":"
	}
	return fmt.Sprintf("Expr(%d)", int(e.Kind))
}
