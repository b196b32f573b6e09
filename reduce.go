// reduce.go: token-to-expression reduction
package nox

import "strconv"

// wordExpr converts a bare word into Int when it parses as an unsigned
// 16-bit integer, Raw otherwise.
func wordExpr(text string) Expr {
	if n, err := strconv.ParseUint(text, 10, 16); err == nil {
		return Int(uint16(n))
	}
	return Raw(text)
}

func failReduce(e *ReduceError) *ReduceError {
	debugf("Returning error: %v", e)
	return e
}

// Reduce folds a token stream into expressions. The attribute idiom
// (IDENT '=' value) and both trait-tag idioms (IDENT '.' IDENT and
// '$'-led selectors) consume several tokens; everything else passes
// through as a singleton expression.
//
// Reduction looks ahead at most one token. When an identifier is
// followed by a token that completes no idiom, the identifier is
// emitted on its own and reduction restarts at the following token.
func Reduce(tokens []Token) ([]Expr, error) {
	var out []Expr
	var i int

	next := func() (Token, bool) {
		if i >= len(tokens) {
			return Token{}, false
		}
		t := tokens[i]
		i++
		return t, true
	}
	push := func(e Expr) {
		debugf("Pushing expression: %s", e)
		out = append(out, e)
	}

	tok, ok := next()
	if !ok {
		return out, nil
	}

	for {
		var expr Expr

		switch tok.Type {
		case ASSIGN, PERIOD:
			return nil, failReduce(&ReduceError{
				Kind:     InvalidToken,
				Token:    tok,
				Expected: "incorrect token to start expression",
			})
		case BANG:
			return nil, failReduce(&ReduceError{Kind: NotYetImplemented, Token: tok})
		case INDENT, DEDENT:
			return nil, failReduce(&ReduceError{Kind: NotSupported, Token: tok})

		case COLON:
			expr = ColonExpr()

		case EQ:
			expr = Relational(EqualTo)
		case LESS_EQ:
			expr = Relational(LessThanEqual)
		case GREATER_EQ:
			expr = Relational(GreaterThanEqual)
		case NEQ:
			expr = Relational(NotEqual)
		case LESS:
			expr = Relational(LessThan)
		case GREATER:
			expr = Relational(GreaterThan)

		case LSQUARE, LROUND:
			expr = Arithmetic(OpenBracket)
		case RSQUARE, RROUND:
			expr = Arithmetic(CloseBracket)
		case DIV:
			expr = Arithmetic(Div)
		case MULT:
			expr = Arithmetic(Mult)
		case MINUS:
			expr = Arithmetic(Sub)
		case PLUS:
			expr = Arithmetic(Add)
		case MOD:
			expr = Arithmetic(ModOp)

		case STRING:
			expr = Raw(tok.text())
		case NUMBER:
			expr = wordExpr(tok.Lexeme)

		case IDENT:
			nxt, ok := next()
			if !ok {
				expr = wordExpr(tok.text())
				break
			}
			switch nxt.Type {
			case ASSIGN:
				val, ok := next()
				if !ok {
					return nil, failReduce(&ReduceError{
						Kind:     UnexpectedLastToken,
						Token:    nxt,
						Expected: "expected token after attribute operator",
					})
				}
				if val.Type != IDENT && val.Type != STRING {
					return nil, failReduce(&ReduceError{
						Kind:     InvalidToken,
						Token:    val,
						Expected: "expected string after equals sign",
					})
				}
				expr = Attribute(tok.text(), val.text())
			case PERIOD:
				tr, ok := next()
				if !ok {
					return nil, failReduce(&ReduceError{
						Kind:     UnexpectedLastToken,
						Token:    nxt,
						Expected: "expected token after period",
					})
				}
				if tr.Type != IDENT {
					return nil, failReduce(&ReduceError{
						Kind:     InvalidToken,
						Token:    tr,
						Expected: "expected string",
					})
				}
				expr = Trait(tok.text(), tr.text())
			default:
				// No idiom completes: emit the identifier alone and
				// retry on the token we already pulled.
				push(wordExpr(tok.text()))
				tok = nxt
				continue
			}

		case DOLLAR:
			last := tok
			need := func(expected string) (Token, error) {
				t, ok := next()
				if !ok {
					return Token{}, failReduce(&ReduceError{
						Kind:     UnexpectedLastToken,
						Token:    last,
						Expected: expected,
					})
				}
				last = t
				return t, nil
			}

			srcTok, err := need("expected string")
			if err != nil {
				return nil, err
			}
			if srcTok.Type != IDENT {
				return nil, failReduce(&ReduceError{
					Kind:     InvalidToken,
					Token:    srcTok,
					Expected: "expected string",
				})
			}

			var arg *string
			sep, err := need("expected period")
			if err != nil {
				return nil, err
			}
			if sep.Type == LESS {
				inner, err := need("expected string or right angle bracket")
				if err != nil {
					return nil, err
				}
				switch inner.Type {
				case GREATER:
					// $sel<>.trait has an explicitly empty argument
					empty := ""
					arg = &empty
				case IDENT:
					text := inner.text()
					arg = &text
					closing, err := need("expected right angle bracket")
					if err != nil {
						return nil, err
					}
					if closing.Type != GREATER {
						return nil, failReduce(&ReduceError{
							Kind:     InvalidToken,
							Token:    closing,
							Expected: "expected right angle bracket",
						})
					}
				default:
					return nil, failReduce(&ReduceError{
						Kind:     InvalidToken,
						Token:    inner,
						Expected: "expected string or right angle bracket",
					})
				}
				sep, err = need("expected period")
				if err != nil {
					return nil, err
				}
			}
			if sep.Type != PERIOD {
				return nil, failReduce(&ReduceError{
					Kind:     InvalidToken,
					Token:    sep,
					Expected: "expected period",
				})
			}

			trTok, err := need("expected string")
			if err != nil {
				return nil, err
			}
			if trTok.Type != IDENT {
				return nil, failReduce(&ReduceError{
					Kind:     InvalidToken,
					Token:    trTok,
					Expected: "expected string",
				})
			}

			if arg == nil {
				expr = SelectorTrait(srcTok.text(), trTok.text())
			} else {
				expr = SelectorTraitArg(srcTok.text(), *arg, trTok.text())
			}

		default:
			return nil, failReduce(&ReduceError{Kind: NotSupported, Token: tok})
		}

		push(expr)
		tok, ok = next()
		if !ok {
			break
		}
	}

	return out, nil
}

// ReduceLine folds a scanned token line into an expression line.
func ReduceLine(line TokenLine) (ExprLine, error) {
	members, err := Reduce(line.Members)
	if err != nil {
		return ExprLine{}, err
	}
	return ExprLine{LeadingWhitespace: line.LeadingWhitespace, Members: members}, nil
}

// ExtractLine scans one line of text and reduces it to an expression
// line. Failures carry the stage they came from.
func ExtractLine(text string) (ExprLine, error) {
	line, err := ScanLine(text)
	if err != nil {
		return ExprLine{}, &LineError{Stage: StageToken, Err: err}
	}
	reduced, err := ReduceLine(line)
	if err != nil {
		return ExprLine{}, &LineError{Stage: StageExpr, Err: err}
	}
	return reduced, nil
}
