// Package example hosts end-to-end grammars built on gparsec and
// gparsec/text, used both as regression fixtures for the core engine and as
// the grammar behind cmd/gparsec-calc.
package example

import (
	"github.com/jon-hanson/gparsec"
	"github.com/jon-hanson/gparsec/text"
)

func lexeme[A any](p gparsec.Parser[rune, A]) gparsec.Parser[rune, A] {
	return gparsec.Bind(p, func(x A) gparsec.Parser[rune, A] {
		return gparsec.Then(text.Spaces(), gparsec.Return[rune, A](x))
	})
}

func symbol(r rune) gparsec.Parser[rune, rune] {
	return lexeme(text.Char(r))
}

func intOp(r rune, f func(a, b int64) int64) gparsec.Parser[rune, func(int64, int64) int64] {
	return gparsec.Bind(symbol(r), func(rune) gparsec.Parser[rune, func(int64, int64) int64] {
		return gparsec.Return[rune, func(int64, int64) int64](f)
	})
}

func addOp() gparsec.Parser[rune, func(int64, int64) int64] {
	return gparsec.Or(
		intOp('+', func(a, b int64) int64 { return a + b }),
		intOp('-', func(a, b int64) int64 { return a - b }),
	)
}

func mulOp() gparsec.Parser[rune, func(int64, int64) int64] {
	return gparsec.Or(
		intOp('*', func(a, b int64) int64 { return a * b }),
		intOp('/', func(a, b int64) int64 { return a / b }),
	)
}

// Expr parses a four-operator integer arithmetic expression with the usual
// precedence of * and / over + and -, and parenthesized grouping, evaluating
// it as it parses -- the gparsec/example analogue of spec.md §8's
// chainl1(digit-as-int, addSub) test-table row, grown into a full grammar.
//
// expr -> term (addOp term)*
// term -> factor (mulOp factor)*
// factor -> integer | "(" expr ")"
//
// factor's parenthesized case recurses back into expr, so the grammar is
// built through a Fwd[rune, int64] forward reference rather than three
// mutually-calling top-level functions.
func Expr() gparsec.Parser[rune, int64] {
	exprFwd := gparsec.NewFwd[rune, int64]()

	factor := gparsec.Or(
		lexeme(text.Int()),
		gparsec.Between(symbol('('), symbol(')'), exprFwd.Parser()),
	)
	term := gparsec.ChainL1(factor, mulOp())
	expr := gparsec.ChainL1(term, addOp())
	exprFwd.Set(expr)

	return gparsec.Then(text.Spaces(), gparsec.Bind(expr, func(v int64) gparsec.Parser[rune, int64] {
		return gparsec.Then(gparsec.Eof[rune](), gparsec.Return[rune, int64](v))
	}))
}

// EvalExpr parses and evaluates s as an arithmetic expression, returning the
// Reply so callers can render gparsec's diagnostics on failure.
func EvalExpr(s string) gparsec.Reply[rune, int64] {
	return gparsec.Parse(Expr(), text.NewRuneStream(s))
}
