package gparsec

import "github.com/jon-hanson/gparsec/internal/clist"

// Option runs p; if it fails without consuming, it succeeds with x instead.
func Option[S, A any](p Parser[S, A], x A) Parser[S, A] {
	return Or(p, Return[S, A](x))
}

// Optional runs p for effect only. If p fails without consuming, Optional
// still succeeds, consuming nothing.
func Optional[S, A any](p Parser[S, A]) Parser[S, struct{}] {
	return Or(Then(p, Return[S, struct{}](struct{}{})), Return[S, struct{}](struct{}{}))
}

// Choice tries each parser in turn; the first branch to either succeed or
// consume commits, exactly as a left fold of Or would.
func Choice[S, A any](ps ...Parser[S, A]) Parser[S, A] {
	if len(ps) == 0 {
		return Fail[S, A]()
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Or(acc, p)
	}
	return acc
}

// Between parses open, then p, then close, returning p's value.
func Between[S, O, C, A any](open Parser[S, O], close Parser[S, C], p Parser[S, A]) Parser[S, A] {
	return Then(open, Bind(p, func(x A) Parser[S, A] {
		return Then(close, Return[S, A](x))
	}))
}

// Many greedily applies p zero or more times, returning the accumulated
// values in input order. It loops rather than recurses, so long inputs do
// not grow the call stack. A p that succeeds repeatedly without consuming
// input is a programmer error (the loop can never terminate) and Many
// panics rather than spin forever.
func Many[S, A any](p Parser[S, A]) Parser[S, []A] {
	return manyAtLeast(p, 0)
}

// Many1 is Many with a minimum of one application.
func Many1[S, A any](p Parser[S, A]) Parser[S, []A] {
	return manyAtLeast(p, 1)
}

func manyAtLeast[S, A any](p Parser[S, A], min int) Parser[S, []A] {
	return func(in InputStream[S]) Consumed[S, []A] {
		var results []A
		cur := in
		consumedAny := false
		var lastMsg Message[S]
		for {
			c := p(cur)
			r := c.Reply()
			if !c.IsConsumed() {
				if r.IsOk() {
					panic("gparsec: Many applied to a parser that succeeds without consuming input")
				}
				lastMsg = r.Msg()
				break
			}
			consumedAny = true
			if !r.IsOk() {
				msg := r.Msg()
				return ConsumedOf(func() Reply[S, []A] { return ErrReply[S, []A](msg) })
			}
			results = append(results, r.Value())
			cur = r.Remainder()
		}
		if len(results) < min {
			return EmptyOf(ErrReply[S, []A](lastMsg))
		}
		res, final := results, cur
		if consumedAny {
			return ConsumedOf(func() Reply[S, []A] {
				return OkReply[S, []A](res, final, messageAt[S](final, clist.Nil[string]()))
			})
		}
		return EmptyOf(OkReply[S, []A](res, final, messageAt[S](final, clist.Nil[string]())))
	}
}

// SkipMany is Many, discarding results.
func SkipMany[S, A any](p Parser[S, A]) Parser[S, struct{}] {
	return skipAtLeast(p, 0)
}

// SkipMany1 is Many1, discarding results.
func SkipMany1[S, A any](p Parser[S, A]) Parser[S, struct{}] {
	return skipAtLeast(p, 1)
}

func skipAtLeast[S, A any](p Parser[S, A], min int) Parser[S, struct{}] {
	return func(in InputStream[S]) Consumed[S, struct{}] {
		cur := in
		count := 0
		consumedAny := false
		var lastMsg Message[S]
		for {
			c := p(cur)
			r := c.Reply()
			if !c.IsConsumed() {
				if r.IsOk() {
					panic("gparsec: SkipMany applied to a parser that succeeds without consuming input")
				}
				lastMsg = r.Msg()
				break
			}
			consumedAny = true
			if !r.IsOk() {
				msg := r.Msg()
				return ConsumedOf(func() Reply[S, struct{}] { return ErrReply[S, struct{}](msg) })
			}
			count++
			cur = r.Remainder()
		}
		if count < min {
			return EmptyOf(ErrReply[S, struct{}](lastMsg))
		}
		final := cur
		if consumedAny {
			return ConsumedOf(func() Reply[S, struct{}] {
				return OkReply[S, struct{}](struct{}{}, final, messageAt[S](final, clist.Nil[string]()))
			})
		}
		return EmptyOf(OkReply[S, struct{}](struct{}{}, final, messageAt[S](final, clist.Nil[string]())))
	}
}

// Count applies p exactly n times, failing if fewer than n succeed. It never
// attempts an (n+1)-th application.
func Count[S, A any](p Parser[S, A], n int) Parser[S, []A] {
	return func(in InputStream[S]) Consumed[S, []A] {
		if n <= 0 {
			return EmptyOf(OkReply[S, []A](nil, in, messageAt[S](in, clist.Nil[string]())))
		}
		results := make([]A, 0, n)
		cur := in
		consumedAny := false
		for i := 0; i < n; i++ {
			c := p(cur)
			if c.IsConsumed() {
				consumedAny = true
			}
			r := c.Reply()
			if !r.IsOk() {
				msg := r.Msg()
				if consumedAny {
					return ConsumedOf(func() Reply[S, []A] { return ErrReply[S, []A](msg) })
				}
				return EmptyOf(ErrReply[S, []A](msg))
			}
			results = append(results, r.Value())
			cur = r.Remainder()
		}
		final := cur
		if consumedAny {
			return ConsumedOf(func() Reply[S, []A] {
				return OkReply[S, []A](results, final, messageAt[S](final, clist.Nil[string]()))
			})
		}
		return EmptyOf(OkReply[S, []A](results, final, messageAt[S](final, clist.Nil[string]())))
	}
}

// SepBy1 parses one or more p, separated by sep. A trailing separator is not
// accepted: once sep has consumed input, a missing p fails the parse rather
// than being backtracked over.
func SepBy1[S, A, B any](p Parser[S, A], sep Parser[S, B]) Parser[S, []A] {
	return Bind(p, func(x A) Parser[S, []A] {
		return Bind(Many(Then(sep, p)), func(rest []A) Parser[S, []A] {
			return Return[S, []A](append([]A{x}, rest...))
		})
	})
}

// SepBy is SepBy1, returning an empty slice when the first p fails without
// consuming.
func SepBy[S, A, B any](p Parser[S, A], sep Parser[S, B]) Parser[S, []A] {
	return Option(SepBy1(p, sep), []A{})
}

// EndBy1 parses one or more p, each followed by sep.
func EndBy1[S, A, B any](p Parser[S, A], sep Parser[S, B]) Parser[S, []A] {
	return Many1(Bind(p, func(x A) Parser[S, A] {
		return Then(sep, Return[S, A](x))
	}))
}

// EndBy is EndBy1, returning an empty slice when the first p fails without
// consuming.
func EndBy[S, A, B any](p Parser[S, A], sep Parser[S, B]) Parser[S, []A] {
	return Many(Bind(p, func(x A) Parser[S, A] {
		return Then(sep, Return[S, A](x))
	}))
}

// SepEndBy1 parses one or more p, separated by sep, with an optional
// trailing sep.
func SepEndBy1[S, A, B any](p Parser[S, A], sep Parser[S, B]) Parser[S, []A] {
	return Bind(p, func(x A) Parser[S, []A] {
		return Or(
			Then(sep, Bind(SepEndBy(p, sep), func(rest []A) Parser[S, []A] {
				return Return[S, []A](append([]A{x}, rest...))
			})),
			Return[S, []A]([]A{x}),
		)
	})
}

// SepEndBy is SepEndBy1, returning an empty slice when the first p fails
// without consuming.
func SepEndBy[S, A, B any](p Parser[S, A], sep Parser[S, B]) Parser[S, []A] {
	return Option(SepEndBy1(p, sep), []A{})
}

// ChainL1 parses p (op p)*, folding left-associatively: starting from p's
// value x, each subsequent op yields a combining function f and the next p
// yields y, and the accumulator becomes f(x, y). It loops rather than
// recurses, so long left-associative chains (the common case for expression
// grammars) do not grow the call stack.
func ChainL1[S, A any](p Parser[S, A], op Parser[S, func(A, A) A]) Parser[S, A] {
	return func(in InputStream[S]) Consumed[S, A] {
		c := p(in)
		r := c.Reply()
		if !r.IsOk() {
			return c
		}
		consumedAny := c.IsConsumed()
		acc := r.Value()
		cur := r.Remainder()
		for {
			oc := op(cur)
			if !oc.IsConsumed() {
				break
			}
			consumedAny = true
			or := oc.Reply()
			if !or.IsOk() {
				msg := or.Msg()
				return ConsumedOf(func() Reply[S, A] { return ErrReply[S, A](msg) })
			}
			pc := p(or.Remainder())
			pr := pc.Reply()
			if pc.IsConsumed() {
				consumedAny = true
			}
			if !pr.IsOk() {
				// op already consumed input: this is a commit, not a fork, so
				// a failing operand -- even one that consumed nothing itself
				// -- is a hard, non-backtracking failure, never an implicit
				// rewind of the operator we just consumed.
				msg := pr.Msg()
				return ConsumedOf(func() Reply[S, A] { return ErrReply[S, A](msg) })
			}
			acc = or.Value()(acc, pr.Value())
			cur = pr.Remainder()
		}
		final, result := cur, acc
		if consumedAny {
			return ConsumedOf(func() Reply[S, A] {
				return OkReply[S, A](result, final, messageAt[S](final, clist.Nil[string]()))
			})
		}
		return EmptyOf(OkReply[S, A](result, final, messageAt[S](final, clist.Nil[string]())))
	}
}

// ChainR1 parses p (op ChainR1(p, op))?, folding right-associatively.
// Right-associativity is naturally expressed as a fold over the recursive
// call. Each operator adds one level of recursion, so the call depth grows
// with the length of the chain in the input.
func ChainR1[S, A any](p Parser[S, A], op Parser[S, func(A, A) A]) Parser[S, A] {
	return Bind(p, func(x A) Parser[S, A] {
		return Or(
			Bind(op, func(f func(A, A) A) Parser[S, A] {
				return Bind(ChainR1(p, op), func(y A) Parser[S, A] {
					return Return[S, A](f(x, y))
				})
			}),
			Return[S, A](x),
		)
	})
}

// ChainL is ChainL1, returning x when no p can be parsed at all.
func ChainL[S, A any](p Parser[S, A], op Parser[S, func(A, A) A], x A) Parser[S, A] {
	return Option(ChainL1(p, op), x)
}

// ChainR is ChainR1, returning x when no p can be parsed at all.
func ChainR[S, A any](p Parser[S, A], op Parser[S, func(A, A) A], x A) Parser[S, A] {
	return Option(ChainR1(p, op), x)
}
