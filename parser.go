// Package gparsec is an LL(infinity) monadic parser-combinator engine
// modelled on the Parsec paper. A Parser is a pure function from an
// InputStream to a Consumed, tagged-for-consumption Reply; combinators
// dispatch on whether a sub-parser succeeded and whether it consumed input,
// which is what lets Or commit deterministically after the first consumed
// symbol while still producing merged "expected X or Y" diagnostics at
// empty-empty forks.
package gparsec

import "github.com/jon-hanson/gparsec/internal/clist"

// Parser is a pure function from an input state to a consumption-tagged
// reply. Parsers are values: composable, capturable, and safe to reference
// recursively via Fwd.
type Parser[S, A any] func(InputStream[S]) Consumed[S, A]

// Return always succeeds without consuming input, producing x.
func Return[S, A any](x A) Parser[S, A] {
	return func(in InputStream[S]) Consumed[S, A] {
		return EmptyOf(OkReply[S, A](x, in, messageAt[S](in, clist.Nil[string]())))
	}
}

// Fail always fails without consuming input, with no expectations attached.
func Fail[S, A any]() Parser[S, A] {
	return func(in InputStream[S]) Consumed[S, A] {
		return EmptyOf(ErrReply[S, A](messageAt[S](in, clist.Nil[string]())))
	}
}

// Satisfy is the sole primitive that advances the stream. It succeeds,
// consuming one symbol, when test holds for the current symbol; it fails
// without consuming on a non-matching symbol or end of input. Callers that
// want a descriptive expectation in place of the default "<test>" should
// wrap the result in Label.
func Satisfy[S any](test func(S) bool) Parser[S, S] {
	return func(in InputStream[S]) Consumed[S, S] {
		if in.AtEnd() {
			return EmptyOf(ErrReply[S, S](messageAt[S](in, clist.Nil[string]())))
		}
		sym := in.Current()
		if !test(sym) {
			return EmptyOf(ErrReply[S, S](messageAt[S](in, clist.One[string]("<test>"))))
		}
		next := in.Advance(1)
		return ConsumedOf(func() Reply[S, S] {
			return OkReply[S, S](sym, next, messageAt[S](next, clist.Nil[string]()))
		})
	}
}

// Eof succeeds without consuming iff the stream is exhausted.
func Eof[S any]() Parser[S, struct{}] {
	return func(in InputStream[S]) Consumed[S, struct{}] {
		msg := messageAt[S](in, clist.One[string]("EOF"))
		if in.AtEnd() {
			return EmptyOf(OkReply[S, struct{}](struct{}{}, in, msg))
		}
		return EmptyOf(ErrReply[S, struct{}](msg))
	}
}

// Bind is the monadic sequencer. It runs p, and once p's value is known,
// runs f(value) on the remainder. The consumption tag of the composite
// follows the package's dispatch table: a Consumed p taints the whole bind
// as Consumed regardless of what f does; an Empty p defers entirely to f,
// merging messages when both sides are Empty.
func Bind[S, A, B any](p Parser[S, A], f func(A) Parser[S, B]) Parser[S, B] {
	return func(in InputStream[S]) Consumed[S, B] {
		c1 := p(in)
		if c1.IsConsumed() {
			return ConsumedOf(func() Reply[S, B] {
				r1 := c1.Reply()
				if !r1.IsOk() {
					return ErrReply[S, B](r1.Msg())
				}
				return f(r1.Value())(r1.Remainder()).Reply()
			})
		}
		r1 := c1.Reply()
		if !r1.IsOk() {
			return EmptyOf(ErrReply[S, B](r1.Msg()))
		}
		c2 := f(r1.Value())(r1.Remainder())
		if c2.IsConsumed() {
			return c2
		}
		r2 := c2.Reply()
		if !r2.IsOk() {
			return EmptyOf(ErrReply[S, B](r1.Msg().Merge(r2.Msg())))
		}
		return EmptyOf(OkReply[S, B](r2.Value(), r2.Remainder(), r1.Msg().Merge(r2.Msg())))
	}
}

// Then runs p then q, discarding p's value. It is Bind(p, func(A) Parser[S,
// B] { return q }) with the value-threading closure inlined away.
func Then[S, A, B any](p Parser[S, A], q Parser[S, B]) Parser[S, B] {
	return func(in InputStream[S]) Consumed[S, B] {
		c1 := p(in)
		if c1.IsConsumed() {
			return ConsumedOf(func() Reply[S, B] {
				r1 := c1.Reply()
				if !r1.IsOk() {
					return ErrReply[S, B](r1.Msg())
				}
				return q(r1.Remainder()).Reply()
			})
		}
		r1 := c1.Reply()
		if !r1.IsOk() {
			return EmptyOf(ErrReply[S, B](r1.Msg()))
		}
		c2 := q(r1.Remainder())
		if c2.IsConsumed() {
			return c2
		}
		r2 := c2.Reply()
		if !r2.IsOk() {
			return EmptyOf(ErrReply[S, B](r1.Msg().Merge(r2.Msg())))
		}
		return EmptyOf(OkReply[S, B](r2.Value(), r2.Remainder(), r1.Msg().Merge(r2.Msg())))
	}
}

// Or is deterministic LL(1) choice: if p consumes input, Or commits to p and
// q is never tried. Only when p leaves the input untouched does Or attempt
// q, merging the expected-sets of both branches so the caller sees "expected
// X or Y" rather than whichever alternative happened to run last. Wrap p in
// Attempt to allow backtracking past consumed input.
func Or[S, A any](p, q Parser[S, A]) Parser[S, A] {
	return func(in InputStream[S]) Consumed[S, A] {
		c1 := p(in)
		if c1.IsConsumed() {
			return c1
		}
		r1 := c1.Reply()
		c2 := q(in)
		if c2.IsConsumed() {
			return c2
		}
		r2 := c2.Reply()
		if r1.IsOk() {
			return EmptyOf(OkReply[S, A](r1.Value(), r1.Remainder(), r1.Msg().Merge(r2.Msg())))
		}
		if r2.IsOk() {
			return EmptyOf(OkReply[S, A](r2.Value(), r2.Remainder(), r1.Msg().Merge(r2.Msg())))
		}
		return EmptyOf(ErrReply[S, A](r1.Msg().Merge(r2.Msg())))
	}
}

// Attempt converts a Consumed failure from p into an Empty failure, so that
// an enclosing Or may still try its other branch after p has consumed
// input. It is the sole lookahead mechanism, and forfeits Or's usual O(1)
// commit for the parser it guards.
func Attempt[S, A any](p Parser[S, A]) Parser[S, A] {
	return func(in InputStream[S]) Consumed[S, A] {
		c := p(in)
		if !c.IsConsumed() {
			return c
		}
		r := c.Reply()
		if r.IsOk() {
			return ConsumedOf(func() Reply[S, A] { return r })
		}
		return EmptyOf(ErrReply[S, A](r.Msg()))
	}
}

// Label replaces the expected-set of an Empty reply (success or failure)
// with name, so a later Or merge names the outer rule rather than its
// terminal constituents. Consumed replies pass through unchanged: once
// input has been consumed the caller is past the alternative, and the inner
// expectation is the informative one.
func Label[S, A any](p Parser[S, A], name string) Parser[S, A] {
	return func(in InputStream[S]) Consumed[S, A] {
		c := p(in)
		if c.IsConsumed() {
			return c
		}
		r := c.Reply()
		relabeled := r.Msg().Expect(name)
		if r.IsOk() {
			return EmptyOf(OkReply[S, A](r.Value(), r.Remainder(), relabeled))
		}
		return EmptyOf(ErrReply[S, A](relabeled))
	}
}

// Parse runs p against in and forces its reply.
func Parse[S, A any](p Parser[S, A], in InputStream[S]) Reply[S, A] {
	return p(in).Reply()
}
