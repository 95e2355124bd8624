package gparsec

import (
	"errors"
	"sync"
)

// Reply is the outcome of running a Parser: either Ok with a value, the
// unconsumed remainder, and a message (recording what would have been
// expected next, for merging by Or), or Err with just a message.
type Reply[S, A any] struct {
	ok        bool
	value     A
	remainder InputStream[S]
	msg       Message[S]
}

// OkReply builds a successful Reply.
func OkReply[S, A any](value A, remainder InputStream[S], msg Message[S]) Reply[S, A] {
	return Reply[S, A]{ok: true, value: value, remainder: remainder, msg: msg}
}

// ErrReply builds a failed Reply.
func ErrReply[S, A any](msg Message[S]) Reply[S, A] {
	return Reply[S, A]{msg: msg}
}

// IsOk reports whether the reply is a success.
func (r Reply[S, A]) IsOk() bool { return r.ok }

// Value is the parsed value. It is only meaningful when IsOk is true.
func (r Reply[S, A]) Value() A { return r.value }

// Remainder is the stream left after a successful parse.
func (r Reply[S, A]) Remainder() InputStream[S] { return r.remainder }

// Msg is the reply's message, success or failure.
func (r Reply[S, A]) Msg() Message[S] { return r.msg }

// GetResult returns the parsed value, or an error carrying the reply's
// rendered message.
func (r Reply[S, A]) GetResult() (A, error) {
	if r.ok {
		return r.value, nil
	}
	var zero A
	return zero, errors.New(r.msg.Render())
}

// Consumed tags a Reply as having advanced the input (consumed, reply
// deferred) or left it untouched (empty, reply eager). Inspecting the tag via
// IsConsumed is O(1) and never forces the deferred reply.
type Consumed[S, A any] struct {
	consumed bool
	eager    Reply[S, A]
	lazy     *lazyReply[S, A]
}

type lazyReply[S, A any] struct {
	once  sync.Once
	thunk func() Reply[S, A]
	cache Reply[S, A]
}

func (l *lazyReply[S, A]) force() Reply[S, A] {
	l.once.Do(func() {
		l.cache = l.thunk()
		l.thunk = nil
	})
	return l.cache
}

// ConsumedOf wraps a deferred Reply, tagged as having consumed input. thunk
// is forced at most once, on first read.
func ConsumedOf[S, A any](thunk func() Reply[S, A]) Consumed[S, A] {
	return Consumed[S, A]{consumed: true, lazy: &lazyReply[S, A]{thunk: thunk}}
}

// EmptyOf wraps an eager Reply, tagged as not having consumed input.
func EmptyOf[S, A any](r Reply[S, A]) Consumed[S, A] {
	return Consumed[S, A]{eager: r}
}

// IsConsumed reports the consumption tag without forcing the reply.
func (c Consumed[S, A]) IsConsumed() bool { return c.consumed }

// Reply forces and returns the underlying Reply, caching it on first read.
func (c Consumed[S, A]) Reply() Reply[S, A] {
	if !c.consumed {
		return c.eager
	}
	return c.lazy.force()
}
