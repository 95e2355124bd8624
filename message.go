package gparsec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jon-hanson/gparsec/internal/clist"
)

// Message is a lazily-constructed failure (or would-be-failure) description:
// the position it was observed at, the offending symbol (or the end-of-input
// sentinel), and the set of production labels that were expected there.
//
// Most Message values constructed during a parse are never read -- they're
// overwritten the moment a later alternative succeeds. Message therefore
// defers the work of capturing the symbol and building the expected-list
// until the first read, and caches the result from then on.
type Message[S any] struct {
	lazy *lazyMessage[S]
}

type messageData[S any] struct {
	position int
	symbol   S
	isEOF    bool
	expected clist.List[string]
}

type lazyMessage[S any] struct {
	once sync.Once
	gen  func() messageData[S]
	data messageData[S]
}

func newMessage[S any](gen func() messageData[S]) Message[S] {
	return Message[S]{lazy: &lazyMessage[S]{gen: gen}}
}

func (m Message[S]) data() messageData[S] {
	m.lazy.once.Do(func() {
		m.lazy.data = m.lazy.gen()
		m.lazy.gen = nil
	})
	return m.lazy.data
}

// MessageAt builds an empty Message (no expectations attached) anchored at
// in's current position. It exists for client parser packages such as
// gparsec/text, which build their own Ok/Err replies against InputStream but
// have no access to gparsec's unexported messageData machinery; chain Expect
// onto the result to attach a label.
func MessageAt[S any](in InputStream[S]) Message[S] {
	return messageAt[S](in, clist.Nil[string]())
}

// messageAt builds a Message anchored at in's current position, deferring the
// actual symbol/position capture until the message is read.
func messageAt[S any](in InputStream[S], expected clist.List[string]) Message[S] {
	return newMessage(func() messageData[S] {
		if in.AtEnd() {
			return messageData[S]{position: in.Position(), isEOF: true, expected: expected}
		}
		return messageData[S]{position: in.Position(), symbol: in.Current(), expected: expected}
	})
}

// Position is the offset at which the message was observed.
func (m Message[S]) Position() int { return m.data().position }

// Symbol returns the offending symbol and true, or the zero value and false
// if the message refers to the end of input.
func (m Message[S]) Symbol() (S, bool) {
	d := m.data()
	return d.symbol, !d.isEOF
}

// Expected returns the production labels attached to this message, in the
// order they were recorded.
func (m Message[S]) Expected() []string { return m.data().expected.ToSlice() }

// Merge unions the expected-sets of two messages observed at a fork: position
// and symbol come from the receiver, and expected is the receiver's list
// followed by other's. Merge never forces either message.
func (m Message[S]) Merge(other Message[S]) Message[S] {
	return newMessage(func() messageData[S] {
		d := m.data()
		o := other.data()
		return messageData[S]{
			position: d.position,
			symbol:   d.symbol,
			isEOF:    d.isEOF,
			expected: d.expected.Concat(o.expected),
		}
	})
}

// Expect replaces the expected-set with a single label, keeping position and
// symbol. It is used by Label to relabel lower-level expectations.
func (m Message[S]) Expect(name string) Message[S] {
	return newMessage(func() messageData[S] {
		d := m.data()
		return messageData[S]{
			position: d.position,
			symbol:   d.symbol,
			isEOF:    d.isEOF,
			expected: clist.One[string](name),
		}
	})
}

// Render produces the stable, user-visible error string:
//
//	Unexpected '<symbol-or-"EOF">' at position <N>. Expecting one of [<label1>,<label2>,...]
//
// Merge accumulates one expected-label occurrence per forked branch, so the
// same label commonly appears more than once in the stored list (e.g. an Or
// of two alternatives that both expect "digit"); Render folds those
// duplicates away, preserving first-seen order, so the user sees each label
// once.
func (m Message[S]) Render() string {
	d := m.data()
	symStr := "EOF"
	if !d.isEOF {
		symStr = fmt.Sprintf("%v", d.symbol)
	}
	return fmt.Sprintf("Unexpected '%s' at position %d. Expecting one of [%s]",
		symStr, d.position, strings.Join(foldDuplicates(d.expected.ToSlice()), ","))
}

func foldDuplicates(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
