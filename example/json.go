package example

import (
	"github.com/jon-hanson/gparsec"
	"github.com/jon-hanson/gparsec/text"
)

// Value is a parsed JSON value. Exactly one of the fields is meaningful,
// selected by Kind; this mirrors the teacher's own tagged-union fixture type
// for its JSON test grammar, generalized from interface{} to a concrete
// sum-ish struct so callers don't need type assertions.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Str    string
	Array  []Value
	Object map[string]Value
}

// ValueKind discriminates Value's payload.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func jsonLexeme[A any](p gparsec.Parser[rune, A]) gparsec.Parser[rune, A] {
	return gparsec.Bind(p, func(x A) gparsec.Parser[rune, A] {
		return gparsec.Then(text.Spaces(), gparsec.Return[rune, A](x))
	})
}

func jsonSymbol(r rune) gparsec.Parser[rune, rune] {
	return jsonLexeme(text.Char(r))
}

func jsonNull() gparsec.Parser[rune, Value] {
	return gparsec.Bind(jsonLexeme(text.Str("null")), func(string) gparsec.Parser[rune, Value] {
		return gparsec.Return[rune, Value](Value{Kind: KindNull})
	})
}

func jsonBool() gparsec.Parser[rune, Value] {
	t := gparsec.Bind(jsonLexeme(text.Str("true")), func(string) gparsec.Parser[rune, Value] {
		return gparsec.Return[rune, Value](Value{Kind: KindBool, Bool: true})
	})
	f := gparsec.Bind(jsonLexeme(text.Str("false")), func(string) gparsec.Parser[rune, Value] {
		return gparsec.Return[rune, Value](Value{Kind: KindBool, Bool: false})
	})
	return gparsec.Or(t, f)
}

func jsonNumber() gparsec.Parser[rune, Value] {
	return gparsec.Bind(jsonLexeme(text.Double()), func(n float64) gparsec.Parser[rune, Value] {
		return gparsec.Return[rune, Value](Value{Kind: KindNumber, Number: n})
	})
}

// jsonStringLit parses a double-quoted JSON string literal's contents,
// without the surrounding quotes, supporting the \", \\ and \/ escapes (a
// deliberately small subset of the full JSON escape grammar -- Unicode
// \uXXXX escapes are out of scope here the same way they were left out of
// the teacher's own json_test.go fixture).
func jsonStringLit() gparsec.Parser[rune, string] {
	escaped := gparsec.Bind(text.Char('\\'), func(rune) gparsec.Parser[rune, rune] {
		return text.OneOf("\"\\/")
	})
	plain := text.NoneOf("\"\\")
	ch := gparsec.Or(escaped, plain)
	body := gparsec.Many(ch)
	quoted := gparsec.Between(text.Char('"'), text.Char('"'), body)
	return gparsec.Bind(quoted, func(runes []rune) gparsec.Parser[rune, string] {
		return gparsec.Return[rune, string](string(runes))
	})
}

func jsonString() gparsec.Parser[rune, Value] {
	return gparsec.Bind(jsonLexeme(jsonStringLit()), func(s string) gparsec.Parser[rune, Value] {
		return gparsec.Return[rune, Value](Value{Kind: KindString, Str: s})
	})
}

func jsonArray(value gparsec.Parser[rune, Value]) gparsec.Parser[rune, Value] {
	elems := gparsec.SepBy(value, jsonSymbol(','))
	bracketed := gparsec.Between(jsonSymbol('['), jsonSymbol(']'), elems)
	return gparsec.Bind(bracketed, func(vs []Value) gparsec.Parser[rune, Value] {
		return gparsec.Return[rune, Value](Value{Kind: KindArray, Array: vs})
	})
}

type jsonMember struct {
	key string
	val Value
}

func jsonObject(value gparsec.Parser[rune, Value]) gparsec.Parser[rune, Value] {
	member := gparsec.Bind(jsonLexeme(jsonStringLit()), func(key string) gparsec.Parser[rune, jsonMember] {
		return gparsec.Then(jsonSymbol(':'), gparsec.Bind(value, func(v Value) gparsec.Parser[rune, jsonMember] {
			return gparsec.Return[rune, jsonMember](jsonMember{key: key, val: v})
		}))
	})
	members := gparsec.SepBy(member, jsonSymbol(','))
	braced := gparsec.Between(jsonSymbol('{'), jsonSymbol('}'), members)
	return gparsec.Bind(braced, func(ms []jsonMember) gparsec.Parser[rune, Value] {
		obj := make(map[string]Value, len(ms))
		for _, m := range ms {
			obj[m.key] = m.val
		}
		return gparsec.Return[rune, Value](Value{Kind: KindObject, Object: obj})
	})
}

// JSONValue parses a single JSON value: null, a boolean, a number, a string,
// an array, or an object. Arrays and objects recurse back into JSONValue for
// their elements/member values, so the grammar is built through a
// Fwd[rune, Value] forward reference, the way the core engine expects
// mutually recursive grammars to be wired (spec.md §4.6), rather than the
// teacher's direct top-level mutual recursion (the teacher's Grammar type
// can reference a not-yet-defined var directly because it defers evaluation
// to call time; gparsec.Parser is a plain func value with no such
// indirection built in).
func JSONValue() gparsec.Parser[rune, Value] {
	valueFwd := gparsec.NewFwd[rune, Value]()
	value := valueFwd.Parser()

	composite := gparsec.Choice(
		jsonNull(),
		jsonBool(),
		jsonNumber(),
		jsonString(),
		jsonArray(value),
		jsonObject(value),
	)
	valueFwd.Set(composite)
	return gparsec.Then(text.Spaces(), composite)
}

// ParseJSON parses s as a single JSON value, requiring the entire input
// (modulo trailing whitespace) to be consumed.
func ParseJSON(s string) gparsec.Reply[rune, Value] {
	top := gparsec.Bind(JSONValue(), func(v Value) gparsec.Parser[rune, Value] {
		return gparsec.Then(gparsec.Eof[rune](), gparsec.Return[rune, Value](v))
	})
	return gparsec.Parse(top, text.NewRuneStream(s))
}
