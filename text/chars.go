package text

import (
	"unicode"

	"github.com/jon-hanson/gparsec"
)

// Char parses a single rune equal to r, generalizing the teacher's
// byte-oriented Literal/Range primitives to Unicode codepoints.
func Char(r rune) gparsec.Parser[rune, rune] {
	return gparsec.Label(gparsec.Satisfy(func(c rune) bool { return c == r }), "'"+string(r)+"'")
}

// Digit parses a single Unicode decimal digit.
func Digit() gparsec.Parser[rune, rune] {
	return gparsec.Label(gparsec.Satisfy(unicode.IsDigit), "digit")
}

// Alpha parses a single Unicode letter.
func Alpha() gparsec.Parser[rune, rune] {
	return gparsec.Label(gparsec.Satisfy(unicode.IsLetter), "letter")
}

// AlphaNum parses a single Unicode letter or decimal digit.
func AlphaNum() gparsec.Parser[rune, rune] {
	return gparsec.Label(gparsec.Satisfy(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}), "alphanumeric")
}

// OneOf matches any single rune from options, returning that rune, in the
// spirit of the teacher's OneOf over bytes.
func OneOf(options string) gparsec.Parser[rune, rune] {
	set := []rune(options)
	return gparsec.Label(gparsec.Satisfy(func(r rune) bool {
		for _, o := range set {
			if o == r {
				return true
			}
		}
		return false
	}), "one of \""+options+"\"")
}

// NoneOf matches any single rune not in blacklist.
func NoneOf(blacklist string) gparsec.Parser[rune, rune] {
	set := []rune(blacklist)
	return gparsec.Label(gparsec.Satisfy(func(r rune) bool {
		for _, o := range set {
			if o == r {
				return false
			}
		}
		return true
	}), "none of \""+blacklist+"\"")
}

// Spaces skips zero or more Unicode whitespace runes, discarding them, the
// way the teacher's ManyDrop(OneOf(" \t\r\n")) does for its JSON grammar's
// "ws" rule.
func Spaces() gparsec.Parser[rune, struct{}] {
	return gparsec.SkipMany(gparsec.Satisfy(unicode.IsSpace))
}

// Str parses a literal string exactly, rune by rune, returning the literal
// on success. It generalizes the teacher's Literal from bytes to runes.
func Str(lit string) gparsec.Parser[rune, string] {
	p := gparsec.Return[rune, string]("")
	for _, want := range []rune(lit) {
		want := want
		p = gparsec.Bind(p, func(acc string) gparsec.Parser[rune, string] {
			return gparsec.Bind(Char(want), func(r rune) gparsec.Parser[rune, string] {
				return gparsec.Return[rune, string](acc + string(r))
			})
		})
	}
	return gparsec.Label(p, "\""+lit+"\"")
}
