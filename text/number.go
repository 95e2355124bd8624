package text

import (
	"strconv"

	"github.com/jon-hanson/gparsec"
)

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

func sign() gparsec.Parser[rune, rune] {
	return gparsec.Option(OneOf("+-"), '+')
}

// Int parses an optionally-signed decimal integer literal (spec.md §6's
// "intr"), built from Satisfy/Many1/Option exactly as the teacher's JSON
// example builds its "number" rule.
func Int() gparsec.Parser[rune, int64] {
	return gparsec.Label(gparsec.Bind(sign(), func(s rune) gparsec.Parser[rune, int64] {
		return gparsec.Bind(gparsec.Many1(gparsec.Satisfy(isDigitRune)), func(digits []rune) gparsec.Parser[rune, int64] {
			n, err := strconv.ParseInt(string(digits), 10, 64)
			if err != nil {
				return gparsec.Fail[rune, int64]()
			}
			if s == '-' {
				n = -n
			}
			return gparsec.Return[rune, int64](n)
		})
	}), "integer")
}

// Double parses an optionally-signed decimal floating-point literal
// (spec.md §6's "dble"): an integer part, an optional fractional part, and
// an optional exponent.
func Double() gparsec.Parser[rune, float64] {
	frac := gparsec.Option(
		gparsec.Bind(Char('.'), func(rune) gparsec.Parser[rune, string] {
			return gparsec.Bind(gparsec.Many1(gparsec.Satisfy(isDigitRune)), func(digits []rune) gparsec.Parser[rune, string] {
				return gparsec.Return[rune, string]("." + string(digits))
			})
		}),
		"",
	)
	exp := gparsec.Option(
		gparsec.Bind(OneOf("eE"), func(e rune) gparsec.Parser[rune, string] {
			return gparsec.Bind(sign(), func(s rune) gparsec.Parser[rune, string] {
				return gparsec.Bind(gparsec.Many1(gparsec.Satisfy(isDigitRune)), func(digits []rune) gparsec.Parser[rune, string] {
					return gparsec.Return[rune, string](string(e) + string(s) + string(digits))
				})
			})
		}),
		"",
	)

	return gparsec.Label(gparsec.Bind(sign(), func(s rune) gparsec.Parser[rune, float64] {
		return gparsec.Bind(gparsec.Many1(gparsec.Satisfy(isDigitRune)), func(whole []rune) gparsec.Parser[rune, float64] {
			return gparsec.Bind(frac, func(fracPart string) gparsec.Parser[rune, float64] {
				return gparsec.Bind(exp, func(expPart string) gparsec.Parser[rune, float64] {
					text := string(whole) + fracPart + expPart
					f, err := strconv.ParseFloat(text, 64)
					if err != nil {
						return gparsec.Fail[rune, float64]()
					}
					if s == '-' {
						f = -f
					}
					return gparsec.Return[rune, float64](f)
				})
			})
		})
	}), "number")
}
