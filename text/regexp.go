package text

import (
	"regexp"

	"github.com/jon-hanson/gparsec"
)

// Regexp parses text matching pattern, anchored at the stream's current
// position, returning the matched substring. The core engine has no regular
// expression facility of its own (and none of the retrieved example repos
// bring a third-party regex engine to bear on parsing); Go's standard
// library regexp -- anchored with a leading "^" against the stream's
// unconsumed suffix -- is the obvious, uncontested choice here.
func Regexp(pattern string) gparsec.Parser[rune, string] {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	base := func(in gparsec.InputStream[rune]) gparsec.Consumed[rune, string] {
		rs, ok := in.(*RuneStream)
		if !ok {
			panic("text: Regexp requires a *RuneStream")
		}
		loc := re.FindStringIndex(rs.Remaining())
		if loc == nil || loc[0] != 0 {
			return gparsec.EmptyOf(gparsec.ErrReply[rune, string](gparsec.MessageAt(in)))
		}
		matched := rs.Remaining()[:loc[1]]
		n := len([]rune(matched))
		if n == 0 {
			return gparsec.EmptyOf(gparsec.OkReply[rune, string](matched, in, gparsec.MessageAt(in)))
		}
		next := in.Advance(n)
		return gparsec.ConsumedOf(func() gparsec.Reply[rune, string] {
			return gparsec.OkReply[rune, string](matched, next, gparsec.MessageAt(next))
		})
	}
	return gparsec.Label(base, "/"+pattern+"/")
}
