// Package text supplies the character-level client parsers spec.md scopes
// out of the core engine: Digit, Alpha, AlphaNum, Char, Str, Int, Double,
// Regexp and Spaces, built on gparsec.Satisfy plus a rune-oriented stream
// (Regexp matches against the stream's remaining text directly). This package is a collaborator, not part of the engine -- it has
// no access to gparsec's unexported machinery and could equally have been
// written by a third party against the public API.
package text

import "github.com/jon-hanson/gparsec"

// RuneStream is an InputStream[rune] with line/column tracking, for
// Unicode-correct parsing and for locating a position by line and column
// (LineCol). The core engine's own InputStream has no notion
// of line/column; spec.md §3 scopes that as "a text specialisation" layered
// over the generic position() int, which is exactly the role RuneStream
// plays here.
type RuneStream struct {
	runes []rune
	pos   int
	lines []int // lines[i] is the 0-based line number of rune i
	cols  []int // cols[i] is the 0-based column of rune i
}

// NewRuneStream builds a RuneStream from the Unicode codepoints of s.
func NewRuneStream(s string) gparsec.InputStream[rune] {
	runes := []rune(s)
	lines := make([]int, len(runes))
	cols := make([]int, len(runes))
	line, col := 0, 0
	for i, r := range runes {
		lines[i] = line
		cols[i] = col
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return &RuneStream{runes: runes, lines: lines, cols: cols}
}

func (s *RuneStream) Position() int { return s.pos }

func (s *RuneStream) AtEnd() bool { return s.pos >= len(s.runes) }

func (s *RuneStream) Current() rune {
	if s.AtEnd() {
		panic("text: Current called on a stream at end of input")
	}
	return s.runes[s.pos]
}

func (s *RuneStream) Advance(n int) gparsec.InputStream[rune] {
	if n < 1 {
		panic("text: Advance requires n >= 1")
	}
	return &RuneStream{runes: s.runes, lines: s.lines, cols: s.cols, pos: s.pos + n}
}

// LineCol returns the 0-based line and column of the stream's current
// position, or of the position just past the end of input once AtEnd.
func (s *RuneStream) LineCol() (line, col int) {
	if s.pos < len(s.lines) {
		return s.lines[s.pos], s.cols[s.pos]
	}
	if len(s.lines) == 0 {
		return 0, 0
	}
	last := len(s.lines) - 1
	line, col = s.lines[last], s.cols[last]
	if s.runes[last] == '\n' {
		return line + 1, 0
	}
	return line, col + 1
}

// Remaining returns the unconsumed suffix of the stream as a string, used by
// Regexp to anchor a standard-library regular expression at the current
// position without re-scanning from the start of input.
func (s *RuneStream) Remaining() string {
	return string(s.runes[s.pos:])
}
