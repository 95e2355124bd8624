package gparsec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func isA(b byte) bool { return b == 'a' }
func isB(b byte) bool { return b == 'b' }
func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func TestReturnIsEmptyAndOk(t *testing.T) {
	in := NewByteStream("xyz")
	c := Return[byte, int](42)(in)
	if c.IsConsumed() {
		t.Fatalf("Return must be Empty")
	}
	r := c.Reply()
	if !r.IsOk() || r.Value() != 42 {
		t.Fatalf("Return(42) = %+v, want Ok(42)", r)
	}
	if r.Remainder().Position() != in.Position() {
		t.Fatalf("Return must not advance the stream")
	}
}

func TestFailIsEmptyAndErr(t *testing.T) {
	in := NewByteStream("xyz")
	c := Fail[byte, int]()(in)
	if c.IsConsumed() {
		t.Fatalf("Fail must be Empty")
	}
	if c.Reply().IsOk() {
		t.Fatalf("Fail must be Err")
	}
}

func TestSatisfyMatchConsumes(t *testing.T) {
	in := NewByteStream("ab")
	c := Satisfy(isA)(in)
	if !c.IsConsumed() {
		t.Fatalf("Satisfy on a matching symbol must be Consumed")
	}
	r := c.Reply()
	if !r.IsOk() || r.Value() != 'a' {
		t.Fatalf("Satisfy(isA) on \"ab\" = %+v, want Ok('a')", r)
	}
	if r.Remainder().Position() != 1 {
		t.Fatalf("Satisfy must advance by one symbol, got position %d", r.Remainder().Position())
	}
}

func TestSatisfyMismatchIsEmptyErr(t *testing.T) {
	in := NewByteStream("ab")
	c := Satisfy(isB)(in)
	if c.IsConsumed() {
		t.Fatalf("Satisfy on a non-matching symbol must be Empty")
	}
	if c.Reply().IsOk() {
		t.Fatalf("Satisfy on a non-matching symbol must be Err")
	}
}

func TestSatisfyAtEndIsEmptyErr(t *testing.T) {
	in := NewByteStream("")
	c := Satisfy(isA)(in)
	if c.IsConsumed() {
		t.Fatalf("Satisfy at end of input must be Empty")
	}
	if c.Reply().IsOk() {
		t.Fatalf("Satisfy at end of input must be Err")
	}
}

func TestEofNeverConsumes(t *testing.T) {
	atEnd := NewByteStream("")
	notEnd := NewByteStream("x")

	c1 := Eof[byte]()(atEnd)
	if c1.IsConsumed() || !c1.Reply().IsOk() {
		t.Fatalf("Eof at end must be Empty Ok")
	}
	c2 := Eof[byte]()(notEnd)
	if c2.IsConsumed() || c2.Reply().IsOk() {
		t.Fatalf("Eof before end must be Empty Err")
	}
}

func TestBindLeftIdentity(t *testing.T) {
	f := func(x int) Parser[byte, int] { return Return[byte, int](x * 2) }
	in := NewByteStream("z")

	r1 := Bind(Return[byte, int](21), f)(in).Reply()
	r2 := f(21)(in).Reply()
	if r1.Value() != r2.Value() || r1.IsOk() != r2.IsOk() {
		t.Fatalf("left identity violated: bind(return(a),f)=%+v f(a)=%+v", r1, r2)
	}
}

func TestBindRightIdentity(t *testing.T) {
	p := Satisfy(isA)
	in := NewByteStream("ab")

	r1 := Bind(p, func(x byte) Parser[byte, byte] { return Return[byte, byte](x) })(in).Reply()
	r2 := p(in).Reply()
	if r1.Value() != r2.Value() || r1.IsOk() != r2.IsOk() {
		t.Fatalf("right identity violated: bind(p,return)=%+v p=%+v", r1, r2)
	}
}

func TestBindAssociativity(t *testing.T) {
	p := Satisfy(isA)
	f := func(x byte) Parser[byte, int] { return Return[byte, int](int(x)) }
	g := func(x int) Parser[byte, int] { return Return[byte, int](x + 1) }
	in := NewByteStream("ab")

	r1 := Bind(Bind(p, f), g)(in).Reply()
	r2 := Bind(p, func(x byte) Parser[byte, int] { return Bind(f(x), g) })(in).Reply()
	if r1.Value() != r2.Value() || r1.IsOk() != r2.IsOk() {
		t.Fatalf("associativity violated: %+v vs %+v", r1, r2)
	}
}

func TestBindConsumedPTaintsWhole(t *testing.T) {
	p := Satisfy(isA)
	in := NewByteStream("ab")
	c := Bind(p, func(byte) Parser[byte, byte] { return Return[byte, byte]('z') })(in)
	if !c.IsConsumed() {
		t.Fatalf("Bind must be Consumed when p is Consumed, regardless of f")
	}
}

func TestOrCommitsAfterConsumed(t *testing.T) {
	// or(string("abcd"), string("abef")) on "abef": the first branch consumes
	// "ab" before failing, so Or commits and does not try the second branch.
	abcd := seqLiteral("abcd")
	abef := seqLiteral("abef")
	in := NewByteStream("abef")

	c := Or(abcd, abef)(in)
	if !c.IsConsumed() {
		t.Fatalf("Or must report Consumed once the first branch has consumed input")
	}
	if c.Reply().IsOk() {
		t.Fatalf("Or must fail: the committed first branch does not match \"abef\"")
	}
}

func TestOrWithAttemptBacktracks(t *testing.T) {
	abcd := seqLiteral("abcd")
	abef := seqLiteral("abef")
	in := NewByteStream("abef")

	c := Or(Attempt(abcd), abef)(in)
	r := c.Reply()
	if !r.IsOk() || string(r.Value()) != "abef" {
		t.Fatalf("Or(Attempt(abcd), abef) on \"abef\" = %+v, want Ok(\"abef\")", r)
	}
}

func TestOrMergesExpectedOnEmptyEmpty(t *testing.T) {
	p := Label(Satisfy(isA), "a")
	q := Label(Satisfy(isB), "b")
	in := NewByteStream("c")

	c := Or(p, q)(in)
	if c.IsConsumed() {
		t.Fatalf("Or of two Empty failures must be Empty")
	}
	r := c.Reply()
	if r.IsOk() {
		t.Fatalf("Or(a,b) on \"c\" must fail")
	}
	if diff := cmp.Diff([]string{"a", "b"}, r.Msg().Expected()); diff != "" {
		t.Errorf("merged Expected() mismatch (-want +got):\n%s", diff)
	}
}

func TestAttemptConvertsConsumedErrToEmpty(t *testing.T) {
	abcd := seqLiteral("abcd")
	in := NewByteStream("abxx")
	c := Attempt(abcd)(in)
	if c.IsConsumed() {
		t.Fatalf("Attempt must turn a Consumed Err into an Empty Err")
	}
	if c.Reply().IsOk() {
		t.Fatalf("the literal does not match, Attempt must still fail")
	}
}

func TestAttemptPassesThroughConsumedOk(t *testing.T) {
	abcd := seqLiteral("abcd")
	in := NewByteStream("abcd")
	c := Attempt(abcd)(in)
	if !c.IsConsumed() {
		t.Fatalf("Attempt must not alter a Consumed Ok")
	}
	if !c.Reply().IsOk() {
		t.Fatalf("expected success")
	}
}

func TestLabelRelabelsEmptyFailure(t *testing.T) {
	in := NewByteStream("x")
	c := Label(Satisfy(isA), "the letter a")(in)
	if c.IsConsumed() {
		t.Fatalf("failure here must be Empty")
	}
	if diff := cmp.Diff([]string{"the letter a"}, c.Reply().Msg().Expected()); diff != "" {
		t.Errorf("Expected() mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelPassesThroughConsumedUnchanged(t *testing.T) {
	in := NewByteStream("ax")
	inner := Satisfy(isA)
	labeled := Label(inner, "the letter a")

	gotInner := inner(in).Reply().Msg().Expected()
	gotLabeled := labeled(in).Reply().Msg().Expected()
	if diff := cmp.Diff(gotInner, gotLabeled); diff != "" {
		t.Errorf("Label must leave a Consumed reply's message unchanged (-inner +labeled):\n%s", diff)
	}
}

// seqLiteral builds a parser matching a literal byte string exactly, in the
// spirit of the teacher's Literal: a left fold of Satisfy over Then.
func seqLiteral(lit string) Parser[byte, []byte] {
	return func(in InputStream[byte]) Consumed[byte, []byte] {
		p := Return[byte, []byte](nil)
		for i := 0; i < len(lit); i++ {
			b := lit[i]
			p = Bind(p, func(acc []byte) Parser[byte, []byte] {
				return Bind(Satisfy(func(c byte) bool { return c == b }), func(c byte) Parser[byte, []byte] {
					return Return[byte, []byte](append(append([]byte{}, acc...), c))
				})
			})
		}
		return p(in)
	}
}
