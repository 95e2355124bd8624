package gparsec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jon-hanson/gparsec/internal/clist"
)

func TestMessageRenderUnexpectedSymbol(t *testing.T) {
	in := NewByteStream("abc")
	msg := messageAt[byte](in, clist.Nil[string]())
	got := msg.Render()
	want := "Unexpected '97' at position 0. Expecting one of []"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestMessageRenderEOF(t *testing.T) {
	in := NewByteStream("")
	msg := messageAt[byte](in, clist.Nil[string]())
	got := msg.Render()
	want := "Unexpected 'EOF' at position 0. Expecting one of []"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestMessageMergeOrdersSelfThenOther(t *testing.T) {
	in := NewByteStream("x")
	m1 := messageAt[byte](in, clist.Nil[string]()).Expect("a")
	m2 := messageAt[byte](in, clist.Nil[string]()).Expect("b")
	merged := m1.Merge(m2)

	if diff := cmp.Diff([]string{"a", "b"}, merged.Expected()); diff != "" {
		t.Errorf("Expected() mismatch (-want +got):\n%s", diff)
	}
	if merged.Position() != m1.Position() {
		t.Errorf("Merge() position = %d, want %d (self's)", merged.Position(), m1.Position())
	}
}

func TestMessageMergeDoesNotForceOperands(t *testing.T) {
	forced := false
	in := NewByteStream("x")
	boom := newMessage(func() messageData[byte] {
		forced = true
		return messageData[byte]{position: in.Position()}
	})
	m1 := messageAt[byte](in, clist.Nil[string]()).Expect("a")
	_ = m1.Merge(boom)
	if forced {
		t.Errorf("Merge forced its operand eagerly; it must stay lazy until read")
	}
}

func TestMessageRenderFoldsDuplicateLabels(t *testing.T) {
	in := NewByteStream("x")
	m1 := messageAt[byte](in, clist.Nil[string]()).Expect("digit")
	m2 := messageAt[byte](in, clist.Nil[string]()).Expect("digit")
	merged := m1.Merge(m2)

	if diff := cmp.Diff([]string{"digit", "digit"}, merged.Expected()); diff != "" {
		t.Errorf("Expected() mismatch (-want +got):\n%s", diff)
	}
	got := merged.Render()
	want := "Unexpected '120' at position 0. Expecting one of [digit]"
	if got != want {
		t.Errorf("Render() = %q, want %q (duplicates must be folded)", got, want)
	}
}

func TestMessageExpectReplacesNotAppends(t *testing.T) {
	in := NewByteStream("x")
	m := messageAt[byte](in, clist.Nil[string]()).Expect("first")
	m = m.Expect("second")
	if diff := cmp.Diff([]string{"second"}, m.Expected()); diff != "" {
		t.Errorf("Expect() mismatch (-want +got):\n%s", diff)
	}
}
