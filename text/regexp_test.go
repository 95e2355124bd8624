package text

import "testing"

func TestRegexpMatchesAnchoredAtCurrentPosition(t *testing.T) {
	r := parseRunes(t, Regexp(`[a-z]+[0-9]*`), "abc123 rest")
	got, err := r.GetResult()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc123" {
		t.Errorf("got %q, want %q", got, "abc123")
	}
	if r.Remainder().Position() != len([]rune("abc123")) {
		t.Errorf("remainder position = %d, want %d", r.Remainder().Position(), len([]rune("abc123")))
	}
}

func TestRegexpFailsWhenNoMatchAtPosition(t *testing.T) {
	if _, err := parseRunes(t, Regexp(`[0-9]+`), "abc").GetResult(); err == nil {
		t.Fatal("expected an error, got none")
	}
}

func TestRegexpDoesNotMatchLaterInInput(t *testing.T) {
	// The pattern matches "123" somewhere in the middle, but Regexp is
	// anchored at the stream's current position, so it must not skip ahead.
	if _, err := parseRunes(t, Regexp(`[0-9]+`), "abc123").GetResult(); err == nil {
		t.Fatal("expected an error because the match is not at position 0")
	}
}

func TestRegexpCanMatchEmptyString(t *testing.T) {
	r := parseRunes(t, Regexp(`[0-9]*`), "abc")
	got, err := r.GetResult()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty match", got)
	}
	if r.Remainder().Position() != 0 {
		t.Errorf("remainder position = %d, want 0", r.Remainder().Position())
	}
}

func TestRegexpSequentialMatchesAdvanceStream(t *testing.T) {
	in := NewRuneStream("12ab")
	p := Regexp(`[0-9]+`)
	c := p(in)
	first, err := c.Reply().GetResult()
	if err != nil {
		t.Fatalf("first match: %v", err)
	}
	if first != "12" {
		t.Fatalf("first match = %q, want \"12\"", first)
	}
	second := Regexp(`[a-z]+`)(c.Reply().Remainder())
	v, err := second.Reply().GetResult()
	if err != nil {
		t.Fatalf("second match: %v", err)
	}
	if v != "ab" {
		t.Errorf("second match = %q, want \"ab\"", v)
	}
}
