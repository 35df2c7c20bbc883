package lineedit

import "testing"

func TestSplicer_SingleReplace(t *testing.T) {
	s := New("[[Hund]]")
	if !s.Replace(0, 8, "[[|Hund]]") {
		t.Fatal("Replace should succeed")
	}
	if got := s.Result(); got != "[[|Hund]]" {
		t.Errorf("Result() = %q, want %q", got, "[[|Hund]]")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestSplicer_OffsetsStayOriginal(t *testing.T) {
	// Two links scanned on the original line; the first replacement grows the
	// line by one byte, the second still uses its original offsets.
	line := "[[A]] x [[B]]"
	s := New(line)

	if got := s.Current(8, 13); got != "[[B]]" {
		t.Fatalf("Current(8, 13) = %q before any edit, want %q", got, "[[B]]")
	}

	if !s.Replace(0, 5, "[[|A]]") {
		t.Fatal("first Replace should succeed")
	}
	if got := s.Current(8, 13); got != "[[B]]" {
		t.Fatalf("Current(8, 13) = %q after first edit, want %q", got, "[[B]]")
	}
	if !s.Replace(8, 13, "[[|B]]") {
		t.Fatal("second Replace should succeed")
	}

	if got := s.Result(); got != "[[|A]] x [[|B]]" {
		t.Errorf("Result() = %q, want %q", got, "[[|A]] x [[|B]]")
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
}

func TestSplicer_ShrinkingReplace(t *testing.T) {
	s := New("aa [[Hund]] bb [[Katze]]")
	if !s.Replace(3, 11, "[[H]]") {
		t.Fatal("first Replace should succeed")
	}
	if got := s.Current(15, 24); got != "[[Katze]]" {
		t.Fatalf("Current after shrink = %q, want %q", got, "[[Katze]]")
	}
	if !s.Replace(15, 24, "[[|Katze]]") {
		t.Fatal("second Replace should succeed")
	}
	if got := s.Result(); got != "aa [[H]] bb [[|Katze]]" {
		t.Errorf("Result() = %q, want %q", got, "aa [[H]] bb [[|Katze]]")
	}
}

func TestSplicer_OutOfBounds(t *testing.T) {
	s := New("short")
	if s.Replace(3, 10, "x") {
		t.Error("Replace past end of line should fail")
	}
	if s.Replace(-1, 2, "x") {
		t.Error("Replace with negative start should fail")
	}
	if s.Result() != "short" {
		t.Errorf("failed replaces must not modify the line, got %q", s.Result())
	}
	if s.Changed() {
		t.Error("Changed() should be false after failed replaces")
	}
	if s.Current(3, 10) != "" {
		t.Error("Current out of bounds should return empty string")
	}
}
