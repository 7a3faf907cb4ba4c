package cbb

import "testing"

func TestCursorEqualityIsAddressIdentity(t *testing.T) {
	b := New(8)
	cs := fill(b, "ACGT")
	again := b.Begin().Next()
	if cs[1] != again {
		t.Fatal("cursors addressing the same cell must compare equal")
	}
	if cs[1] == cs[2] {
		t.Fatal("cursors addressing different cells must not compare equal")
	}
}

func TestEndCursorIsZeroValue(t *testing.T) {
	var c Cursor
	if !c.IsEnd() {
		t.Fatal("zero Cursor must be End")
	}
	b := New(4)
	if b.Begin() != b.End() {
		t.Fatal("Begin on an empty buffer must equal End")
	}
}

func TestPrevNextAreInverse(t *testing.T) {
	b := New(4)
	fill(b, "ACGT")
	c := b.Begin().Next().Next() // 'G'
	if c.Cell().Base != 'G' {
		t.Fatalf("got %q, want G", c.Cell().Base)
	}
	if back := c.Prev(); back.Cell().Base != 'C' {
		t.Fatalf("Prev got %q, want C", back.Cell().Base)
	}
	if fwd := c.Next(); fwd.Cell().Base != 'T' {
		t.Fatalf("Next got %q, want T", fwd.Cell().Base)
	}
}

func TestLastMatchesReverseTraversal(t *testing.T) {
	b := New(4)
	fill(b, "ACGT")
	if last := b.Last(); last.Cell().Base != 'T' {
		t.Fatalf("Last got %q, want T", last.Cell().Base)
	}
}
