package sequence

import "testing"

// newTargetSeq builds a one-chromosome store to use as a Replace target,
// mirroring how the original program supplies new content as a sequence
// of its own rather than a raw string.
func newTargetSeq(t *testing.T, letters string) *Store {
	t.Helper()
	return mustStore(t, []Record{{Name: "target", Bases: []byte(letters)}})
}

// S2 - pure insert.
func TestReplacePureInsert(t *testing.T) {
	s := mustStore(t, []Record{{Name: "c1", Bases: []byte("ACGT")}})
	nn := newTargetSeq(t, "NN")

	orig := s.PositiveBegin(0)
	s.Subscribe(&orig)

	if err := s.Replace(s.PositiveBegin(0), 0, nn.PositiveBegin(0), 2, nil, nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, _ := collectPositive(s, 0)
	if string(got) != "NNACGT" {
		t.Fatalf("got %q, want NNACGT", got)
	}

	it := s.PositiveBegin(0)
	if it.OriginalPosition() != -1 || it.Next().OriginalPosition() != -1 {
		t.Fatal("inserted cells must carry the deleted-position sentinel")
	}

	// source_len == 0: the pre-insertion subscriber at index 0 is not
	// relocated; it still addresses the original 'A' cell, now at index 2.
	if orig.Letter() != 'A' {
		t.Fatalf("subscriber should still address the original A cell, got %q", orig.Letter())
	}
}

// S3 - pure delete.
func TestReplacePureDelete(t *testing.T) {
	s := mustStore(t, []Record{{Name: "c1", Bases: []byte("ACGT")}})
	empty := newTargetSeq(t, "")

	atC := s.PositiveBegin(0).Next() // 'C'
	s.Subscribe(&atC)

	source := s.PositiveBegin(0).Next() // 'C'
	if err := s.Replace(source, 2, empty.PositiveBegin(0), 0, nil, nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, _ := collectPositive(s, 0)
	if string(got) != "AT" {
		t.Fatalf("got %q, want AT", got)
	}
	if atC.Letter() != 'T' {
		t.Fatalf("subscriber at deleted C should relocate to T, got %q", atC.Letter())
	}
}

// S4 - splice with notifications.
func TestReplaceSpliceWithNotifications(t *testing.T) {
	s := mustStore(t, []Record{{Name: "c1", Bases: []byte("ACGT")}})
	tt := newTargetSeq(t, "TT")

	inRange := s.PositiveBegin(0).Next() // 'C', inside the removed range
	s.Subscribe(&inRange)

	var beforeSpelled, afterSpelled string
	before := func(b, e StrandIterator) {
		for it := b; it != e; it = it.Next() {
			beforeSpelled += string(it.Letter())
		}
	}
	after := func(b, e StrandIterator) {
		for it := b; it != e; it = it.Next() {
			afterSpelled += string(it.Letter())
		}
	}

	source := s.PositiveBegin(0).Next() // 'C'
	if err := s.Replace(source, 2, tt.PositiveBegin(0), 2, before, after); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if beforeSpelled != "CG" {
		t.Fatalf("before saw %q, want CG", beforeSpelled)
	}
	if afterSpelled != "TT" {
		t.Fatalf("after saw %q, want TT", afterSpelled)
	}
	if inRange.Letter() != 'T' || inRange.OriginalPosition() != -1 {
		t.Fatal("subscriber inside the removed range must land on the first inserted cell")
	}
}

// S4 variant at chunk capacity 16: the same splice scenario (without
// notification callbacks), but against a store whose underlying buffer splits/reclaims
// at a 16-cell chunk boundary instead of the default, so relocation is
// also exercised across that boundary.
func TestReplaceSpliceAcrossCapacity16Boundary(t *testing.T) {
	bases := []byte("ACGTACGTACGTACGTACGTACGT") // 25 cells: crosses capacity 16 at least once
	s, err := NewStore([]Record{{Name: "c1", Bases: bases}}, 16)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	tt, err := NewStore([]Record{{Name: "target", Bases: []byte("TT")}}, 16)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	// the replaced range straddles the chunk split that occurs around
	// the 16th inserted base.
	source := s.PositiveBegin(0)
	for i := 0; i < 15; i++ {
		source = source.Next()
	}
	inRange := source.Next() // one cell into the removed range
	s.Subscribe(&inRange)

	if err := s.Replace(source, 2, tt.PositiveBegin(0), 2, nil, nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, _ := collectPositive(s, 0)
	if len(got) != len(bases) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(bases))
	}
	if inRange.Letter() != 'T' || inRange.OriginalPosition() != -1 {
		t.Fatal("subscriber inside the removed range must land on the first inserted cell")
	}
}

// S5 - negative splice.
func TestReplaceNegativeSplice(t *testing.T) {
	s := mustStore(t, []Record{{Name: "c1", Bases: []byte("ACGT")}})
	src := s.NegativeBegin(0).Next() // negative order from 'T': T,G -> second cell is 'G'
	// src currently addresses 'G' viewed negatively (complement 'C'); replace
	// the 2-cell negative range [G,C] (physical C,G) with a 3-cell negative source.
	repl := newTargetSeq(t, "AAA")

	if err := s.Replace(src, 2, repl.NegativeBegin(0), 3, nil, nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, _ := collectPositive(s, 0)
	if len(got) != 5 {
		t.Fatalf("got %q (len %d), want length 5", got, len(got))
	}
}

// S6 - cross-separator rejection.
func TestReplaceCrossSeparatorRejected(t *testing.T) {
	s := mustStore(t, []Record{{Name: "a", Bases: []byte("ACGT")}, {Name: "b", Bases: []byte("ACGT")}})
	empty := newTargetSeq(t, "")

	// start at the last base of chromosome a; a 2-cell range from there
	// runs into the separator ending a.
	source := s.PositiveBegin(0).Next().Next().Next()

	wantTotal := s.TotalSize()
	err := s.Replace(source, 2, empty.PositiveBegin(0), 0, nil, nil)
	if err != ErrCrossChromosome {
		t.Fatalf("err = %v, want ErrCrossChromosome", err)
	}
	if s.TotalSize() != wantTotal {
		t.Fatalf("TotalSize changed after a rejected Replace: got %d, want %d", s.TotalSize(), wantTotal)
	}
}

func TestReplaceRejectsSeparatorInTarget(t *testing.T) {
	s := mustStore(t, []Record{{Name: "a", Bases: []byte("AC")}, {Name: "b", Bases: []byte("GT")}})
	// target spans across its own chromosome boundary by asking for more
	// cells than chromosome "a" has.
	source := s.PositiveBegin(1)
	err := s.Replace(source, 0, s.PositiveBegin(0), 3, nil, nil)
	if err != ErrSeparatorInTarget {
		t.Fatalf("err = %v, want ErrSeparatorInTarget", err)
	}
}

func TestReplacePanicsOnReentry(t *testing.T) {
	s := mustStore(t, []Record{{Name: "c1", Bases: []byte("ACGT")}})
	nn := newTargetSeq(t, "N")

	defer func() {
		if r := recover(); r != ErrReentrantReplace {
			t.Fatalf("recover() = %v, want ErrReentrantReplace", r)
		}
	}()

	before := func(b, e StrandIterator) {
		_ = s.Replace(s.PositiveBegin(0), 0, nn.PositiveBegin(0), 1, nil, nil)
	}
	_ = s.Replace(s.PositiveBegin(0), 0, nn.PositiveBegin(0), 1, before, nil)
	t.Fatal("expected panic, got none")
}

func TestGlobalIndexStableAcrossUnrelatedReplace(t *testing.T) {
	s := mustStore(t, []Record{{Name: "c1", Bases: []byte("ACGTACGT")}})
	nn := newTargetSeq(t, "NN")

	tail := s.PositiveBegin(0).Next().Next().Next().Next().Next().Next().Next() // last 'T'
	id := tail.ElementID()

	if err := s.Replace(s.PositiveBegin(0), 0, nn.PositiveBegin(0), 2, nil, nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	tail2 := s.PositiveEnd(0).Base().Prev()
	if (StrandIterator{dir: Positive, base: tail2}).ElementID() != id {
		t.Fatal("global index of an untouched cell must survive an unrelated Replace")
	}
}
