package sequence

import "github.com/mpenrose/syntenystore/internal/cbb"

// Record is one chromosome's raw input: a name and its letters in 5' to
// 3' order. Letters outside A/C/G/T are coerced to the unknown-base
// sentinel at construction.
type Record struct {
	Name  string
	Bases []byte
}

// NotifyFunc is a Replace notification callback. It may read the store
// through the range it is given but must not mutate it or call Replace.
type NotifyFunc func(begin, end StrandIterator)

// Store owns one chunked bidirectional buffer holding every chromosome's
// bases concatenated and separator-delimited, per-chromosome boundary
// cursors, and the subscriber registry Replace consults for relocation.
type Store struct {
	buf *cbb.Buffer

	// precedingSep[i] is the buffer cursor at the separator immediately
	// before chromosome i's first base, or the zero (End) cursor for
	// chromosome 0, which has no leading separator.
	precedingSep []cbb.Cursor
	// followingSep[i] is the buffer cursor at the separator immediately
	// after chromosome i's last base. Every chromosome, including the
	// last, is separator-terminated.
	followingSep []cbb.Cursor

	registry  *subscriberRegistry
	inReplace bool
}

// NewStore builds a store from records, assigning each chromosome's
// bases original positions 0..len(Bases)-1. capacity sets the
// underlying buffer's per-chunk cell capacity (0 selects cbb.DefaultCapacity).
func NewStore(records []Record, capacity int) (*Store, error) {
	positions := make([][]int64, len(records))
	for i, r := range records {
		p := make([]int64, len(r.Bases))
		for j := range p {
			p[j] = int64(j)
		}
		positions[i] = p
	}
	return NewStoreWithPositions(records, positions, capacity)
}

// NewStoreWithPositions builds a store from records whose letters are a
// cleaned or projected view of raw input, supplying an explicit original
// position per base. len(positions[i]) must equal len(records[i].Bases).
func NewStoreWithPositions(records []Record, positions [][]int64, capacity int) (*Store, error) {
	var total int
	for _, r := range records {
		total += len(r.Bases)
	}
	if total > MaxInputBytes {
		return nil, ErrInputTooLarge
	}

	s := &Store{
		buf:          cbb.New(capacity),
		precedingSep: make([]cbb.Cursor, len(records)),
		followingSep: make([]cbb.Cursor, len(records)),
		registry:     newRegistry(),
	}

	// precedingSep[0] stays the zero Cursor (End): chromosome 0 has no
	// leading separator.
	for i, r := range records {
		if i > 0 {
			s.precedingSep[i] = s.followingSep[i-1]
		}
		for j, base := range r.Bases {
			s.buf.InsertBefore(s.buf.End(), canonicalBase(base), positions[i][j])
		}
		s.followingSep[i] = s.buf.InsertBefore(s.buf.End(), cbb.BaseSeparator, cbb.PosDeleted)
	}

	return s, nil
}

// canonicalBase coerces an input letter to the store's alphabet.
func canonicalBase(b byte) byte {
	switch b {
	case 'a', 'A':
		return cbb.BaseA
	case 'c', 'C':
		return cbb.BaseC
	case 'g', 'G':
		return cbb.BaseG
	case 't', 'T':
		return cbb.BaseT
	default:
		return cbb.BaseUnknown
	}
}

// TotalSize returns the sum of live cells across all chromosomal
// regions, excluding separators.
func (s *Store) TotalSize() int {
	total := 0
	for i := range s.followingSep {
		for c := s.chrBegin(i); c != s.followingSep[i]; c = c.Next() {
			total++
		}
	}
	return total
}

// ChrCount returns the number of chromosomal regions.
func (s *Store) ChrCount() int { return len(s.followingSep) }

func (s *Store) chrBegin(chr int) cbb.Cursor {
	if s.precedingSep[chr].IsEnd() {
		return s.buf.Begin()
	}
	return s.precedingSep[chr].Next()
}

// PositiveBegin returns an iterator at chromosome chr's 5' end.
func (s *Store) PositiveBegin(chr int) StrandIterator {
	return StrandIterator{dir: Positive, base: s.chrBegin(chr)}
}

// PositiveEnd returns the one-past-3'-end anchor for chromosome chr: its
// trailing separator cell. AtValidPosition is always false on it.
func (s *Store) PositiveEnd(chr int) StrandIterator {
	return StrandIterator{dir: Positive, base: s.followingSep[chr]}
}

// NegativeBegin returns an iterator at chromosome chr's 3' end.
func (s *Store) NegativeBegin(chr int) StrandIterator {
	return StrandIterator{dir: Negative, base: s.followingSep[chr].Prev()}
}

// NegativeEnd returns the one-past-5'-end anchor for chromosome chr: its
// leading separator cell, or the buffer's true End for chromosome 0.
func (s *Store) NegativeEnd(chr int) StrandIterator {
	return StrandIterator{dir: Negative, base: s.precedingSep[chr]}
}

// Begin returns the appropriate directional begin iterator for chr.
func (s *Store) Begin(dir Direction, chr int) StrandIterator {
	if dir == Negative {
		return s.NegativeBegin(chr)
	}
	return s.PositiveBegin(chr)
}

// End returns the appropriate directional end anchor for chr.
func (s *Store) End(dir Direction, chr int) StrandIterator {
	if dir == Negative {
		return s.NegativeEnd(chr)
	}
	return s.PositiveEnd(chr)
}

// Subscribe registers h with the store so that a Replace call removing
// h's current cell relocates it instead of leaving it dangling.
func (s *Store) Subscribe(h *StrandIterator) { s.registry.subscribe(h) }

// Unsubscribe removes one subscription for h.
func (s *Store) Unsubscribe(h *StrandIterator) { s.registry.unsubscribe(h) }

// SpellOriginal returns the half-open original-position interval the
// range [it1, it2) corresponds to on the input sequence, ignoring
// synthetic (deleted-position) cells. It returns (0, 0) if the range is
// empty or contains only synthetic cells.
func (s *Store) SpellOriginal(it1, it2 StrandIterator) (int64, int64) {
	lo, hi := int64(-1), int64(-1)
	for it := it1; it.base != it2.base; it = it.Next() {
		if it.base.IsEnd() {
			break
		}
		if p := it.OriginalPosition(); p != cbb.PosDeleted {
			if lo == -1 || p < lo {
				lo = p
			}
			if hi == -1 || p > hi {
				hi = p
			}
		}
	}
	if lo == -1 {
		return 0, 0
	}
	return lo, hi + 1
}

// GlobalIndex returns the process-lifetime-stable identity of the cell it
// currently references.
func (s *Store) GlobalIndex(it StrandIterator) uint64 { return it.ElementID() }

// stepForwardFrom returns the next live cell after c in buffer-physical
// forward order, or the buffer's first live cell if c is End. It exists
// so relocation can safely advance from a boundary cursor that may
// legitimately be End, where calling Cursor.Next directly would panic.
func (s *Store) stepForwardFrom(c cbb.Cursor) cbb.Cursor {
	if c.IsEnd() {
		return s.buf.Begin()
	}
	return c.Next()
}

// stepBackwardFrom is stepForwardFrom's mirror for backward order.
func (s *Store) stepBackwardFrom(c cbb.Cursor) cbb.Cursor {
	if c.IsEnd() {
		return s.buf.Last()
	}
	return c.Prev()
}
