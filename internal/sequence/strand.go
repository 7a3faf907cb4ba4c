package sequence

import "github.com/mpenrose/syntenystore/internal/cbb"

// Direction tags a StrandIterator's orientation.
type Direction int

const (
	// Positive iterates 5' to 3', yielding stored bases unchanged.
	Positive Direction = iota
	// Negative iterates 3' to 5', yielding Watson-Crick complements.
	Negative
)

func (d Direction) String() string {
	if d == Negative {
		return "negative"
	}
	return "positive"
}

// complement returns the Watson-Crick complement of a stored base, with
// the unknown-base sentinel mapping to itself.
func complement(b byte) byte {
	switch b {
	case cbb.BaseA:
		return cbb.BaseT
	case cbb.BaseT:
		return cbb.BaseA
	case cbb.BaseC:
		return cbb.BaseG
	case cbb.BaseG:
		return cbb.BaseC
	default:
		return b
	}
}

// StrandIterator is a direction-tagged cursor over a Store's underlying
// buffer. The zero value is not meaningful on its own; obtain one from a
// Store's PositiveBegin/PositiveEnd/NegativeBegin/NegativeEnd. Two
// StrandIterators compare equal with == iff they address the same cell in
// the same direction.
type StrandIterator struct {
	dir  Direction
	base cbb.Cursor
}

// Direction reports the iterator's orientation.
func (it StrandIterator) Direction() Direction { return it.dir }

// Base returns the underlying buffer cursor.
func (it StrandIterator) Base() cbb.Cursor { return it.base }

// AtValidPosition reports whether it currently references a live,
// non-separator cell.
func (it StrandIterator) AtValidPosition() bool {
	return !it.base.IsEnd() && !it.base.Tombstoned() && it.base.Cell().Base != cbb.BaseSeparator
}

// Letter dereferences it, complementing the stored base when the
// iterator is Negative. It panics via the underlying cursor when it
// addresses End; on a separator or tombstoned cell it returns that cell's
// sentinel byte unchanged.
func (it StrandIterator) Letter() byte {
	b := it.base.Cell().Base
	if it.dir == Negative {
		return complement(b)
	}
	return b
}

// ElementID returns the process-lifetime-stable identity of the
// currently referenced cell.
func (it StrandIterator) ElementID() uint64 { return it.base.Cell().ID }

// OriginalPosition returns the cell's original input position, or
// cbb.PosDeleted if the cell is synthetic (inserted by a prior Replace).
func (it StrandIterator) OriginalPosition() int64 { return it.base.Cell().Pos }

// Next advances it one cell in its own direction: forward for Positive,
// backward for Negative. It panics if the underlying cursor is End.
// Advancing from a chromosome's separator anchor does not panic: it moves
// to the adjacent live cell beyond the separator. Callers must check
// AtValidPosition first.
func (it StrandIterator) Next() StrandIterator {
	if it.dir == Negative {
		return StrandIterator{dir: it.dir, base: it.base.Prev()}
	}
	return StrandIterator{dir: it.dir, base: it.base.Next()}
}

// Prev steps it one cell backward relative to its own direction: the
// inverse of Next.
func (it StrandIterator) Prev() StrandIterator {
	if it.dir == Negative {
		return StrandIterator{dir: it.dir, base: it.base.Next()}
	}
	return StrandIterator{dir: it.dir, base: it.base.Prev()}
}

// Invert returns an iterator of the opposite direction addressing the
// same cell. Dereferencing the result yields the complement of *it.
func (it StrandIterator) Invert() StrandIterator {
	dir := Positive
	if it.dir == Positive {
		dir = Negative
	}
	return StrandIterator{dir: dir, base: it.base}
}

// ProperKMer reports whether advancing it k-1 times visits k consecutive
// valid (live, non-separator) cells. It does not mutate it.
func ProperKMer(it StrandIterator, k int) bool {
	for i := 0; i < k; i++ {
		if !it.AtValidPosition() {
			return false
		}
		if i < k-1 {
			it = it.Next()
		}
	}
	return true
}
