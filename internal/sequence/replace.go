package sequence

import "github.com/mpenrose/syntenystore/internal/cbb"

// Replace splices targetLen cells dereferenced from target into the
// range of sourceLen cells starting at source, following the store's
// defining contract: validate, fire before, tombstone source and insert
// target preserving source's direction, relocate subscribers caught in
// the removed range, fire after. A rejected call leaves the store
// byte-for-byte and iterator-for-iterator unchanged; no partial splice is
// ever observable.
//
// before and after may be nil. Neither may call Replace; doing so panics
// with ErrReentrantReplace.
func (s *Store) Replace(source StrandIterator, sourceLen int, target StrandIterator, targetLen int, before, after NotifyFunc) error {
	if s.inReplace {
		panic(ErrReentrantReplace)
	}

	if sourceLen > 0 && !source.AtValidPosition() {
		return ErrOutsideChromosome
	}

	srcCursors := make([]cbb.Cursor, sourceLen)
	cur := source
	for i := 0; i < sourceLen; i++ {
		if !cur.AtValidPosition() {
			return ErrCrossChromosome
		}
		srcCursors[i] = cur.Base()
		cur = cur.Next()
	}
	sourceEnd := cur

	targetVals := make([]byte, targetLen)
	tcur := target
	for i := 0; i < targetLen; i++ {
		if !tcur.AtValidPosition() {
			return ErrSeparatorInTarget
		}
		targetVals[i] = tcur.Letter()
		tcur = tcur.Next()
	}

	var anchor cbb.Cursor
	switch {
	case sourceLen == 0:
		anchor = source.Base()
	case source.Direction() == Positive:
		anchor = srcCursors[0]
	default:
		anchor = srcCursors[sourceLen-1]
	}

	s.inReplace = true
	defer func() { s.inReplace = false }()

	rangeSet := make(map[cbb.Cursor]bool, sourceLen)
	for _, c := range srcCursors {
		rangeSet[c] = true
	}
	subs := s.registry.inRange(rangeSet)

	// leftBoundary/rightBoundary bracket the whole affected region (the
	// source range plus whatever gets spliced in before it) and are
	// captured now, before any mutation, since Erase only flips a
	// tombstone flag and InsertBefore only relinks the nodes next to the
	// insertion point without moving them: neither changes what these two
	// cursors address.
	var rightmostOld cbb.Cursor
	switch {
	case sourceLen == 0:
		rightmostOld = anchor
	case source.Direction() == Positive:
		rightmostOld = srcCursors[sourceLen-1]
	default:
		rightmostOld = srcCursors[0]
	}
	leftBoundary := s.stepBackwardFrom(anchor)
	rightBoundary := s.stepForwardFrom(rightmostOld)

	if before != nil {
		before(source, sourceEnd)
	}

	for _, c := range srcCursors {
		s.buf.Erase(c)
	}

	insertedCursors := make([]cbb.Cursor, targetLen)
	if source.Direction() == Positive {
		for i := 0; i < targetLen; i++ {
			insertedCursors[i] = s.buf.InsertBefore(anchor, targetVals[i], cbb.PosDeleted)
		}
	} else {
		for i := targetLen - 1; i >= 0; i-- {
			insertedCursors[i] = s.buf.InsertBefore(anchor, targetVals[i], cbb.PosDeleted)
		}
	}
	s.buf.ReclaimEmptyChunks()

	// Every subscriber caught in the removed range relocates to the same
	// cell: the new content occupies the whole region as a block, so a
	// subscriber's original position within it no longer matters. Positive
	// subscribers search forward from leftBoundary (finding the first
	// inserted cell, or whatever lies beyond the region if nothing was
	// inserted); negative subscribers search backward from rightBoundary.
	for _, h := range subs {
		var next cbb.Cursor
		if h.Direction() == Negative {
			next = s.stepBackwardFrom(rightBoundary)
		} else {
			next = s.stepForwardFrom(leftBoundary)
		}
		s.registry.relocate(h, next)
	}

	var afterBegin, afterEnd StrandIterator
	switch {
	case targetLen == 0:
		afterBegin = StrandIterator{dir: source.Direction(), base: anchor}
		afterEnd = afterBegin
	case source.Direction() == Positive:
		afterBegin = StrandIterator{dir: Positive, base: insertedCursors[0]}
		afterEnd = StrandIterator{dir: Positive, base: insertedCursors[targetLen-1]}.Next()
	default:
		afterBegin = StrandIterator{dir: Negative, base: insertedCursors[0]}
		afterEnd = StrandIterator{dir: Negative, base: insertedCursors[targetLen-1]}.Next()
	}
	if after != nil {
		after(afterBegin, afterEnd)
	}

	return nil
}
