package cbb

// Buffer is the chunked bidirectional buffer: a doubly-linked sequence of
// cells grouped into capacity-bounded chunks. A zero Buffer is not usable;
// construct one with New.
type Buffer struct {
	headNode, tailNode *node
	headChunk, tailChunk *chunk

	capacity int
	nextID   uint64
}

// New returns an empty buffer whose chunks hold up to capacity cells each.
// A capacity of 0 or less is replaced with DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Capacity returns the per-chunk cell capacity the buffer was built with.
func (b *Buffer) Capacity() int { return b.capacity }

// Begin returns a cursor to the first live cell, or End if the buffer has
// no live cells.
func (b *Buffer) Begin() Cursor {
	for n := b.headNode; n != nil; n = n.next {
		if !n.tombstoned() {
			return Cursor{n: n}
		}
	}
	return Cursor{}
}

// End returns the sentinel one-past-the-last cursor.
func (b *Buffer) End() Cursor { return Cursor{} }

// Last returns a cursor to the last live cell, or End if the buffer has
// no live cells.
func (b *Buffer) Last() Cursor {
	for n := b.tailNode; n != nil; n = n.prev {
		if !n.tombstoned() {
			return Cursor{n: n}
		}
	}
	return Cursor{}
}

// InsertBefore inserts a new live cell with the given base and original
// position immediately before cur (or at the end of the buffer, if cur is
// End) and returns a cursor to it. cur may point at a tombstoned cell,
// which is the position the sequence store inserts replacement cells at
// during a splice.
func (b *Buffer) InsertBefore(cur Cursor, base byte, pos int64) Cursor {
	id := b.nextID
	b.nextID++
	return Cursor{n: b.insertBeforeWithID(cur, base, pos, id)}
}

func (b *Buffer) insertBeforeWithID(cur Cursor, base byte, pos int64, id uint64) *node {
	n := &node{id: id, base: base, pos: pos}

	ch := b.targetChunk(cur)
	if ch.used >= b.capacity {
		ch = b.split(ch, cur)
	}

	atFront := !cur.IsEnd() && ch.first == cur.n
	empty := ch.first == nil

	b.linkBefore(n, cur)
	n.owner = ch

	switch {
	case cur.IsEnd():
		ch.last = n
		if empty {
			ch.first = n
		}
	case atFront:
		ch.first = n
	}
	ch.used++
	ch.live++
	return n
}

// targetChunk picks the chunk a new cell inserted before cur should be
// attributed to.
func (b *Buffer) targetChunk(cur Cursor) *chunk {
	if cur.IsEnd() {
		if b.tailChunk == nil {
			ch := &chunk{}
			b.headChunk, b.tailChunk = ch, ch
		}
		return b.tailChunk
	}
	return cur.n.owner
}

// linkBefore splices n into the global list immediately before cur. Only
// cur's node's prev and its predecessor's next are rewritten; no other
// node's prev/next changes.
func (b *Buffer) linkBefore(n *node, cur Cursor) {
	if cur.IsEnd() {
		n.prev = b.tailNode
		n.next = nil
		if b.tailNode != nil {
			b.tailNode.next = n
		} else {
			b.headNode = n
		}
		b.tailNode = n
		return
	}
	at := cur.n
	n.prev = at.prev
	n.next = at
	if at.prev != nil {
		at.prev.next = n
	} else {
		b.headNode = n
	}
	at.prev = n
}

// split divides a full chunk roughly in half, reassigning the owner of
// the trailing run of nodes to a freshly linked chunk. It never moves a
// node's position in the global list, only which chunk record it counts
// against, so it perturbs no cursor. It returns the chunk cur's node now
// belongs to.
func (b *Buffer) split(ch *chunk, cur Cursor) *chunk {
	mid := ch.used / 2
	if mid < 1 {
		mid = 1
	}
	if mid > ch.used-1 {
		mid = ch.used - 1
	}

	m := ch.first
	for i := 0; i < mid; i++ {
		m = m.next
	}

	ch2 := &chunk{first: m, last: ch.last, prev: ch, next: ch.next}
	if ch.next != nil {
		ch.next.prev = ch2
	}
	ch.next = ch2
	if b.tailChunk == ch {
		b.tailChunk = ch2
	}

	var movedUsed, movedLive, movedDeleted int
	for n := m; n != nil; n = n.next {
		n.owner = ch2
		movedUsed++
		if n.tombstoned() {
			movedDeleted++
		} else {
			movedLive++
		}
		if n == ch2.last {
			break
		}
	}

	ch.last = m.prev
	ch.used -= movedUsed
	ch.live -= movedLive
	ch.deleted -= movedDeleted
	ch2.used, ch2.live, ch2.deleted = movedUsed, movedLive, movedDeleted

	if !cur.IsEnd() {
		return cur.n.owner
	}
	return ch2
}

// Erase tombstones the cell cur addresses. It is a no-op if cur is End or
// already tombstoned. It never unlinks a chunk; call ReclaimEmptyChunks
// after a batch of erasures to drop chunks that emptied out.
func (b *Buffer) Erase(cur Cursor) {
	if cur.IsEnd() || cur.n.tombstoned() {
		return
	}
	n := cur.n
	n.base = baseTombstone
	n.pos = PosDeleted
	if ch := n.owner; ch != nil {
		ch.live--
		ch.deleted++
	}
}

// ReclaimEmptyChunks drops every chunk whose live count has reached zero
// from the chunk list. Tombstoned nodes already attributed to a dropped
// chunk stay in the global list (and are skipped by traversal as always);
// only the chunk bookkeeping record is discarded.
func (b *Buffer) ReclaimEmptyChunks() {
	for ch := b.headChunk; ch != nil; {
		next := ch.next
		if ch.live == 0 && ch.used > 0 {
			if ch.prev != nil {
				ch.prev.next = ch.next
			} else {
				b.headChunk = ch.next
			}
			if ch.next != nil {
				ch.next.prev = ch.prev
			} else {
				b.tailChunk = ch.prev
			}
		}
		ch = next
	}
}

// Splice moves the live range [srcBegin, srcEnd) to immediately before
// dst, preserving each moved cell's identity. dst must not lie within
// [srcBegin, srcEnd).
func (b *Buffer) Splice(dst, srcBegin, srcEnd Cursor) {
	cur := srcBegin
	for cur != srcEnd && !cur.IsEnd() {
		next := cur.Next()
		c := cur.Cell()
		b.insertBeforeWithID(dst, c.Base, c.Pos, c.ID)
		b.Erase(cur)
		cur = next
	}
	b.ReclaimEmptyChunks()
}
