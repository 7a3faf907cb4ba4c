package cbb

// DefaultCapacity is the number of cell slots a chunk holds before it is
// split. 1000 amortizes per-chunk bookkeeping over three orders of
// magnitude relative to a flat per-character structure.
const DefaultCapacity = 1000

// Base sentinels. A, C, G and T are the only letters a live cell in the
// DNA alphabet carries; Unknown stands in for anything else the sequence
// store is asked to store; Separator marks a chromosome boundary.
const (
	BaseA         byte = 'A'
	BaseC         byte = 'C'
	BaseG         byte = 'G'
	BaseT         byte = 'T'
	BaseUnknown   byte = 'N'
	BaseSeparator byte = '$'

	// baseTombstone marks a slot whose cell has been erased. It is not a
	// member of the DNA alphabet and is never returned from Cell.Base for
	// a live cell.
	baseTombstone byte = 0
)

// PosDeleted is the original position recorded for a cell that has no
// corresponding input position, either because it was synthesized by a
// Replace call or because its slot has been tombstoned.
const PosDeleted int64 = -1

// Cell is an immutable snapshot of one stored character: its base letter,
// its position in the original input, and a process-lifetime-stable
// identifier that survives any Replace not touching the cell itself.
type Cell struct {
	ID   uint64
	Base byte
	Pos  int64
}

// Tombstoned reports whether this snapshot was taken of an erased slot.
func (c Cell) Tombstoned() bool { return c.Base == baseTombstone }

// node is one stored cell, linked into the buffer's global traversal
// order. Its address is its own pointer: InsertBefore and Erase never
// move a live node, only splice the list around it or mark it tombstoned
// in place. owner attributes the node to a chunk purely for capacity
// bookkeeping; it plays no part in the node's identity or ordering.
type node struct {
	id   uint64
	base byte
	pos  int64

	prev, next *node
	owner      *chunk
}

func (n *node) cell() Cell {
	return Cell{ID: n.id, Base: n.base, Pos: n.pos}
}

func (n *node) tombstoned() bool { return n.base == baseTombstone }

// chunk is a bookkeeping record for a contiguous run of the global node
// list: first..last bound the run, used/live/deleted count it. Splitting
// a chunk reassigns the owner of a trailing run of nodes to a new chunk;
// it never touches node.prev/next, so no live cursor is perturbed.
type chunk struct {
	first, last *node // nil when the chunk owns no nodes

	used    int // live + deleted slots attributed to this chunk
	live    int
	deleted int

	prev, next *chunk
}
