// Package cbb implements the chunked bidirectional buffer: a doubly-linked
// sequence of fixed-capacity chunks that stores characters with their
// original input positions.
//
// Cells are individually addressed nodes linked into one continuous
// sequence; chunks are bookkeeping records that group a contiguous run of
// that sequence for capacity accounting and bulk reclamation. A cell's
// address (its node pointer, wrapped in a Cursor) never changes while the
// cell is live — it is only ever tombstoned in place, never relocated.
// This is what lets a caller hold many cursors across edits: cursors that
// are not touched by a given edit stay valid without any bookkeeping on
// this package's part.
package cbb
