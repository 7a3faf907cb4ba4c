package sequence

import "github.com/mpenrose/syntenystore/internal/cbb"

// subscriberRegistry is a multiset of live StrandIterator handles, keyed
// by the buffer cursor (cell identity) each currently addresses. It is
// consulted only by Replace; outside Replace, callers manage iterator
// lifetimes themselves.
type subscriberRegistry struct {
	byCursor map[cbb.Cursor][]*StrandIterator
}

func newRegistry() *subscriberRegistry {
	return &subscriberRegistry{byCursor: make(map[cbb.Cursor][]*StrandIterator)}
}

// subscribe records h under the cell it currently addresses.
func (r *subscriberRegistry) subscribe(h *StrandIterator) {
	r.byCursor[h.base] = append(r.byCursor[h.base], h)
}

// unsubscribe removes one occurrence of h. It is a no-op if h is not
// currently subscribed.
func (r *subscriberRegistry) unsubscribe(h *StrandIterator) {
	list := r.byCursor[h.base]
	for i, x := range list {
		if x == h {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(r.byCursor, h.base)
			} else {
				r.byCursor[h.base] = list
			}
			return
		}
	}
}

// inRange returns every subscribed handle whose current cursor is a key
// of set.
func (r *subscriberRegistry) inRange(set map[cbb.Cursor]bool) []*StrandIterator {
	var out []*StrandIterator
	for cursor, handles := range r.byCursor {
		if set[cursor] {
			out = append(out, handles...)
		}
	}
	return out
}

// relocate moves h's registration from its current cursor to newBase,
// then updates h itself. It must be called instead of assigning h.base
// directly so the registry's index stays consistent with every handle it
// tracks.
func (r *subscriberRegistry) relocate(h *StrandIterator, newBase cbb.Cursor) {
	r.unsubscribe(h)
	h.base = newBase
	r.subscribe(h)
}
