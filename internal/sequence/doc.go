// Package sequence implements the dynamic DNA sequence store: chromosomes
// concatenated over a chunked bidirectional buffer (internal/cbb), strand-
// aware bidirectional iteration, and a Replace splice protocol that
// relocates subscribed iterators out of any range it removes.
//
// The store is the only thing in this module that mutates the underlying
// buffer; callers interact with it exclusively through StrandIterator
// values and Replace.
package sequence
