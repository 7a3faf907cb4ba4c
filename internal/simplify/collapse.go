// Package simplify is a minimal consumer of internal/sequence: it walks
// a chromosome looking for a repeated k-mer and collapses the second
// occurrence into the first via Store.Replace, wiring before/after
// notification callbacks the way a full de Bruijn graph simplification
// pass would. It is not that pass — there is no graph here, no bulge
// removal, no branch pruning — it exists to exercise, and be tested
// against, the store's splice and relocation contract end-to-end.
package simplify

import (
	"errors"
	"fmt"

	"github.com/mpenrose/syntenystore/internal/app"
	"github.com/mpenrose/syntenystore/internal/sequence"
)

// ErrNoRepeatFound is returned when no k-mer occurs twice in the
// chromosome. The scan slides one cell at a time, so overlapping
// occurrences count as a repeat.
var ErrNoRepeatFound = errors.New("simplify: no repeated k-mer found")

// Result describes one successful collapse.
type Result struct {
	KMer         string
	ReplaceCount int
}

// CollapseRepeat scans chromosome chr for the first k-mer that recurs,
// then replaces its second occurrence's k cells with a fresh copy
// spliced in from the first occurrence. log may be nil.
func CollapseRepeat(s *sequence.Store, chr, k int, log *app.Logger) (Result, error) {
	if k < 2 {
		return Result{}, fmt.Errorf("simplify: k must be at least 2, got %d", k)
	}

	seen := make(map[string]sequence.StrandIterator)
	it := s.PositiveBegin(chr)
	for sequence.ProperKMer(it, k) {
		key := spellKMer(it, k)
		if first, ok := seen[key]; ok {
			return collapse(s, first, it, k, key, log)
		}
		seen[key] = it
		it = it.Next()
	}

	return Result{}, ErrNoRepeatFound
}

func spellKMer(it sequence.StrandIterator, k int) string {
	letters := make([]byte, k)
	for i := range letters {
		letters[i] = it.Letter()
		it = it.Next()
	}
	return string(letters)
}

func collapse(s *sequence.Store, first, second sequence.StrandIterator, k int, key string, log *app.Logger) (Result, error) {
	var replaceCount int

	before := func(b, e sequence.StrandIterator) {
		if log != nil {
			log.WithFields(map[string]any{"kmer": key, "k": k}).Debug("collapsing repeated k-mer")
		}
	}
	after := func(b, e sequence.StrandIterator) {
		replaceCount++
	}

	if err := s.Replace(second, k, first, k, before, after); err != nil {
		return Result{}, fmt.Errorf("simplify: collapsing %q: %w", key, err)
	}

	return Result{KMer: key, ReplaceCount: replaceCount}, nil
}
