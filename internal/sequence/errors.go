package sequence

import "errors"

var (
	// ErrCrossChromosome is returned by Replace when the source range
	// crosses a chromosome separator.
	ErrCrossChromosome = errors.New("sequence: source range crosses a chromosome separator")

	// ErrOutsideChromosome is returned by Replace when the source
	// iterator does not start inside any chromosomal region.
	ErrOutsideChromosome = errors.New("sequence: source iterator is outside any chromosomal region")

	// ErrSeparatorInTarget is returned by Replace when materializing the
	// target range would require crossing a chromosome separator.
	ErrSeparatorInTarget = errors.New("sequence: target range contains a separator")

	// ErrReentrantReplace is the value a re-entrant call into Replace
	// panics with; it is a programming error, not a data condition.
	ErrReentrantReplace = errors.New("sequence: Replace called re-entrantly from a notification callback")

	// ErrInputTooLarge is returned by NewStore and NewStoreWithPositions
	// when the combined size of the supplied records exceeds MaxInputBytes.
	ErrInputTooLarge = errors.New("sequence: combined record size exceeds the 1GB input cap")
)

// MaxInputBytes is the input size cap the store enforces at construction.
const MaxInputBytes = 1 << 30
