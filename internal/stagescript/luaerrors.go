package stagescript

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrInstructionLimit names an exceeded instruction limit. No function
	// in this package returns it.
	ErrInstructionLimit = errors.New("lua instruction limit exceeded")
)

// Errors for stage validation, shared across the text, JSON, and Lua
// loaders.
var (
	// ErrNegativeStageCount is returned by the text loader when the
	// declared stage count is negative.
	ErrNegativeStageCount = errors.New("stagescript: number of stages must be nonnegative")
	// ErrVertexSizeTooSmall is returned when a stage's vertex size is
	// below the minimum a de Bruijn vertex can represent.
	ErrVertexSizeTooSmall = errors.New("stagescript: vertex size must be at least 2")
	// ErrNegativeBranchSize is returned when a stage's minimum branch
	// size is negative.
	ErrNegativeBranchSize = errors.New("stagescript: minimum branch size must be nonnegative")
	// ErrMalformedStageList is returned when a loader cannot parse a
	// complete stage record from its source.
	ErrMalformedStageList = errors.New("stagescript: malformed stage list")
)
