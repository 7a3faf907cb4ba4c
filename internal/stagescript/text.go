package stagescript

import (
	"bufio"
	"fmt"
	"io"
)

// LoadText loads a stage list from the original plain-text format: a
// leading count, followed by that many "vertexSize minBranchSize" pairs,
// whitespace-delimited. It is the Go equivalent of the original
// program's ReadStageFile.
func LoadText(r io.Reader) ([]Stage, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		var n int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
			return 0, false
		}
		return n, true
	}

	count, ok := nextInt()
	if !ok {
		return nil, fmt.Errorf("%w: cannot read stage count", ErrMalformedStageList)
	}
	if count < 0 {
		return nil, ErrNegativeStageCount
	}

	stages := make([]Stage, count)
	for i := 0; i < count; i++ {
		vertexSize, ok := nextInt()
		if !ok {
			return nil, fmt.Errorf("%w: too few records", ErrMalformedStageList)
		}
		minBranchSize, ok := nextInt()
		if !ok {
			return nil, fmt.Errorf("%w: too few records", ErrMalformedStageList)
		}
		stages[i] = Stage{VertexSize: vertexSize, MinBranchSize: minBranchSize}
	}

	if err := validateStages(stages); err != nil {
		return nil, err
	}
	return stages, nil
}
