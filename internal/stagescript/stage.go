package stagescript

// Stage is one pass of graph simplification: collapse runs shorter than
// VertexSize and prune branches no longer than MinBranchSize before
// moving to the next, larger stage.
type Stage struct {
	VertexSize    int
	MinBranchSize int
}

func validateStage(s Stage) error {
	if s.VertexSize < 2 {
		return ErrVertexSizeTooSmall
	}
	if s.MinBranchSize < 0 {
		return ErrNegativeBranchSize
	}
	return nil
}

func validateStages(stages []Stage) error {
	for _, s := range stages {
		if err := validateStage(s); err != nil {
			return err
		}
	}
	return nil
}

// LooseStages is the original program's permissive built-in stage list:
// one more stage than FineStages, reaching larger vertex and branch sizes
// that tolerate more ambiguity in the graph.
func LooseStages() []Stage {
	return []Stage{
		{30, 150},
		{100, 1000},
		{1000, 5000},
		{5000, 15000},
	}
}

// FineStages is the original program's conservative built-in stage
// list: smaller final steps, producing finer-grained blocks.
func FineStages() []Stage {
	return []Stage{
		{30, 150},
		{100, 1000},
		{1000, 2500},
	}
}
