package stagescript

import "testing"

func TestValidateStageRejectsSmallVertexSize(t *testing.T) {
	if err := validateStage(Stage{VertexSize: 1, MinBranchSize: 0}); err != ErrVertexSizeTooSmall {
		t.Fatalf("err = %v, want ErrVertexSizeTooSmall", err)
	}
}

func TestValidateStageRejectsNegativeBranchSize(t *testing.T) {
	if err := validateStage(Stage{VertexSize: 2, MinBranchSize: -1}); err != ErrNegativeBranchSize {
		t.Fatalf("err = %v, want ErrNegativeBranchSize", err)
	}
}

func TestLooseAndFineStagesAreValid(t *testing.T) {
	if err := validateStages(LooseStages()); err != nil {
		t.Fatalf("LooseStages: %v", err)
	}
	if err := validateStages(FineStages()); err != nil {
		t.Fatalf("FineStages: %v", err)
	}
	if len(LooseStages()) != 4 {
		t.Fatalf("len(LooseStages()) = %d, want 4", len(LooseStages()))
	}
	if len(FineStages()) != 3 {
		t.Fatalf("len(FineStages()) = %d, want 3", len(FineStages()))
	}
}
