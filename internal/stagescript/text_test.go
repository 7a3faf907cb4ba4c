package stagescript

import (
	"strings"
	"testing"
)

func TestLoadTextParsesStageList(t *testing.T) {
	stages, err := LoadText(strings.NewReader("2\n30 150\n100 1000\n"))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	want := []Stage{{30, 150}, {100, 1000}}
	if len(stages) != len(want) || stages[0] != want[0] || stages[1] != want[1] {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
}

func TestLoadTextZeroStages(t *testing.T) {
	stages, err := LoadText(strings.NewReader("0\n"))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if len(stages) != 0 {
		t.Fatalf("len(stages) = %d, want 0", len(stages))
	}
}

func TestLoadTextRejectsTooFewRecords(t *testing.T) {
	if _, err := LoadText(strings.NewReader("2\n30 150\n")); err == nil {
		t.Fatal("expected an error for a truncated stage list")
	}
}

func TestLoadTextRejectsInvalidVertexSize(t *testing.T) {
	if _, err := LoadText(strings.NewReader("1\n1 0\n")); err != ErrVertexSizeTooSmall {
		t.Fatalf("err = %v, want ErrVertexSizeTooSmall", err)
	}
}
