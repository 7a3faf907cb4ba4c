package stagescript

import "testing"

func TestLoadJSONParsesStageList(t *testing.T) {
	doc := []byte(`{"stages":[{"vertex_size":30,"min_branch_size":150},{"vertex_size":100,"min_branch_size":1000}]}`)
	stages, err := LoadJSON(doc)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	want := []Stage{{30, 150}, {100, 1000}}
	if len(stages) != len(want) || stages[0] != want[0] || stages[1] != want[1] {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
}

func TestLoadJSONMissingStagesArray(t *testing.T) {
	if _, err := LoadJSON([]byte(`{}`)); err == nil {
		t.Fatal("expected an error for a document with no stages array")
	}
}

func TestLoadJSONRejectsInvalidBranchSize(t *testing.T) {
	doc := []byte(`{"stages":[{"vertex_size":30,"min_branch_size":-1}]}`)
	if _, err := LoadJSON(doc); err != ErrNegativeBranchSize {
		t.Fatalf("err = %v, want ErrNegativeBranchSize", err)
	}
}
