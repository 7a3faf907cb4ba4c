package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestBuildProducesValidJSON(t *testing.T) {
	doc, err := Build(Run{
		ChrCount:  2,
		TotalSize: 1000,
		Elapsed:   1500 * time.Millisecond,
		Stages: []StageResult{
			{VertexSize: 30, MinBranchSize: 150, ReplaceCount: 12},
			{VertexSize: 100, MinBranchSize: 1000, ReplaceCount: 3},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("Build produced invalid JSON: %v", err)
	}
	if parsed["chr_count"].(float64) != 2 {
		t.Fatalf("chr_count = %v, want 2", parsed["chr_count"])
	}
	stages, ok := parsed["stages"].([]interface{})
	if !ok || len(stages) != 2 {
		t.Fatalf("stages = %v, want a 2-element array", parsed["stages"])
	}
	first := stages[0].(map[string]interface{})
	if first["vertex_size"].(float64) != 30 {
		t.Fatalf("stages[0].vertex_size = %v, want 30", first["vertex_size"])
	}
}

func TestBuildWithNoStages(t *testing.T) {
	doc, err := Build(Run{ChrCount: 1, TotalSize: 10})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("Build produced invalid JSON: %v", err)
	}
	stages, ok := parsed["stages"].([]interface{})
	if !ok || len(stages) != 0 {
		t.Fatalf("stages = %v, want an empty array", parsed["stages"])
	}
}

func TestWriteIncludesElapsedSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, `{"a":1}`, 2.5); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "Time elapsed: 2.50 seconds") {
		t.Fatalf("output missing elapsed summary: %q", buf.String())
	}
}
