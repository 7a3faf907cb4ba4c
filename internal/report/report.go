// Package report builds the JSON summary written at the end of a
// simplification run: the stage list applied, how many edits each stage
// made, final sequence size, and elapsed wall time, echoing the
// original program's plain-text "Time elapsed: N seconds" summary line
// in a machine-readable form.
package report

import (
	"fmt"
	"time"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// StageResult is one completed stage's outcome: its parameters and how
// many Replace calls it issued.
type StageResult struct {
	VertexSize    int
	MinBranchSize int
	ReplaceCount  int
}

// Run summarizes one end-to-end invocation of the CLI driver.
type Run struct {
	ChrCount  int
	TotalSize int
	Stages    []StageResult
	Elapsed   time.Duration
}

// Build assembles r into a JSON document, one sjson.Set call per field,
// mirroring the incremental-construction style tidwall/sjson is meant
// for rather than marshaling a single Go struct.
func Build(r Run) (string, error) {
	doc := "{}"
	var err error

	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("chr_count", r.ChrCount)
	set("total_size", r.TotalSize)
	set("elapsed_seconds", r.Elapsed.Seconds())
	set("stages", []interface{}{})

	for i, s := range r.Stages {
		prefix := fmt.Sprintf("stages.%d", i)
		set(prefix+".index", i+1)
		set(prefix+".vertex_size", s.VertexSize)
		set(prefix+".min_branch_size", s.MinBranchSize)
		set(prefix+".replace_count", s.ReplaceCount)
	}

	if err != nil {
		return "", err
	}
	return doc, nil
}

// Pretty renders a JSON document built by Build for terminal or file
// output.
func Pretty(doc string) []byte {
	return pretty.Pretty([]byte(doc))
}
