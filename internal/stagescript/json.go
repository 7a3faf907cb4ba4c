package stagescript

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// LoadJSON loads a stage list from a document shaped like:
//
//	{"stages": [{"vertex_size": 30, "min_branch_size": 150}, ...]}
func LoadJSON(doc []byte) ([]Stage, error) {
	root := gjson.GetBytes(doc, "stages")
	if !root.Exists() || !root.IsArray() {
		return nil, fmt.Errorf("%w: missing \"stages\" array", ErrMalformedStageList)
	}

	var stages []Stage
	var parseErr error
	root.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			parseErr = fmt.Errorf("%w: stage entry is not an object", ErrMalformedStageList)
			return false
		}
		vs := entry.Get("vertex_size")
		mb := entry.Get("min_branch_size")
		if !vs.Exists() || !mb.Exists() {
			parseErr = fmt.Errorf("%w: stage entry missing vertex_size/min_branch_size", ErrMalformedStageList)
			return false
		}
		stages = append(stages, Stage{
			VertexSize:    int(vs.Int()),
			MinBranchSize: int(mb.Int()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if err := validateStages(stages); err != nil {
		return nil, err
	}
	return stages, nil
}
