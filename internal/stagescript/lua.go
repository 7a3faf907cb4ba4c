package stagescript

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// stagesFunc is the name of the global function a Lua stage script must
// define. It takes no arguments and returns an array of tables, each
// with a vertex_size and min_branch_size field — the programmatic
// equivalent of the JSON "stages" array, useful for geometrically
// increasing branch sizes or other generated progressions.
const stagesFunc = "stages"

// LoadLuaString loads a stage list by sandboxed-executing a Lua script
// and calling its stages() function.
func LoadLuaString(code string) ([]Stage, error) {
	st, err := NewState()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	if err := st.DoString(code); err != nil {
		return nil, fmt.Errorf("stagescript: lua error: %w", err)
	}
	return collectStages(st)
}

// LoadLuaFile is LoadLuaString reading its script from a file path.
func LoadLuaFile(path string) ([]Stage, error) {
	st, err := NewState()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	if err := st.DoFile(path); err != nil {
		return nil, fmt.Errorf("stagescript: lua error: %w", err)
	}
	return collectStages(st)
}

func collectStages(st *State) ([]Stage, error) {
	results, err := st.Call(stagesFunc)
	if err != nil {
		return nil, fmt.Errorf("stagescript: calling %s: %w", stagesFunc, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s() returned no value", ErrMalformedStageList, stagesFunc)
	}

	table, ok := results[0].(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: %s() must return a table", ErrMalformedStageList, stagesFunc)
	}

	bridge := NewBridge(st.LuaState())
	rows, ok := bridge.ToGoValue(table).([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s() must return an array of stage tables", ErrMalformedStageList, stagesFunc)
	}

	stages := make([]Stage, len(rows))
	for i, row := range rows {
		entry, ok := row.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: stage %d is not a table", ErrMalformedStageList, i+1)
		}
		vs, vsOK := asInt(entry["vertex_size"])
		mb, mbOK := asInt(entry["min_branch_size"])
		if !vsOK || !mbOK {
			return nil, fmt.Errorf("%w: stage %d missing vertex_size/min_branch_size", ErrMalformedStageList, i+1)
		}
		stages[i] = Stage{VertexSize: vs, MinBranchSize: mb}
	}

	if err := validateStages(stages); err != nil {
		return nil, err
	}
	return stages, nil
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
