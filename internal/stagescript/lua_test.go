package stagescript

import "testing"

func TestLoadLuaStringParsesStageList(t *testing.T) {
	code := `
function stages()
	return {
		{vertex_size = 30, min_branch_size = 150},
		{vertex_size = 100, min_branch_size = 1000},
	}
end
`
	stages, err := LoadLuaString(code)
	if err != nil {
		t.Fatalf("LoadLuaString: %v", err)
	}
	want := []Stage{{30, 150}, {100, 1000}}
	if len(stages) != len(want) || stages[0] != want[0] || stages[1] != want[1] {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
}

func TestLoadLuaStringGeneratesGeometricProgression(t *testing.T) {
	code := `
function stages()
	local result = {}
	local size = 30
	for i = 1, 5 do
		result[i] = {vertex_size = size, min_branch_size = size * 5}
		size = size * 2
	end
	return result
end
`
	stages, err := LoadLuaString(code)
	if err != nil {
		t.Fatalf("LoadLuaString: %v", err)
	}
	if len(stages) != 5 {
		t.Fatalf("len(stages) = %d, want 5", len(stages))
	}
	if stages[4].VertexSize != 30*16 {
		t.Fatalf("stages[4].VertexSize = %d, want %d", stages[4].VertexSize, 30*16)
	}
}

func TestLoadLuaStringSandboxRejectsFileAccess(t *testing.T) {
	code := `
function stages()
	local f = io.open("/etc/passwd")
	return {}
end
`
	if _, err := LoadLuaString(code); err == nil {
		t.Fatal("expected a sandbox error for io access")
	}
}

func TestLoadLuaStringRejectsMissingFunction(t *testing.T) {
	if _, err := LoadLuaString("x = 1"); err == nil {
		t.Fatal("expected an error when stages() is undefined")
	}
}
