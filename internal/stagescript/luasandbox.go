package stagescript

import (
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to the handful of operations a stage
// script legitimately needs: arithmetic, string/table manipulation, and
// returning a table of stage records. There is no filesystem, network,
// or process access to gate, so unlike a general-purpose plugin sandbox
// this one has no capability system — everything it can reach is always
// reachable.
type Sandbox struct {
	L *lua.LState

	instructionLimit int64
	instructionCount int64
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, instructionLimit int64) *Sandbox {
	return &Sandbox{L: L, instructionLimit: instructionLimit}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	dangerousFuncs := []string{"dofile", "loadfile", "load", "loadstring"}
	for _, name := range dangerousFuncs {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installSafeRequire()
}

// installSafeRequire replaces require with a version that only allows a
// fixed whitelist of built-in modules, and clears package.path/cpath so
// nothing can be loaded from disk.
func (s *Sandbox) installSafeRequire() {
	pkg := s.L.GetGlobal("package")
	if pkgTable, ok := pkg.(*lua.LTable); ok {
		s.L.SetField(pkgTable, "path", lua.LString(""))
		s.L.SetField(pkgTable, "cpath", lua.LString(""))
	}

	safeModules := map[string]bool{
		"string": true,
		"table":  true,
		"math":   true,
	}

	originalRequire := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)
		if safeModules[modName] {
			L.Push(originalRequire)
			L.Push(lua.LString(modName))
			L.Call(1, 1)
			return 1
		}
		L.RaiseError("module %q is not available", modName)
		return 0 // unreachable, but required for Go compiler
	}))
}

// ResetInstructionCount resets the instruction counter.
func (s *Sandbox) ResetInstructionCount() {
	atomic.StoreInt64(&s.instructionCount, 0)
}

// InstructionCount returns the current instruction count.
func (s *Sandbox) InstructionCount() int64 {
	return atomic.LoadInt64(&s.instructionCount)
}

// IncrementInstructions adds to the instruction count and returns true if
// the limit has been exceeded.
func (s *Sandbox) IncrementInstructions(n int64) bool {
	if s.instructionLimit <= 0 {
		return false
	}
	count := atomic.AddInt64(&s.instructionCount, n)
	return count > s.instructionLimit
}
