// Package stagescript loads simplification stage lists: ordered
// (vertex size, minimum branch size) pairs that parameterize successive
// passes over the condensed graph. Three source formats are supported —
// a plain text format, JSON, and a sandboxed Lua script for
// programmatically generated lists (e.g. geometrically increasing branch
// sizes) — alongside the two fixed presets the original program shipped.
package stagescript

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the instruction limit every State hands to
// its Sandbox's counter. Nothing advances that counter while a script
// runs, so execution is not aborted when a script exceeds the limit.
const DefaultInstructionLimit = 10_000_000

// State wraps gopher-lua for sandboxed stage script execution.
//
// gopher-lua's LState is not goroutine-safe. All operations on a State
// must be called from a single goroutine, or external synchronization
// must be used. The mutex here protects against concurrent access from
// Go code; Lua code execution is inherently single-threaded.
type State struct {
	L *lua.LState

	mu sync.Mutex

	instructionLimit int64
	sandbox          *Sandbox
	closed           bool
}

// NewState creates a new sandboxed Lua state.
func NewState() (*State, error) {
	state := &State{
		instructionLimit: DefaultInstructionLimit,
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	state.L = L

	openSafeLibraries(L)

	state.sandbox = NewSandbox(L, state.instructionLimit)
	state.sandbox.Install()

	return state, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally not opened: io, os, debug, package.
}

// DoFile executes a Lua file. Execution is synchronous - the call
// blocks until completion or error.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	s.sandbox.ResetInstructionCount()

	return s.doWithRecovery(func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua string. Execution is synchronous - the call
// blocks until completion or error.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	s.sandbox.ResetInstructionCount()

	return s.doWithRecovery(func() error {
		return s.L.DoString(code)
	})
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Call calls a global Lua function with the given arguments.
// Returns an empty slice (not nil) if the function returns no values.
func (s *State) Call(fn string, args ...lua.LValue) ([]lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStateClosed
	}

	s.sandbox.ResetInstructionCount()

	fnVal := s.L.GetGlobal(fn)
	if fnVal == lua.LNil {
		return nil, fmt.Errorf("function %q not found", fn)
	}
	if fnVal.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
	}

	stackTop := s.L.GetTop()

	s.L.Push(fnVal)
	for _, arg := range args {
		s.L.Push(arg)
	}

	var callErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				callErr = fmt.Errorf("lua panic: %v", r)
			}
		}()
		callErr = s.L.PCall(len(args), lua.MultRet, nil)
	}()

	if callErr != nil {
		return nil, callErr
	}

	nRet := s.L.GetTop() - stackTop
	if nRet <= 0 {
		return []lua.LValue{}, nil
	}
	results := make([]lua.LValue, nRet)
	for i := 0; i < nRet; i++ {
		results[i] = s.L.Get(stackTop + i + 1)
	}
	s.L.Pop(nRet)

	return results, nil
}

// LuaState returns the underlying gopher-lua state.
//
// Direct access to LState bypasses the mutex lock and the sandbox. The
// caller is responsible for thread-safety.
func (s *State) LuaState() *lua.LState {
	return s.L
}

// Close releases all resources associated with the Lua state. After
// Close is called, all other methods return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.L.Close()
	s.closed = true
	return nil
}
