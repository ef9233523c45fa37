package lua

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/odilia-app/odilia-common/internal/input/keymap"
)

// DefaultExecutionTimeout bounds each DoString, DoFile and Call.
const DefaultExecutionTimeout = 5 * time.Second

// ModulePrefix is the prefix of every module addons may require besides
// the safe standard ones.
const ModulePrefix = "odilia"

// State wraps gopher-lua with a restricted standard library and the
// odilia.keys module preloaded.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// made through State; code using LuaState directly must synchronize itself.
type State struct {
	ls *lua.LState

	mu sync.Mutex

	executionTimeout time.Duration
	keymap           *keymap.Keymap
	output           io.Writer

	closed bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the execution timeout for Lua calls.
// Zero disables the timeout.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// WithKeymap preloads the odilia.keymap module over km.
func WithKeymap(km *keymap.Keymap) StateOption {
	return func(s *State) {
		s.keymap = km
	}
}

// WithOutput redirects the Lua print function to w.
func WithOutput(w io.Writer) StateOption {
	return func(s *State) {
		s.output = w
	}
}

// NewState creates a new sandboxed Lua state with odilia.keys preloaded.
func NewState(opts ...StateOption) *State {
	state := &State{executionTimeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(state)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	installSafeRequire(L)
	Preload(L)
	if state.keymap != nil {
		PreloadKeymap(L, state.keymap)
	}
	if state.output != nil {
		installPrint(L, state.output)
	}

	state.ls = L
	return state
}

// openSafeLibraries opens only side-effect free standard libraries.
// io, os and debug are never opened.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// installSafeRequire empties the module search paths and replaces require
// with one that only resolves standard and odilia modules.
func installSafeRequire(L *lua.LState) {
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	safe := map[string]bool{"string": true, "table": true, "math": true}
	original := L.GetGlobal("require")

	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safe[name] && name != ModulePrefix && !strings.HasPrefix(name, ModulePrefix+".") {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}

// installPrint replaces print with one that writes its tab-separated
// arguments to w.
func installPrint(L *lua.LState, w io.Writer) {
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(w, strings.Join(parts, "\t"))
		return 0
	}))
}

// withTimeout runs fn with the execution timeout applied to L.
func (s *State) withTimeout(fn func() error) (err error) {
	if s.executionTimeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.executionTimeout)
		defer cancel()
		s.ls.SetContext(ctx)
		defer s.ls.RemoveContext()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// DoString executes a Lua chunk.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.withTimeout(func() error {
		return s.ls.DoString(code)
	})
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.withTimeout(func() error {
		return s.ls.DoFile(path)
	})
}

// Call calls a global Lua function with the given arguments.
// Returns an empty slice (not nil) if the function returns no values.
func (s *State) Call(fn string, args ...lua.LValue) ([]lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStateClosed
	}

	fnVal := s.ls.GetGlobal(fn)
	if fnVal.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%q is not a function (got %s)", fn, fnVal.Type())
	}

	stackTop := s.ls.GetTop()
	err := s.withTimeout(func() error {
		s.ls.Push(fnVal)
		for _, arg := range args {
			s.ls.Push(arg)
		}
		return s.ls.PCall(len(args), lua.MultRet, nil)
	})
	if err != nil {
		s.ls.SetTop(stackTop)
		return nil, err
	}

	nRet := s.ls.GetTop() - stackTop
	results := make([]lua.LValue, 0, nRet)
	for i := 1; i <= nRet; i++ {
		results = append(results, s.ls.Get(stackTop+i))
	}
	s.ls.SetTop(stackTop)
	return results, nil
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.ls.GetGlobal(name)
}

// LuaState returns the underlying gopher-lua state.
func (s *State) LuaState() *lua.LState {
	return s.ls
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases all resources associated with the Lua state.
// After Close is called, all other methods will return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.ls.Close()
	s.closed = true
	return nil
}
