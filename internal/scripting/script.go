package scripting

import (
	"errors"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// ErrUndefinedFunction is returned when a script does not define the called function.
var ErrUndefinedFunction = errors.New("scripting: function not defined")

// Script is a compiled Lua chunk. A Script holds no interpreter state, so it is
// safe to share across goroutines; every Call runs in a fresh sandbox.
type Script struct {
	name   string
	proto  *lua.FunctionProto
	limits Limits
}

// Compile parses and compiles src under the given chunk name.
//
// Precondition: name should identify the source for error messages.
// Postcondition: Returns a Script ready for Call, or a non-nil error on syntax errors.
func Compile(name, src string, limits Limits) (*Script, error) {
	chunk, err := parse.Parse(strings.NewReader(src), name)
	if err != nil {
		return nil, fmt.Errorf("scripting: parsing %q: %w", name, err)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("scripting: compiling %q: %w", name, err)
	}
	return &Script{name: name, proto: proto, limits: limits}, nil
}

// Name returns the chunk name the script was compiled under.
func (s *Script) Name() string { return s.name }

// Call executes the chunk in a new sandbox and then calls the global function fn
// with args, returning its first result.
//
// Postcondition: Returns (LNil, ErrUndefinedFunction) if fn is not a function;
// Lua runtime errors and instruction-limit overruns are returned as errors.
func (s *Script) Call(fn string, args ...lua.LValue) (lua.LValue, error) {
	L, cancel := NewSandboxedState(s.limits)
	defer cancel()
	defer L.Close()

	L.Push(L.NewFunctionFromProto(s.proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return lua.LNil, fmt.Errorf("scripting: running %q: %w", s.name, err)
	}

	f, ok := L.GetGlobal(fn).(*lua.LFunction)
	if !ok {
		return lua.LNil, fmt.Errorf("%w: %s in %q", ErrUndefinedFunction, fn, s.name)
	}
	if err := L.CallByParam(lua.P{Fn: f, NRet: 1, Protect: true}, args...); err != nil {
		return lua.LNil, fmt.Errorf("scripting: calling %s in %q: %w", fn, s.name, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// CallString is Call with the result converted to a string. Numbers are
// formatted without a trailing ".0"; nil yields "".
func (s *Script) CallString(fn string, args ...lua.LValue) (string, error) {
	ret, err := s.Call(fn, args...)
	if err != nil {
		return "", err
	}
	if ret == lua.LNil {
		return "", nil
	}
	return lua.LVAsString(ret), nil
}
