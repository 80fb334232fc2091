// Package scripting runs rule-content scripts, such as a class's per-level
// feature formulas, inside a restricted GopherLua state. It knows nothing of
// the rules themselves; callers pass levels in and read values back.
package scripting

import (
	"context"
	"math"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// Limits bounds a single script evaluation. Zero fields take the defaults.
type Limits struct {
	// Instructions is the opcode budget for loading the chunk and one call.
	Instructions int
	// CallStack is the maximum Lua call depth.
	CallStack int
}

// DefaultLimits suits level formulas, which run in a few hundred opcodes.
var DefaultLimits = Limits{Instructions: 50_000, CallStack: 64}

func (l Limits) withDefaults() Limits {
	if l.Instructions <= 0 {
		l.Instructions = DefaultLimits.Instructions
	}
	if l.CallStack <= 0 {
		l.CallStack = DefaultLimits.CallStack
	}
	return l
}

// opcodeBudget cancels itself once its budget is spent. GopherLua polls
// Done once per executed opcode, so the budget counts instructions exactly.
type opcodeBudget struct {
	context.Context
	left   atomic.Int64
	cancel context.CancelFunc
}

func (b *opcodeBudget) Done() <-chan struct{} {
	if b.left.Add(-1) <= 0 {
		b.cancel()
	}
	return b.Context.Done()
}

// NewSandboxedState returns a Lua state for one script evaluation:
//   - only the base, table, string and math libraries are opened
//   - file loading, module loading, garbage-collector control and print are removed
//   - div(a, b) is available for floored division of level arithmetic
//   - execution stops with an error once limits.Instructions opcodes have run
//
// Postcondition: The caller owns the returned state and cancel func and must
// call both cancel and L.Close.
func NewSandboxedState(limits Limits) (*lua.LState, context.CancelFunc) {
	limits = limits.withDefaults()

	L := lua.NewState(lua.Options{SkipOpenLibs: true, CallStackSize: limits.CallStack})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require", "print"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("div", L.NewFunction(luaDiv))

	ctx, cancel := context.WithCancel(context.Background())
	budget := &opcodeBudget{Context: ctx, cancel: cancel}
	budget.left.Store(int64(limits.Instructions))
	L.SetContext(budget)
	return L, cancel
}

// luaDiv implements div(a, b) = floor(a / b).
func luaDiv(L *lua.LState) int {
	a := float64(L.CheckNumber(1))
	b := float64(L.CheckNumber(2))
	if b == 0 {
		L.ArgError(2, "division by zero")
		return 0
	}
	L.Push(lua.LNumber(math.Floor(a / b)))
	return 1
}
