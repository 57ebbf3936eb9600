// Package scripting embeds a Lua runtime as jason's scripting bridge. A
// single Interpreter's base environment backs every per-file child
// Environment through Lua metatable __index chaining, so base-defined
// functions resolve from any file's environment without copying.
package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/alexandermeade/jason-rs/internal/value"
)

// Interpreter is the single embedded Lua runtime shared by reference
// across every Environment produced for one compile() call.
type Interpreter struct {
	state *lua.LState
	base  *lua.LTable
}

// New creates an Interpreter with a fresh Lua state and base environment.
// If source is non-empty it is run into the base environment once, via the
// builder facade's WithScriptingSource option.
func New(source string) (*Interpreter, error) {
	st := lua.NewState()
	base := st.NewTable()

	in := &Interpreter{state: st, base: base}
	if source != "" {
		if err := in.loadIntoEnv(base, source); err != nil {
			st.Close()
			return nil, err
		}
	}
	return in, nil
}

// Close releases the underlying Lua state.
func (in *Interpreter) Close() { in.state.Close() }

// NewEnvironment creates a per-file child environment chained to the base
// environment via a metatable __index, so a name undefined in the child
// resolves to the base's definition.
func (in *Interpreter) NewEnvironment() *Environment {
	env := in.state.NewTable()
	mt := in.state.NewTable()
	mt.RawSetString("__index", in.base)
	in.state.SetMetatable(env, mt)
	return &Environment{interp: in, table: env, cache: newFuncCache()}
}

func (in *Interpreter) loadIntoEnv(env *lua.LTable, source string) error {
	fn, err := in.state.LoadString(source)
	if err != nil {
		return fmt.Errorf("scripting: compile: %w", err)
	}
	in.state.SetFEnv(fn, env)
	in.state.Push(fn)
	if err := in.state.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("scripting: run: %w", err)
	}
	return nil
}

// Environment is one file's scripting environment: a Lua table chained to
// the interpreter's base table, plus this file's compiled-function
// reference cache, keyed by source-text name.
type Environment struct {
	interp *Interpreter
	table  *lua.LTable
	cache  funcCache
}

// Load runs source into this environment — a file's own inline scripting
// source, distinct from the base source preloaded by New.
func (e *Environment) Load(source string) error {
	return e.interp.loadIntoEnv(e.table, source)
}

// resolve looks up name's function value in this environment's cache; on a
// miss it evaluates name as a Lua expression in this environment and
// caches the result.
func (e *Environment) resolve(name string) (*lua.LFunction, error) {
	if fn, ok := e.cache[name]; ok {
		return fn, nil
	}

	fn, err := e.interp.state.LoadString("return " + name)
	if err != nil {
		return nil, fmt.Errorf("scripting: %s is not defined: %w", name, err)
	}
	e.interp.state.SetFEnv(fn, e.table)
	e.interp.state.Push(fn)
	if err := e.interp.state.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("scripting: evaluating %s: %w", name, err)
	}
	ret := e.interp.state.Get(-1)
	e.interp.state.Pop(1)

	fnVal, ok := ret.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("scripting: %s is not a function", name)
	}
	e.cache[name] = fnVal
	return fnVal, nil
}

// CallNamed resolves name to a function (caching the reference), calls it
// with args converted to Lua values, and converts its first return value
// back to a runtime Value.
func (e *Environment) CallNamed(name string, args []*value.Value) (*value.Value, error) {
	fn, err := e.resolve(name)
	if err != nil {
		return nil, err
	}

	e.interp.state.Push(fn)
	for _, a := range args {
		e.interp.state.Push(ToLua(e.interp.state, a))
	}
	if err := e.interp.state.PCall(len(args), 1, nil); err != nil {
		return nil, err
	}
	ret := e.interp.state.Get(-1)
	e.interp.state.Pop(1)
	return FromLua(ret), nil
}

// UseAll copies every symbol from the base environment into this one's
// own table.
func (e *Environment) UseAll() {
	e.interp.base.ForEach(func(k, v lua.LValue) {
		e.table.RawSet(k, v)
	})
}

// UseOne copies a single named symbol from the base environment.
func (e *Environment) UseOne(name string) error {
	v := e.interp.base.RawGetString(name)
	if v == lua.LNil {
		return fmt.Errorf("scripting: %s is not defined in the base environment", name)
	}
	e.table.RawSetString(name, v)
	return nil
}

// LState exposes the underlying Lua state for value conversion (convert.go)
// without every caller needing to import gopher-lua directly.
func (e *Environment) LState() *lua.LState { return e.interp.state }
