package scripting

import lua "github.com/yuin/gopher-lua"

// funcCache maps a source-text name to the resolved Lua function it named
// the first time it was called, avoiding a re-parse/re-evaluate of "return
// name" on every scripting call.
type funcCache map[string]*lua.LFunction

func newFuncCache() funcCache { return make(funcCache) }
