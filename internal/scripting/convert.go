package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/alexandermeade/jason-rs/internal/value"
)

// ToLua converts a runtime Value into a Lua value: Null->nil, Bool->bool,
// Int/Float->number, String->string, arrays->a 1-indexed table,
// objects->a string-keyed table.
func ToLua(L *lua.LState, v *value.Value) lua.LValue {
	switch v.Kind() {
	case value.KindNull:
		return lua.LNil
	case value.KindBool:
		return lua.LBool(v.BoolValue())
	case value.KindInt:
		return lua.LNumber(v.IntValue())
	case value.KindFloat:
		return lua.LNumber(v.FloatValue())
	case value.KindString:
		return lua.LString(v.StringValue())
	case value.KindArray:
		t := L.NewTable()
		for i, elem := range v.ArrayElements() {
			t.RawSetInt(i+1, ToLua(L, elem))
		}
		return t
	case value.KindObject:
		t := L.NewTable()
		for _, k := range v.Keys() {
			child, _ := v.ObjectGet(k)
			t.RawSetString(k, ToLua(L, child))
		}
		return t
	default:
		return lua.LNil
	}
}

// FromLua converts a Lua value back to a runtime Value:
// a table whose keys are exactly 1..n with no gaps becomes an array; any
// other table becomes an object; unsupported types become Null.
func FromLua(lv lua.LValue) *value.Value {
	switch v := lv.(type) {
	case *lua.LNilType:
		return value.Null()
	case lua.LBool:
		return value.Bool(bool(v))
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return value.Int(int64(f))
		}
		return value.Float(f)
	case lua.LString:
		return value.String(string(v))
	case *lua.LTable:
		return tableToValue(v)
	default:
		return value.Null()
	}
}

func tableToValue(t *lua.LTable) *value.Value {
	n := t.Len()
	isArray := n > 0
	for i := 1; isArray && i <= n; i++ {
		if t.RawGetInt(i) == lua.LNil {
			isArray = false
		}
	}
	if isArray {
		arr := make([]*value.Value, 0, n)
		for i := 1; i <= n; i++ {
			arr = append(arr, FromLua(t.RawGetInt(i)))
		}
		return value.Array(arr...)
	}

	obj := value.Object()
	t.ForEach(func(k, v lua.LValue) {
		if key, ok := k.(lua.LString); ok {
			obj.Set(string(key), FromLua(v))
		}
	})
	return obj
}
