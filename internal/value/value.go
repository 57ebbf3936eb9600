// Package value implements jason's runtime value: the JSON-shaped sum type
// every expression evaluates to. It distinguishes Int from Float (jason's
// numeric-promotion rules depend on that distinction) and preserves object
// key insertion order through MarshalJSON rather than round-tripping
// through a plain Go map.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies which variant of the sum type a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is jason's runtime value: Null | Bool | Int | Float | String |
// Array of Value | Object (ordered mapping from String to Value). It
// intentionally avoids interface{} so downstream evaluator code stays
// type-safe and switch-exhaustive on Kind.
type Value struct {
	kind Kind

	b   bool
	i   int64
	f   float64
	s   string
	arr []*Value

	objEntries map[string]*Value
	objKeys    []string // preserves insertion order
}

func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func Null() *Value           { return &Value{kind: KindNull} }
func Bool(b bool) *Value     { return &Value{kind: KindBool, b: b} }
func Int(i int64) *Value     { return &Value{kind: KindInt, i: i} }
func Float(f float64) *Value { return &Value{kind: KindFloat, f: f} }
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// Array returns an array value wrapping elems directly (no copy).
func Array(elems ...*Value) *Value {
	if elems == nil {
		elems = []*Value{}
	}
	return &Value{kind: KindArray, arr: elems}
}

// Object returns an empty object value; use Set to populate it in
// insertion order.
func Object() *Value {
	return &Value{kind: KindObject, objEntries: map[string]*Value{}, objKeys: []string{}}
}

func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsNumeric() bool {
	k := v.Kind()
	return k == KindInt || k == KindFloat
}

func (v *Value) BoolValue() bool {
	if v == nil || v.kind != KindBool {
		return false
	}
	return v.b
}

func (v *Value) IntValue() int64 {
	if v == nil || v.kind != KindInt {
		return 0
	}
	return v.i
}

// FloatValue returns the numeric value as a float64 regardless of whether
// the underlying kind is Int or Float — callers promoting to float call
// this rather than branching on Kind themselves.
func (v *Value) FloatValue() float64 {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	default:
		return 0
	}
}

func (v *Value) StringValue() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.s
}

func (v *Value) ArrayLen() int {
	if v == nil || v.kind != KindArray {
		return 0
	}
	return len(v.arr)
}

func (v *Value) ArrayGet(i int) *Value {
	if v == nil || v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// ArrayElements returns a shallow copy of the element slice.
func (v *Value) ArrayElements() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	out := make([]*Value, len(v.arr))
	copy(out, v.arr)
	return out
}

func (v *Value) ArrayAppend(child *Value) {
	if v == nil || v.kind != KindArray {
		return
	}
	v.arr = append(v.arr, child)
}

func (v *Value) ObjectGet(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	child, ok := v.objEntries[key]
	return child, ok
}

// Set inserts or replaces key. New keys are appended to the insertion-order
// slice; existing keys keep their original position.
func (v *Value) Set(key string, child *Value) {
	if v == nil || v.kind != KindObject {
		return
	}
	if _, exists := v.objEntries[key]; !exists {
		v.objKeys = append(v.objKeys, key)
	}
	v.objEntries[key] = child
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	out := make([]string, len(v.objKeys))
	copy(out, v.objKeys)
	return out
}

func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	if v.kind == KindObject {
		return len(v.objKeys)
	}
	return v.ArrayLen()
}

// Equal reports deep, kind-sensitive structural equality. Int(1) and
// Float(1.0) are NOT equal — numeric kind identity is always preserved.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.BoolValue() == b.BoolValue()
	case KindInt:
		return a.IntValue() == b.IntValue()
	case KindFloat:
		return a.FloatValue() == b.FloatValue()
	case KindString:
		return a.StringValue() == b.StringValue()
	case KindArray:
		if a.ArrayLen() != b.ArrayLen() {
			return false
		}
		for i := 0; i < a.ArrayLen(); i++ {
			if !Equal(a.ArrayGet(i), b.ArrayGet(i)) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.objKeys) != len(b.objKeys) {
			return false
		}
		for _, k := range a.objKeys {
			av, _ := a.ObjectGet(k)
			bv, ok := b.ObjectGet(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// NumericallyEqual reports whether a and b are both numeric and equal as
// float64, regardless of Int/Float distinction — used by type-literal
// matching (NumberLiteral(n) matches any numerically-equal value).
func NumericallyEqual(a, b *Value) bool {
	return a.IsNumeric() && b.IsNumeric() && a.FloatValue() == b.FloatValue()
}

// MarshalJSON renders v as JSON, preserving object key insertion order by
// building the object body directly instead of round-tripping through a
// plain Go map (whose key order is unspecified in encoding/json).
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := elem.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, key := range v.objKeys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			b, err := v.objEntries[key].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("value: cannot marshal kind %s", v.kind)
	}
}

func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<value error: %v>", err)
	}
	return string(b)
}
