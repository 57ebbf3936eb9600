// Package types implements jason's structural type system: primitives,
// literal types, intervals with inclusivity, unions, list/object shapes,
// variance, and the Any escape hatch.
package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexandermeade/jason-rs/internal/value"
)

// Type is implemented by every member of the structural type system. A
// Type is immutable once constructed.
type Type interface {
	// Matches reports whether v satisfies this type.
	Matches(v *value.Value) bool
	String() string
}

// Primitive is one of the JSON-kind-level primitive types.
type Primitive int

const (
	TString Primitive = iota
	TNumber           // either Int or Float
	TInt
	TFloat
	TBool
	TNull
	TAny
)

func (p Primitive) String() string {
	switch p {
	case TString:
		return "String"
	case TNumber:
		return "Number"
	case TInt:
		return "Int"
	case TFloat:
		return "Float"
	case TBool:
		return "Bool"
	case TNull:
		return "Null"
	case TAny:
		return "Any"
	default:
		return "?"
	}
}

// Matches implements Type for Primitive: primitives match their JSON kinds;
// Int requires an integer, Float a non-integer number, Number either.
func (p Primitive) Matches(v *value.Value) bool {
	switch p {
	case TString:
		return v.Kind() == value.KindString
	case TNumber:
		return v.IsNumeric()
	case TInt:
		return v.Kind() == value.KindInt
	case TFloat:
		return v.Kind() == value.KindFloat
	case TBool:
		return v.Kind() == value.KindBool
	case TNull:
		return v.Kind() == value.KindNull
	case TAny:
		return true
	default:
		return false
	}
}

// NumberLiteral matches a numeric value that is numerically equal to N.
type NumberLiteral struct{ N float64 }

func (l NumberLiteral) Matches(v *value.Value) bool {
	return v.IsNumeric() && v.FloatValue() == l.N
}

func (l NumberLiteral) String() string { return fmt.Sprintf("%g", l.N) }

// StringLiteral matches a string value equal to S.
type StringLiteral struct{ S string }

func (l StringLiteral) Matches(v *value.Value) bool {
	return v.Kind() == value.KindString && v.StringValue() == l.S
}

func (l StringLiteral) String() string { return fmt.Sprintf("%q", l.S) }

// Union matches if any member matches. Constructing a Union flattens
// nested unions on either side.
type Union struct{ Members []Type }

func NewUnion(a, b Type) Union {
	var members []Type
	for _, t := range []Type{a, b} {
		if u, ok := t.(Union); ok {
			members = append(members, u.Members...)
		} else {
			members = append(members, t)
		}
	}
	return Union{Members: members}
}

func (u Union) Matches(v *value.Value) bool {
	for _, m := range u.Members {
		if m.Matches(v) {
			return true
		}
	}
	return false
}

func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// List matches an array every element of which matches Elem.
type List struct{ Elem Type }

func (l List) Matches(v *value.Value) bool {
	if v.Kind() != value.KindArray {
		return false
	}
	for _, elem := range v.ArrayElements() {
		if !l.Elem.Matches(elem) {
			return false
		}
	}
	return true
}

func (l List) String() string { return "[" + l.Elem.String() + "]" }

// Object matches an object whose key set is exactly M's keys and whose
// values match key-wise. Two Object types are structurally equal, by
// their key-type map, when Equal reports true.
type Object struct {
	Keys   []string // insertion/declaration order, for diagnostics
	Fields map[string]Type
}

func NewObject() *Object {
	return &Object{Fields: map[string]Type{}}
}

func (o *Object) Set(key string, t Type) {
	if _, exists := o.Fields[key]; !exists {
		o.Keys = append(o.Keys, key)
	}
	o.Fields[key] = t
}

func (o *Object) Matches(v *value.Value) bool {
	if v.Kind() != value.KindObject {
		return false
	}
	vKeys := v.Keys()
	if len(vKeys) != len(o.Keys) {
		return false
	}
	for _, k := range o.Keys {
		fieldType, ok := o.Fields[k]
		if !ok {
			return false
		}
		child, present := v.ObjectGet(k)
		if !present || !fieldType.Matches(child) {
			return false
		}
	}
	return true
}

func (o *Object) String() string {
	keys := append([]string(nil), o.Keys...)
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, o.Fields[k].String())
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Equal reports structural equality of two Object types: same key set,
// each key's type equal by String() representation (types carry no
// identity beyond their structure).
func (o *Object) Equal(other *Object) bool {
	if len(o.Fields) != len(other.Fields) {
		return false
	}
	for k, t := range o.Fields {
		ot, ok := other.Fields[k]
		if !ok || t.String() != ot.String() {
			return false
		}
	}
	return true
}

// Variance relaxes an Object match to "at least one declared key is
// present with a matching type; other keys are tolerated".
type Variance struct{ Object *Object }

func (vr Variance) Matches(v *value.Value) bool {
	if v.Kind() != value.KindObject {
		return false
	}
	for _, k := range vr.Object.Keys {
		child, present := v.ObjectGet(k)
		if present && vr.Object.Fields[k].Matches(child) {
			return true
		}
	}
	return false
}

func (vr Variance) String() string { return vr.Object.String() + "'" }
