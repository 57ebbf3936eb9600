package types

import "github.com/alexandermeade/jason-rs/internal/value"

// Infer derives a Type from a runtime value: the structural reverse of
// Matches. Integers infer Int, non-integers infer Float, and a
// heterogeneous array infers List(Union(distinct element types)) — a
// uniform array's elements collapse to a single member instead of a
// one-element union.
func Infer(v *value.Value) Type {
	switch v.Kind() {
	case value.KindNull:
		return Primitive(TNull)
	case value.KindBool:
		return Primitive(TBool)
	case value.KindInt:
		return Primitive(TInt)
	case value.KindFloat:
		return Primitive(TFloat)
	case value.KindString:
		return Primitive(TString)
	case value.KindArray:
		return inferList(v)
	case value.KindObject:
		return inferObject(v)
	default:
		return Primitive(TAny)
	}
}

func inferList(v *value.Value) Type {
	elems := v.ArrayElements()
	if len(elems) == 0 {
		return List{Elem: Primitive(TAny)}
	}
	var distinct []Type
	for _, elem := range elems {
		t := Infer(elem)
		if !containsType(distinct, t) {
			distinct = append(distinct, t)
		}
	}
	if len(distinct) == 1 {
		return List{Elem: distinct[0]}
	}
	union := distinct[0]
	for _, t := range distinct[1:] {
		union = NewUnion(union, t)
	}
	return List{Elem: union}
}

func containsType(types []Type, t Type) bool {
	for _, existing := range types {
		if existing.String() == t.String() {
			return true
		}
	}
	return false
}

func inferObject(v *value.Value) Type {
	obj := NewObject()
	for _, k := range v.Keys() {
		child, _ := v.ObjectGet(k)
		obj.Set(k, Infer(child))
	}
	return obj
}
