package value

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{KindNull.String(), "Null"},
		{KindBool.String(), "Bool"},
		{KindInt.String(), "Int"},
		{KindFloat.String(), "Float"},
		{KindString.String(), "String"},
		{KindArray.String(), "Array"},
		{KindObject.String(), "Object"},
		{Kind(99).String(), "Unknown"},
	}
	for _, tt := range tests {
		if tt.kind != tt.want {
			t.Errorf("got %q, want %q", tt.kind, tt.want)
		}
	}
}

func TestConstructors(t *testing.T) {
	if Null().Kind() != KindNull {
		t.Fatalf("Null() kind wrong")
	}
	if Bool(true).Kind() != KindBool {
		t.Fatalf("Bool() kind wrong")
	}
	if Int(5).Kind() != KindInt {
		t.Fatalf("Int() kind wrong")
	}
	if Float(5.5).Kind() != KindFloat {
		t.Fatalf("Float() kind wrong")
	}
	if String("x").Kind() != KindString {
		t.Fatalf("String() kind wrong")
	}
	if Array().Kind() != KindArray {
		t.Fatalf("Array() kind wrong")
	}
	if Object().Kind() != KindObject {
		t.Fatalf("Object() kind wrong")
	}
}

func TestObjectInsertionOrder(t *testing.T) {
	obj := Object()
	obj.Set("foo", String("bar"))
	obj.Set("baz", Int(7))
	obj.Set("foo", String("updated"))

	got, ok := obj.ObjectGet("foo")
	if !ok || got.StringValue() != "updated" {
		t.Fatalf("ObjectGet(foo) = %v, %v; want updated, true", got, ok)
	}
	want := []string{"foo", "baz"}
	keys := obj.Keys()
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestIntFloatDistinctness(t *testing.T) {
	if Equal(Int(1), Float(1)) {
		t.Errorf("Int(1) should not equal Float(1) under Equal")
	}
	if !NumericallyEqual(Int(1), Float(1)) {
		t.Errorf("Int(1) should be numerically equal to Float(1)")
	}
}

func TestMarshalJSONPreservesKeyOrder(t *testing.T) {
	obj := Object()
	obj.Set("z", Int(1))
	obj.Set("a", Int(2))
	b, err := obj.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	want := `{"z":1,"a":2}`
	if string(b) != want {
		t.Fatalf("MarshalJSON() = %s, want %s", b, want)
	}
}

func TestMarshalJSONArray(t *testing.T) {
	arr := Array(Int(1), String("x"), Bool(true), Null())
	b, err := arr.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	want := `[1,"x",true,null]`
	if string(b) != want {
		t.Fatalf("MarshalJSON() = %s, want %s", b, want)
	}
}

func TestDeepEqual(t *testing.T) {
	a := Object()
	a.Set("n", Array(Int(1), Int(2)))
	b := Object()
	b.Set("n", Array(Int(1), Int(2)))
	if !Equal(a, b) {
		t.Errorf("deep-equal objects should compare equal")
	}
	b.Set("n", Array(Int(1), Int(3)))
	if Equal(a, b) {
		t.Errorf("objects with differing nested arrays should not compare equal")
	}
}
