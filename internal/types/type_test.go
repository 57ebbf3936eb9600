package types

import (
	"testing"

	"github.com/alexandermeade/jason-rs/internal/value"
)

func TestPrimitiveMatches(t *testing.T) {
	if !Primitive(TInt).Matches(value.Int(5)) {
		t.Errorf("Int should match Int(5)")
	}
	if Primitive(TInt).Matches(value.Float(5.0)) {
		t.Errorf("Int should not match Float(5.0)")
	}
	if !Primitive(TNumber).Matches(value.Float(5.5)) {
		t.Errorf("Number should match Float(5.5)")
	}
	if !Primitive(TAny).Matches(value.Null()) {
		t.Errorf("Any should match anything")
	}
}

func TestUnionFlattens(t *testing.T) {
	u1 := NewUnion(Primitive(TInt), Primitive(TString))
	u2 := NewUnion(u1, Primitive(TBool))
	if len(u2.Members) != 3 {
		t.Fatalf("expected flattened union of 3 members, got %d: %v", len(u2.Members), u2.Members)
	}
}

func TestListMatches(t *testing.T) {
	lt := List{Elem: Primitive(TInt)}
	if !lt.Matches(value.Array(value.Int(1), value.Int(2))) {
		t.Errorf("List(Int) should match [1, 2]")
	}
	if lt.Matches(value.Array(value.Int(1), value.String("x"))) {
		t.Errorf("List(Int) should not match [1, \"x\"]")
	}
}

func TestObjectMatchesExactKeys(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Primitive(TInt))
	v := value.Object()
	v.Set("a", value.Int(1))
	if !obj.Matches(v) {
		t.Errorf("object type should match exact key set")
	}
	v.Set("b", value.Int(2))
	if obj.Matches(v) {
		t.Errorf("object type should reject extra keys")
	}
}

func TestVarianceMatchesAnyOneKey(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Primitive(TInt))
	obj.Set("b", Primitive(TString))
	vr := Variance{Object: obj}

	v := value.Object()
	v.Set("a", value.Int(1))
	v.Set("z", value.Bool(true))
	if !vr.Matches(v) {
		t.Errorf("variance should match when at least one declared key matches")
	}

	v2 := value.Object()
	v2.Set("a", value.String("wrong type"))
	if vr.Matches(v2) {
		t.Errorf("variance should not match when the only declared key present has the wrong type")
	}
}

func TestIntervalIntersect(t *testing.T) {
	a := GreaterOrEqual(0)
	b := LessThan(10)
	iv, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("Intersect error: %v", err)
	}
	if !iv.Contains(5) || iv.Contains(10) || !iv.Contains(0) {
		t.Errorf("unexpected interval bounds: %s", iv)
	}
}

func TestIntervalIntersectEmpty(t *testing.T) {
	a := GreaterThan(10)
	b := LessThan(5)
	if _, err := Intersect(a, b); err == nil {
		t.Fatalf("expected an error for an empty interval intersection")
	}
}

func TestInferDistinguishesIntAndFloat(t *testing.T) {
	if Infer(value.Int(1)).String() != "Int" {
		t.Errorf("Infer(Int(1)) should be Int")
	}
	if Infer(value.Float(1.5)).String() != "Float" {
		t.Errorf("Infer(Float(1.5)) should be Float")
	}
}

func TestInferHeterogeneousList(t *testing.T) {
	lt := Infer(value.Array(value.Int(1), value.String("x"))).(List)
	if _, ok := lt.Elem.(Union); !ok {
		t.Fatalf("expected a union element type, got %T", lt.Elem)
	}
}

func TestInferUniformListCollapses(t *testing.T) {
	lt := Infer(value.Array(value.Int(1), value.Int(2))).(List)
	if lt.Elem.String() != "Int" {
		t.Fatalf("expected uniform list to collapse to Int, got %s", lt.Elem)
	}
}

func TestDiffReportsMissingExtraAndMismatched(t *testing.T) {
	want := NewObject()
	want.Set("a", Primitive(TInt))
	want.Set("b", Primitive(TString))

	got := NewObject()
	got.Set("a", Primitive(TString))
	got.Set("c", Primitive(TBool))

	d := Diff(want, got)
	if d == "no differences" {
		t.Fatalf("expected differences to be reported")
	}
}
