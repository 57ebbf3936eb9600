package evaluator

import (
	"testing"

	"github.com/alexandermeade/jason-rs/internal/errors"
)

func TestEvalAtArray(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `[10, 20, 30] at 1`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IntValue() != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestEvalAtArrayOutOfRange(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `[10, 20] at 5`)
	assertErrorKind(t, err, errors.IndexError)
}

func TestEvalAtString(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `"hello" at 1`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringValue() != "e" {
		t.Errorf("got %v, want \"e\"", got)
	}
}

func TestEvalAtObject(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `{a: 1, b: 2} at "b"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IntValue() != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestEvalAtObjectMissingKey(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `{a: 1} at "missing"`)
	assertErrorKind(t, err, errors.MissingKey)
}

func TestEvalPickSingleReturnsBareValue(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `[1, 2, 3] pick 1`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind().String() != "Int" {
		t.Errorf("pick 1 should return a bare value, got %v", got)
	}
}

func TestEvalPickFromEmptyArray(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `[] pick 1`)
	assertErrorKind(t, err, errors.ValueError)
}

func TestEvalUpickExceedsLength(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `[1, 2] upick 3`)
	assertErrorKind(t, err, errors.ValueError)
}

func TestEvalUpickDistinctElements(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `[1, 2, 3] upick 2`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ArrayLen() != 2 {
		t.Fatalf("got %d elements, want 2", got.ArrayLen())
	}
}

func TestEvalMap(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `[1, 2, 3] map(n) (n * 2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{2, 4, 6}
	if got.ArrayLen() != len(want) {
		t.Fatalf("got %d elements, want %d", got.ArrayLen(), len(want))
	}
	for i, w := range want {
		if got.ArrayGet(i).IntValue() != w {
			t.Errorf("element %d: got %v, want %d", i, got.ArrayGet(i), w)
		}
	}
}

func TestEvalMapWithIndex(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `["a", "b"] map(v, i) (i)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ArrayGet(0).IntValue() != 0 || got.ArrayGet(1).IntValue() != 1 {
		t.Errorf("got %v, want [0, 1]", got)
	}
}

func TestEvalMapRestoresShadowedBinding(t *testing.T) {
	c, err := runSource(t, `n := 99
doubled := [1, 2] map(n) (n * 2)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.values["n"].IntValue() != 99 {
		t.Errorf("map should restore n's prior binding, got %v", c.values["n"])
	}
}
