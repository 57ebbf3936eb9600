package evaluator

import (
	"testing"

	"github.com/alexandermeade/jason-rs/internal/errors"
)

func TestEvalCompositeStringInterpolatesValue(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `name := "alex"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := evalExpr(t, c, `$"hello {name}!"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringValue() != "hello alex!" {
		t.Errorf("got %q, want %q", got.StringValue(), "hello alex!")
	}
}

func TestEvalCompositeStringConvertsNonStringValues(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `age := 20`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := evalExpr(t, c, `$"age: {age}"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringValue() != "age: 20" {
		t.Errorf("got %q, want %q", got.StringValue(), "age: 20")
	}
}

func TestEvalCompositeStringMultipleInterpolations(t *testing.T) {
	c := newTestContext("")
	if _, err := evalExpr(t, c, `a := 1`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := evalExpr(t, c, `b := 2`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := evalExpr(t, c, `$"{a}+{b}"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringValue() != "1+2" {
		t.Errorf("got %q, want %q", got.StringValue(), "1+2")
	}
}

func TestEvalCompositeStringUndefinedVariableErrors(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `$"hello {nonexistent}"`)
	assertErrorKind(t, err, errors.UndefinedVariable)
}
