package evaluator

import (
	"testing"

	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/value"
)

func TestEvalConvertStr(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"str(5)", "5"},
		{"str(true)", "true"},
		{`str("already")`, "already"},
		{"str(null)", "null"},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			c := newTestContext("")
			got, err := evalExpr(t, c, tc.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind() != value.KindString || got.StringValue() != tc.want {
				t.Errorf("got %v, want %q", got, tc.want)
			}
		})
	}
}

func TestEvalConvertInt(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `int("42")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IntValue() != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestEvalConvertIntFromFloatTruncates(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `int(3.9)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IntValue() != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestEvalConvertIntInvalidString(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `int("not a number")`)
	assertErrorKind(t, err, errors.ConversionError)
}

func TestEvalConvertFloat(t *testing.T) {
	c := newTestContext("")
	got, err := evalExpr(t, c, `float("3.5")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FloatValue() != 3.5 {
		t.Errorf("got %v, want 3.5", got)
	}
}

func TestEvalConvertWrongArgCount(t *testing.T) {
	c := newTestContext("")
	_, err := evalExpr(t, c, `str()`)
	assertErrorKind(t, err, errors.InvalidOperation)
}
