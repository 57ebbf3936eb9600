package evaluator

import (
	"testing"

	"github.com/alexandermeade/jason-rs/internal/errors"
)

func TestEvalTemplateDefAndCall(t *testing.T) {
	c, err := runSource(t, `Point(x, y) { x : x, y : y }
p := Point(1, 2)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := c.values["p"]
	px, _ := p.ObjectGet("x")
	py, _ := p.ObjectGet("y")
	if px.IntValue() != 1 || py.IntValue() != 2 {
		t.Errorf("got x=%v y=%v, want 1, 2", px, py)
	}
}

func TestEvalTemplateCallUndefined(t *testing.T) {
	_, err := runSource(t, `out Missing(1)`)
	if err == nil {
		t.Fatalf("expected an error calling an undefined template")
	}
}

func TestEvalTemplateCallWrongArgCount(t *testing.T) {
	_, err := runSource(t, `P(x) { x : x }
out P(1, 2)
`)
	if err == nil {
		t.Fatalf("expected an arity error")
	}
}

// TestEvalTemplateSignatureBeforeDefinition checks that a signature
// declared before the template definition still types its parameters and
// result, so a mismatched call argument is rejected.
func TestEvalTemplateSignatureBeforeDefinition(t *testing.T) {
	_, err := runSource(t, `P(name, age) :: { name : String, age : Int }
P(name, age) { name : name, age : age }
out P("alex", "twenty")
`)
	if err == nil {
		t.Fatalf("expected a type error on the mismatched 'age' argument")
	}
	bundle, ok := err.(*errors.Bundle)
	if !ok {
		t.Fatalf("expected *errors.Bundle, got %T", err)
	}
	if bundle.Errors[0].Kind != errors.TypeError {
		t.Errorf("got error kind %v, want TypeError", bundle.Errors[0].Kind)
	}
}

func TestEvalTemplateSignatureAcceptsMatchingCall(t *testing.T) {
	c, err := runSource(t, `P(name, age) :: { name : String, age : Int }
P(name, age) { name : name, age : age }
r := P("alex", 20)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	age, _ := c.values["r"].ObjectGet("age")
	if age.IntValue() != 20 {
		t.Errorf("got age %v, want 20", age)
	}
}

func TestEvalTemplateSelfCallRejectedAtDefinition(t *testing.T) {
	_, err := runSource(t, `Bad(x) { y : Bad(x) }`)
	if err == nil {
		t.Fatalf("expected an error defining a self-referential template")
	}
}
