package types

import (
	"testing"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/token"
)

func ident(name string) *ast.Node {
	return ast.New(token.Token{Type: token.IDENT, Literal: name})
}

func typeKw(tt token.TokenType) *ast.Node {
	return ast.New(token.Token{Type: tt})
}

func TestToTypeUnion(t *testing.T) {
	n := ast.NewBinary(token.Token{Type: token.PIPE}, typeKw(token.STRTYPE), typeKw(token.INTTYPE))
	ty, err := ToType(n)
	if err != nil {
		t.Fatalf("ToType error: %v", err)
	}
	u, ok := ty.(Union)
	if !ok || len(u.Members) != 2 {
		t.Fatalf("expected a 2-member union, got %#v", ty)
	}
}

func TestToTypeObjectBlock(t *testing.T) {
	entry := ast.NewBinary(token.Token{Type: token.COLON}, ident("a"), typeKw(token.INTTYPE))
	block := ast.NewGroup(token.Token{Type: token.BLOCK}, []*ast.Node{entry}, nil)
	ty, err := ToType(block)
	if err != nil {
		t.Fatalf("ToType error: %v", err)
	}
	obj, ok := ty.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %#v", ty)
	}
	if _, ok := obj.Fields["a"]; !ok {
		t.Fatalf("expected field 'a' in object type")
	}
}

func TestToTypeObjectConcatRightWins(t *testing.T) {
	aEntry := ast.NewBinary(token.Token{Type: token.COLON}, ident("k"), typeKw(token.INTTYPE))
	bEntry := ast.NewBinary(token.Token{Type: token.COLON}, ident("k"), typeKw(token.STRTYPE))
	a := ast.NewGroup(token.Token{Type: token.BLOCK}, []*ast.Node{aEntry}, nil)
	b := ast.NewGroup(token.Token{Type: token.BLOCK}, []*ast.Node{bEntry}, nil)
	n := ast.NewBinary(token.Token{Type: token.PLUS}, a, b)

	ty, err := ToType(n)
	if err != nil {
		t.Fatalf("ToType error: %v", err)
	}
	obj := ty.(*Object)
	if obj.Fields["k"].String() != "String" {
		t.Fatalf("expected right operand's type to win on key conflict, got %s", obj.Fields["k"])
	}
}

func TestToTypeBoundAndWhile(t *testing.T) {
	gte := ast.NewUnary(token.Token{Type: token.GE}, ast.New(token.Token{Type: token.INT, Literal: "0"}))
	lt := ast.NewUnary(token.Token{Type: token.LT}, ast.New(token.Token{Type: token.INT, Literal: "10"}))
	n := ast.NewBinary(token.Token{Type: token.WHILE}, gte, lt)

	ty, err := ToType(n)
	if err != nil {
		t.Fatalf("ToType error: %v", err)
	}
	iv := ty.(Interval)
	if !iv.Contains(5) || iv.Contains(10) {
		t.Fatalf("unexpected interval: %s", iv)
	}
}

func TestToTypeListVariants(t *testing.T) {
	empty := ast.NewGroup(token.Token{Type: token.LIST}, nil, nil)
	ty, _ := ToType(empty)
	if ty.(List).Elem.String() != "Any" {
		t.Fatalf("empty list type should be List(Any)")
	}

	single := ast.NewGroup(token.Token{Type: token.LIST}, []*ast.Node{typeKw(token.INTTYPE)}, nil)
	ty2, _ := ToType(single)
	if ty2.(List).Elem.String() != "Int" {
		t.Fatalf("single-element list type should not become a union")
	}

	multi := ast.NewGroup(token.Token{Type: token.LIST}, []*ast.Node{typeKw(token.INTTYPE), typeKw(token.STRTYPE)}, nil)
	ty3, _ := ToType(multi)
	if _, ok := ty3.(List).Elem.(Union); !ok {
		t.Fatalf("multi-element list type should union its members")
	}
}

func TestToTypeVariance(t *testing.T) {
	entry := ast.NewBinary(token.Token{Type: token.COLON}, ident("a"), typeKw(token.INTTYPE))
	block := ast.NewGroup(token.Token{Type: token.BLOCK}, []*ast.Node{entry}, nil)
	n := &ast.Node{Token: token.Token{Type: token.QUOTE}, Left: block}

	ty, err := ToType(n)
	if err != nil {
		t.Fatalf("ToType error: %v", err)
	}
	if _, ok := ty.(Variance); !ok {
		t.Fatalf("expected Variance, got %#v", ty)
	}
}
