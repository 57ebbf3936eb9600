package types

import (
	"fmt"
	"strconv"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/token"
)

// ToType constructs a Type from a type-expression node — a separate
// traversal from value evaluation.
func ToType(n *ast.Node) (Type, error) {
	if n == nil {
		return Primitive(TAny), nil
	}

	switch n.Token.Type {
	case token.STRTYPE:
		return Primitive(TString), nil
	case token.NUMBER:
		return Primitive(TNumber), nil
	case token.INTTYPE:
		return Primitive(TInt), nil
	case token.FLOAT_T:
		return Primitive(TFloat), nil
	case token.BOOL:
		return Primitive(TBool), nil
	case token.ANY:
		return Primitive(TAny), nil
	case token.NULLTYPE, token.NULL:
		return Primitive(TNull), nil

	case token.INT:
		i, err := strconv.ParseInt(n.Token.Literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("types: invalid integer literal %q: %w", n.Token.Literal, err)
		}
		return NumberLiteral{N: float64(i)}, nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(n.Token.Literal, 64)
		if err != nil {
			return nil, fmt.Errorf("types: invalid float literal %q: %w", n.Token.Literal, err)
		}
		return NumberLiteral{N: f}, nil
	case token.STRING:
		return StringLiteral{S: n.Token.Literal}, nil

	case token.PIPE:
		left, err := ToType(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := ToType(n.Right)
		if err != nil {
			return nil, err
		}
		return NewUnion(left, right), nil

	case token.PLUS:
		return constructConcat(n)
	case token.AMP:
		return constructMerge(n)

	case token.LT, token.LE, token.GT, token.GE:
		return constructBound(n)
	case token.WHILE:
		return constructWhile(n)
	case token.WITH:
		return constructWith(n)

	case token.QUOTE:
		left, err := ToType(n.Left)
		if err != nil {
			return nil, err
		}
		obj, ok := left.(*Object)
		if !ok {
			return nil, fmt.Errorf("types: postfix ' (variance) requires an object type, got %s", left)
		}
		return Variance{Object: obj}, nil

	case token.BLOCK:
		return constructObject(n)
	case token.LIST:
		return constructList(n)

	default:
		return nil, fmt.Errorf("types: %s is not a valid type expression", n.Token.Type)
	}
}

func constructConcat(n *ast.Node) (Type, error) {
	leftT, err := ToType(n.Left)
	if err != nil {
		return nil, err
	}
	rightT, err := ToType(n.Right)
	if err != nil {
		return nil, err
	}
	leftObj, lok := leftT.(*Object)
	rightObj, rok := rightT.(*Object)
	if !lok || !rok {
		return nil, fmt.Errorf("types: %s + %s requires two object types", leftT, rightT)
	}
	out := NewObject()
	for _, k := range leftObj.Keys {
		out.Set(k, leftObj.Fields[k])
	}
	for _, k := range rightObj.Keys {
		out.Set(k, rightObj.Fields[k]) // right-key wins on overlap
	}
	return out, nil
}

func constructMerge(n *ast.Node) (Type, error) {
	leftT, err := ToType(n.Left)
	if err != nil {
		return nil, err
	}
	rightT, err := ToType(n.Right)
	if err != nil {
		return nil, err
	}
	leftObj, lok := leftT.(*Object)
	rightObj, rok := rightT.(*Object)
	if !lok || !rok {
		// "on non-object types returns T"
		return leftT, nil
	}
	return mergeObjects(leftObj, rightObj), nil
}

func mergeObjects(a, b *Object) *Object {
	out := NewObject()
	for _, k := range a.Keys {
		out.Set(k, a.Fields[k])
	}
	for _, k := range b.Keys {
		bt := b.Fields[k]
		if at, exists := out.Fields[k]; exists {
			aObj, aok := at.(*Object)
			bObj, bok := bt.(*Object)
			if aok && bok {
				out.Set(k, mergeObjects(aObj, bObj))
				continue
			}
		}
		out.Set(k, bt)
	}
	return out
}

func constructBound(n *ast.Node) (Type, error) {
	rt, err := ToType(n.Right)
	if err != nil {
		return nil, err
	}
	lit, ok := rt.(NumberLiteral)
	if !ok {
		return nil, fmt.Errorf("types: %s requires a number literal bound", n.Token.Type)
	}
	switch n.Token.Type {
	case token.LT:
		return LessThan(lit.N), nil
	case token.LE:
		return LessOrEqual(lit.N), nil
	case token.GT:
		return GreaterThan(lit.N), nil
	default: // token.GE
		return GreaterOrEqual(lit.N), nil
	}
}

func constructWhile(n *ast.Node) (Type, error) {
	leftT, err := ToType(n.Left)
	if err != nil {
		return nil, err
	}
	rightT, err := ToType(n.Right)
	if err != nil {
		return nil, err
	}
	left, lok := leftT.(Interval)
	right, rok := rightT.(Interval)
	if !lok || !rok {
		return nil, fmt.Errorf("types: while requires two interval types")
	}
	return Intersect(left, right)
}

// constructWith replaces every leaf value type in an object type T by U,
// recursing into nested object values.
func constructWith(n *ast.Node) (Type, error) {
	leftT, err := ToType(n.Left)
	if err != nil {
		return nil, err
	}
	obj, ok := leftT.(*Object)
	if !ok {
		return nil, fmt.Errorf("types: T with U requires an object type on the left")
	}
	replacement, err := ToType(n.Right)
	if err != nil {
		return nil, err
	}
	return withReplace(obj, replacement), nil
}

func withReplace(obj *Object, replacement Type) *Object {
	out := NewObject()
	for _, k := range obj.Keys {
		if nested, ok := obj.Fields[k].(*Object); ok {
			out.Set(k, withReplace(nested, replacement))
		} else {
			out.Set(k, replacement)
		}
	}
	return out
}

func constructObject(n *ast.Node) (Type, error) {
	obj := NewObject()
	for _, entry := range n.Children {
		if entry.Token.Type != token.COLON {
			return nil, fmt.Errorf("types: object type entry must be 'key : type', got %s", entry.Token.Type)
		}
		if entry.Left == nil || entry.Left.Token.Type != token.IDENT {
			return nil, fmt.Errorf("types: object type key must be an identifier")
		}
		fieldType, err := ToType(entry.Right)
		if err != nil {
			return nil, err
		}
		obj.Set(entry.Left.Token.Literal, fieldType)
	}
	return obj, nil
}

// constructList builds a List type: one element -> List(T); many -> a
// List(Union(Ts)); empty -> List(Any).
func constructList(n *ast.Node) (Type, error) {
	if len(n.Children) == 0 {
		return List{Elem: Primitive(TAny)}, nil
	}
	if len(n.Children) == 1 {
		elemT, err := ToType(n.Children[0])
		if err != nil {
			return nil, err
		}
		return List{Elem: elemT}, nil
	}
	elemT, err := ToType(n.Children[0])
	if err != nil {
		return nil, err
	}
	for _, child := range n.Children[1:] {
		t, err := ToType(child)
		if err != nil {
			return nil, err
		}
		elemT = NewUnion(elemT, t)
	}
	return List{Elem: elemT}, nil
}
