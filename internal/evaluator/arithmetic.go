package evaluator

import (
	"math"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalPair evaluates n.Left and n.Right, erroring if either side produced
// no value — the shared contract every binary arithmetic/comparison form
// needs before it can inspect operand kinds.
func (c *Context) evalPair(n *ast.Node) (*value.Value, *value.Value, error) {
	left, err := c.Eval(n.Left)
	if err != nil {
		return nil, nil, err
	}
	if left == nil {
		return nil, nil, c.newErr(errors.MissingValue, n.Left.Pos(), "expression has no value")
	}
	right, err := c.Eval(n.Right)
	if err != nil {
		return nil, nil, err
	}
	if right == nil {
		return nil, nil, c.newErr(errors.MissingValue, n.Right.Pos(), "expression has no value")
	}
	return left, right, nil
}

// evalPlus implements '+': two numbers add, two
// strings concatenate, two arrays concatenate, two objects concatenate
// with the right side winning on overlapping keys (shallow, unlike '&').
func (c *Context) evalPlus(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}

	switch {
	case left.IsNumeric() && right.IsNumeric():
		return addNumeric(left, right), nil
	case left.Kind() == value.KindString && right.Kind() == value.KindString:
		return value.String(left.StringValue() + right.StringValue()), nil
	case left.Kind() == value.KindArray && right.Kind() == value.KindArray:
		return value.Array(append(left.ArrayElements(), right.ArrayElements()...)...), nil
	case left.Kind() == value.KindObject && right.Kind() == value.KindObject:
		return concatObjects(left, right), nil
	default:
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'+' requires two numbers, two strings, two arrays, or two objects").WithName(n.PlainSum())
	}
}

func addNumeric(a, b *value.Value) *value.Value {
	if a.Kind() == value.KindInt && b.Kind() == value.KindInt {
		return value.Int(a.IntValue() + b.IntValue())
	}
	return value.Float(a.FloatValue() + b.FloatValue())
}

func concatObjects(a, b *value.Value) *value.Value {
	out := value.Object()
	for _, k := range a.Keys() {
		v, _ := a.ObjectGet(k)
		out.Set(k, v)
	}
	for _, k := range b.Keys() {
		v, _ := b.ObjectGet(k)
		out.Set(k, v) // right wins
	}
	return out
}

// evalMinus implements '-': numeric subtraction only.
func (c *Context) evalMinus(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}
	if !left.IsNumeric() || !right.IsNumeric() {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'-' requires two numbers").WithName(n.PlainSum())
	}
	if left.Kind() == value.KindInt && right.Kind() == value.KindInt {
		return value.Int(left.IntValue() - right.IntValue()), nil
	}
	return value.Float(left.FloatValue() - right.FloatValue()), nil
}

// evalPercent implements '%': integer or floating-point modulo, erroring
// on modulo by zero.
func (c *Context) evalPercent(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}
	if !left.IsNumeric() || !right.IsNumeric() {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'%' requires two numbers").WithName(n.PlainSum())
	}
	if left.Kind() == value.KindInt && right.Kind() == value.KindInt {
		if right.IntValue() == 0 {
			return nil, c.newErr(errors.ValueError, n.Pos(), "modulo by zero")
		}
		return value.Int(left.IntValue() % right.IntValue()), nil
	}
	if right.FloatValue() == 0 {
		return nil, c.newErr(errors.ValueError, n.Pos(), "modulo by zero")
	}
	return value.Float(math.Mod(left.FloatValue(), right.FloatValue())), nil
}

// evalSlash implements '/': always produces a Float, erroring on division
// by zero.
func (c *Context) evalSlash(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}
	if !left.IsNumeric() || !right.IsNumeric() {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'/' requires two numbers").WithName(n.PlainSum())
	}
	if right.FloatValue() == 0 {
		return nil, c.newErr(errors.ValueError, n.Pos(), "division by zero")
	}
	return value.Float(left.FloatValue() / right.FloatValue()), nil
}
