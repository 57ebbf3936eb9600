package evaluator

import (
	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalStar implements the '*' overload: two
// numbers multiply; a number and anything else repeats the non-numeric
// side n times into an array.
func (c *Context) evalStar(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}

	switch {
	case left.IsNumeric() && right.IsNumeric():
		return multiplyNumeric(left, right), nil
	case left.IsNumeric():
		return c.repeat(n.Right, right, left, n.Pos())
	case right.IsNumeric():
		return c.repeat(n.Left, left, right, n.Pos())
	default:
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'*' requires at least one numeric operand").WithName(n.PlainSum())
	}
}

func multiplyNumeric(a, b *value.Value) *value.Value {
	if a.Kind() == value.KindInt && b.Kind() == value.KindInt {
		return value.Int(a.IntValue() * b.IntValue())
	}
	return value.Float(a.FloatValue() * b.FloatValue())
}

// evalRepeat implements the explicit 'repeat' form: identical contract to
// the '*' overload's non-arithmetic branch, but since it never means
// multiplication, either operand order (count first or count last) always
// repeats.
func (c *Context) evalRepeat(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}

	switch {
	case right.Kind() == value.KindInt:
		return c.repeat(n.Left, left, right, n.Pos())
	case left.Kind() == value.KindInt:
		return c.repeat(n.Right, right, left, n.Pos())
	default:
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'repeat' requires one integer operand").WithName(n.PlainSum())
	}
}

// repeat builds the n-element result array. firstValue is the already-
// evaluated single evaluation of src performed to determine operand kinds
// (it counts as the first of the n evaluations); the remaining n-1 come
// from re-evaluating src, not cloning the first value, so every element is
// its own evaluation.
func (c *Context) repeat(src *ast.Node, firstValue, countValue *value.Value, pos token.Position) (*value.Value, error) {
	count, err := c.repeatCount(countValue, pos)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return value.Array(), nil
	}

	out := make([]*value.Value, 0, count)
	out = append(out, firstValue)
	for i := 1; i < count; i++ {
		v, err := c.Eval(src)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, c.newErr(errors.MissingValue, src.Pos(), "expression has no value")
		}
		out = append(out, v)
	}
	return value.Array(out...), nil
}

func (c *Context) repeatCount(v *value.Value, pos token.Position) (int, error) {
	if v.Kind() != value.KindInt {
		return 0, c.newErr(errors.ValueError, pos, "repeat count must be a non-negative integer")
	}
	n := v.IntValue()
	if n < 0 {
		return 0, c.newErr(errors.ValueError, pos, "repeat count must be non-negative")
	}
	return int(n), nil
}
