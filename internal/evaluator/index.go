package evaluator

import (
	"fmt"
	"math/rand"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/types"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalAt implements 'container at index': integer
// index into an array or string, string key into an object.
func (c *Context) evalAt(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}

	switch left.Kind() {
	case value.KindArray:
		if right.Kind() != value.KindInt {
			return nil, c.newErr(errors.IndexError, n.Pos(), "'at' index into an array must be an integer")
		}
		idx := int(right.IntValue())
		elem := left.ArrayGet(idx)
		if elem == nil {
			return nil, c.newErr(errors.IndexError, n.Pos(), fmt.Sprintf("index %d out of range (length %d)", idx, left.ArrayLen()))
		}
		return elem, nil
	case value.KindString:
		if right.Kind() != value.KindInt {
			return nil, c.newErr(errors.IndexError, n.Pos(), "'at' index into a string must be an integer")
		}
		runes := []rune(left.StringValue())
		idx := int(right.IntValue())
		if idx < 0 || idx >= len(runes) {
			return nil, c.newErr(errors.IndexError, n.Pos(), fmt.Sprintf("index %d out of range (length %d)", idx, len(runes)))
		}
		return value.String(string(runes[idx])), nil
	case value.KindObject:
		if right.Kind() != value.KindString {
			return nil, c.newErr(errors.IndexError, n.Pos(), "'at' key into an object must be a string")
		}
		child, ok := left.ObjectGet(right.StringValue())
		if !ok {
			return nil, c.newErr(errors.MissingKey, n.Pos(), fmt.Sprintf("key %q not found", right.StringValue())).WithName(right.StringValue())
		}
		return child, nil
	default:
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'at' requires an array, string, or object on the left").WithName(n.PlainSum())
	}
}

// evalPick implements 'array pick count': count
// elements drawn independently (with replacement), returning a bare value
// when count is 1.
func (c *Context) evalPick(n *ast.Node) (*value.Value, error) {
	arr, countV, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}
	if arr.Kind() != value.KindArray {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'pick' requires an array on the left").WithName(n.PlainSum())
	}
	count, err := c.nonNegativeInt(countV, n.Pos())
	if err != nil {
		return nil, err
	}
	elems := arr.ArrayElements()
	if len(elems) == 0 {
		if count == 0 {
			return value.Array(), nil
		}
		return nil, c.newErr(errors.ValueError, n.Pos(), "'pick' from an empty array")
	}

	out := make([]*value.Value, count)
	for i := range out {
		out[i] = elems[rand.Intn(len(elems))]
	}
	if count == 1 {
		return out[0], nil
	}
	return value.Array(out...), nil
}

// evalUpick implements 'array upick count': count distinct elements drawn
// without replacement, erroring if count exceeds the array's length.
func (c *Context) evalUpick(n *ast.Node) (*value.Value, error) {
	arr, countV, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}
	if arr.Kind() != value.KindArray {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'upick' requires an array on the left").WithName(n.PlainSum())
	}
	count, err := c.nonNegativeInt(countV, n.Pos())
	if err != nil {
		return nil, err
	}
	elems := arr.ArrayElements()
	if count > len(elems) {
		return nil, c.newErr(errors.ValueError, n.Pos(), fmt.Sprintf("'upick' count %d exceeds array length %d", count, len(elems)))
	}

	perm := rand.Perm(len(elems))[:count]
	out := make([]*value.Value, count)
	for i, idx := range perm {
		out[i] = elems[idx]
	}
	if count == 1 {
		return out[0], nil
	}
	return value.Array(out...), nil
}

func (c *Context) nonNegativeInt(v *value.Value, pos token.Position) (int, error) {
	if v.Kind() != value.KindInt || v.IntValue() < 0 {
		return 0, c.newErr(errors.ValueError, pos, "count must be a non-negative integer")
	}
	return int(v.IntValue()), nil
}

// evalMap implements 'list map(p) body' / 'list map(p, i) body': evaluates
// body once per element with p (and, for the two-parameter form, the
// 0-based index i) bound, restoring any prior bindings for those names
// afterward.
func (c *Context) evalMap(n *ast.Node) (*value.Value, error) {
	src, err := c.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	if src == nil || src.Kind() != value.KindArray {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'map' requires an array on the left").WithName(n.PlainSum())
	}
	if len(n.Children) == 0 || len(n.Children) > 2 {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'map' expects one or two bound names")
	}

	paramName := n.Children[0].Token.Literal
	hasIndex := len(n.Children) == 2
	var indexName string
	if hasIndex {
		indexName = n.Children[1].Token.Literal
	}

	savedV, hadV, savedT, hadT := c.SaveBinding(paramName)
	var savedIV *value.Value
	var hadIV bool
	var savedIT types.Type
	var hadIT bool
	if hasIndex {
		savedIV, hadIV, savedIT, hadIT = c.SaveBinding(indexName)
	}
	defer func() {
		c.RestoreBinding(paramName, savedV, hadV, savedT, hadT)
		if hasIndex {
			c.RestoreBinding(indexName, savedIV, hadIV, savedIT, hadIT)
		}
	}()

	elems := src.ArrayElements()
	out := make([]*value.Value, 0, len(elems))
	for i, elem := range elems {
		c.BindArg(paramName, elem, nil)
		if hasIndex {
			c.BindArg(indexName, value.Int(int64(i)), nil)
		}
		v, err := c.Eval(n.Right)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, c.newErr(errors.MissingValue, n.Right.Pos(), "map body produced no value")
		}
		out = append(out, v)
	}
	return value.Array(out...), nil
}
