package evaluator

import (
	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalAmp implements 'a & b': recursive deep merge of
// two objects, the right side winning on a primitive conflict and
// recursing when both sides hold an object at the same key.
func (c *Context) evalAmp(n *ast.Node) (*value.Value, error) {
	left, right, err := c.evalPair(n)
	if err != nil {
		return nil, err
	}
	if left.Kind() != value.KindObject || right.Kind() != value.KindObject {
		return nil, c.newErr(errors.InvalidOperation, n.Pos(), "'&' requires two objects").WithName(n.PlainSum())
	}
	return deepMerge(left, right), nil
}

func deepMerge(a, b *value.Value) *value.Value {
	out := value.Object()
	for _, k := range a.Keys() {
		v, _ := a.ObjectGet(k)
		out.Set(k, v)
	}
	for _, k := range b.Keys() {
		bv, _ := b.ObjectGet(k)
		if av, exists := out.ObjectGet(k); exists && av.Kind() == value.KindObject && bv.Kind() == value.KindObject {
			out.Set(k, deepMerge(av, bv))
			continue
		}
		out.Set(k, bv)
	}
	return out
}
