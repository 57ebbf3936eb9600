package evaluator

import (
	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/types"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalOut implements 'out EXPR': the last 'out' to run in a file wins. A
// sub-expression producing no value is an error at the out form itself
// rather than a silent no-op.
func (c *Context) evalOut(n *ast.Node) (*value.Value, error) {
	v, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, c.newErr(errors.MissingValue, n.Pos(), "'out' expression produced no value")
	}
	c.out = v
	return nil, nil
}

// evalInfo implements 'info X': logs X's evaluated value at info level and
// yields no value.
func (c *Context) evalInfo(n *ast.Node) (*value.Value, error) {
	v, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	raw, _ := v.MarshalJSON()
	c.logger.Info().Str("expr", n.Right.PlainSum()).RawJSON("value", raw).Msg("info")
	return nil, nil
}

// evalInfoT implements 'infoT X': logs X's declared (if X is a plain
// identifier with a variable-type) or inferred type.
func (c *Context) evalInfoT(n *ast.Node) (*value.Value, error) {
	if n.Right.Token.Type == token.IDENT {
		if t, ok := c.varTypes[n.Right.Token.Literal]; ok {
			c.logger.Info().Str("expr", n.Right.PlainSum()).Str("type", t.String()).Msg("infoT")
			return nil, nil
		}
	}
	v, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	t := types.Infer(v)
	c.logger.Info().Str("expr", n.Right.PlainSum()).Str("type", t.String()).Msg("infoT")
	return nil, nil
}

// evalInclude implements 'include "path"': compiles another
// file and yields its output value nested in place, distinct from import
// (which merges bindings rather than nesting a value).
func (c *Context) evalInclude(n *ast.Node) (*value.Value, error) {
	pathV, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	if pathV == nil || pathV.Kind() != value.KindString {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'include' requires a string path")
	}
	child, err := c.compileChild(pathV.StringValue())
	if err != nil {
		return nil, err
	}
	return child.Output(), nil
}
