package evaluator

import (
	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalScriptCall implements 'name(args)!':
// evaluate every argument, resolve name against this file's scripting
// environment (caching the reference), call it, and convert the result
// back to a runtime value.
func (c *Context) evalScriptCall(n *ast.Node) (*value.Value, error) {
	if c.scriptEnv == nil {
		return nil, c.newErr(errors.ScriptingError, n.Pos(), "no scripting environment is available").WithName(n.Token.Literal)
	}

	args := make([]*value.Value, len(n.Children))
	for i, argNode := range n.Children {
		v, err := c.Eval(argNode)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, c.newErr(errors.MissingValue, argNode.Pos(), "scripting-call argument produced no value")
		}
		args[i] = v
	}

	ret, err := c.scriptEnv.CallNamed(n.Token.Literal, args)
	if err != nil {
		return nil, c.newErr(errors.ScriptingError, n.Pos(), err.Error()).WithName(n.Token.Literal)
	}
	return ret, nil
}
