package evaluator

import (
	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/types"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// declareVarType binds name's variable-type without a value. A type, once
// bound for a name, cannot be rebound.
func (c *Context) declareVarType(name string, typeNode *ast.Node, pos token.Position) error {
	if _, exists := c.varTypes[name]; exists {
		return c.newErr(errors.ContextError, pos, "type for "+name+" is already declared").WithName(name)
	}
	t, err := types.ToType(typeNode)
	if err != nil {
		return c.newErr(errors.UndefinedType, pos, err.Error()).WithName(name)
	}
	c.varTypes[name] = t
	return nil
}

func (c *Context) typeMismatchErr(pos token.Position, name string, declared types.Type, got *value.Value) *errors.Error {
	msg := name + " does not match declared type " + declared.String()
	if obj, ok := declared.(*types.Object); ok {
		if gotObj, ok2 := types.Infer(got).(*types.Object); ok2 {
			msg += ": " + types.Diff(obj, gotObj)
		}
	}
	return c.newErr(errors.TypeError, pos, msg).WithName(name)
}

// evalColon implements a bare 'name : T' statement as a type-only
// declaration, since the grammar groups ':' at the same precedence level
// as the other assignment forms but jason only describes its meaning
// chained under '=' or standing for '::=' — this is the lone valid
// standalone reading.
func (c *Context) evalColon(n *ast.Node) (*value.Value, error) {
	if n.Left == nil || n.Left.Token.Type != token.IDENT {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "':' requires an identifier on the left")
	}
	return nil, c.declareVarType(n.Left.Token.Literal, n.Right, n.Pos())
}

// evalDeclType implements 'name ::= T': declares name's variable-type
// without binding a value.
func (c *Context) evalDeclType(n *ast.Node) (*value.Value, error) {
	if n.Left == nil || n.Left.Token.Type != token.IDENT {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'::=' requires an identifier on the left")
	}
	return nil, c.declareVarType(n.Left.Token.Literal, n.Right, n.Pos())
}

// evalAssign implements 'name = value' and, when the left operand is a
// ':' node, the combined 'name : T = value' form.
func (c *Context) evalAssign(n *ast.Node) (*value.Value, error) {
	var name string
	if n.Left.Token.Type == token.COLON {
		if n.Left.Left == nil || n.Left.Left.Token.Type != token.IDENT {
			return nil, c.newErr(errors.SyntaxError, n.Pos(), "'name : T = value' requires an identifier name")
		}
		name = n.Left.Left.Token.Literal
		if err := c.declareVarType(name, n.Left.Right, n.Pos()); err != nil {
			return nil, err
		}
	} else if n.Left.Token.Type == token.IDENT {
		name = n.Left.Token.Literal
	} else {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'=' requires an identifier on the left")
	}

	v, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, c.newErr(errors.MissingValue, n.Pos(), name+" has no value to assign").WithName(name)
	}

	if declared, ok := c.varTypes[name]; ok && !types.Matches(declared, v) {
		return nil, c.typeMismatchErr(n.Pos(), name, declared, v)
	}

	c.values[name] = v
	return nil, nil
}

// evalWalrus implements 'name := value': infers and locks a type from the
// value. The name must not already carry a declared type.
func (c *Context) evalWalrus(n *ast.Node) (*value.Value, error) {
	if n.Left.Token.Type != token.IDENT {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "':=' requires an identifier on the left")
	}
	name := n.Left.Token.Literal
	if _, exists := c.varTypes[name]; exists {
		return nil, c.newErr(errors.ContextError, n.Pos(), "type for "+name+" is already declared").WithName(name)
	}

	v, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, c.newErr(errors.MissingValue, n.Pos(), name+" has no value to assign").WithName(name)
	}

	c.varTypes[name] = types.Infer(v)
	c.values[name] = v
	return nil, nil
}

// evalTypeBind implements 'name :: T' (named type binding) and
// 'name(args) :: T' (template signature declaration), distinguished by
// whether the left operand is a bare identifier or a CALL node. A
// signature's per-parameter type is read back out of T: when T is an
// Object type and contains a field with that parameter's name, that
// field's type is the parameter's type; otherwise the parameter is Any
// (e.g. `P(name, age) :: {name: String, age: Int}` types `name` as String
// and `age` as Int).
func (c *Context) evalTypeBind(n *ast.Node) (*value.Value, error) {
	t, err := types.ToType(n.Right)
	if err != nil {
		return nil, c.newErr(errors.UndefinedType, n.Pos(), err.Error())
	}

	switch n.Left.Token.Type {
	case token.IDENT:
		c.namedTypes[n.Left.Token.Literal] = t
		return nil, nil
	case token.CALL:
		name := n.Left.Token.Literal
		paramTypes := make([]types.Type, len(n.Left.Children))
		obj, isObj := t.(*types.Object)
		for i, p := range n.Left.Children {
			if isObj {
				if ft, ok := obj.Fields[p.Token.Literal]; ok {
					paramTypes[i] = ft
				}
			}
		}
		c.templateSigs[name] = templateSig{ParamTypes: paramTypes, Result: t}
		if tmpl, ok := c.templates[name]; ok {
			tmpl.WithSignature(paramTypes, t)
		}
		return nil, nil
	default:
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'::' requires an identifier or a call-form signature on the left")
	}
}

// evalAs implements 'X as Y': binds Y to X's evaluated value. 'as' sits
// alongside 'from' at the expr precedence level; this binding reading is
// the minimal one consistent with that grouping.
func (c *Context) evalAs(n *ast.Node) (*value.Value, error) {
	if n.Right.Token.Type != token.IDENT {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'as' requires an identifier on the right")
	}
	v, err := c.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, c.newErr(errors.MissingValue, n.Pos(), "'as' left-hand expression produced no value")
	}
	c.values[n.Right.Token.Literal] = v
	return nil, nil
}

// evalAppend implements 'name append value': appends value to the array
// already bound to name, mutating it in place.
func (c *Context) evalAppend(n *ast.Node) (*value.Value, error) {
	if n.Left.Token.Type != token.IDENT {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'append' requires a variable name on the left")
	}
	name := n.Left.Token.Literal
	cur, ok := c.values[name]
	if !ok || cur.Kind() != value.KindArray {
		return nil, c.newErr(errors.UndefinedVariable, n.Pos(), name+" is not a declared array variable").WithName(name)
	}
	v, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, c.newErr(errors.MissingValue, n.Pos(), "'append' value produced no value")
	}
	cur.ArrayAppend(v)
	return nil, nil
}
