package evaluator

import (
	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/template"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalTemplateDef implements template definition: registers a
// callable Template, picking up any signature already declared (or later
// declared) for the same name.
func (c *Context) evalTemplateDef(n *ast.Node) (*value.Value, error) {
	name := n.Token.Literal
	params := make([]string, len(n.Children))
	for i, p := range n.Children {
		if p.Token.Type != token.IDENT {
			return nil, c.newErr(errors.SyntaxError, p.Pos(), "template parameter must be an identifier")
		}
		params[i] = p.Token.Literal
	}

	tmpl, err := template.New(name, params, n.BodyChildren)
	if err != nil {
		return nil, c.newErr(errors.TemplateRecursion, n.Pos(), err.Error()).WithName(name)
	}
	if sig, ok := c.templateSigs[name]; ok {
		tmpl.WithSignature(sig.ParamTypes, sig.Result)
	}
	c.templates[name] = tmpl
	return nil, nil
}

// evalTemplateCall implements a plain 'name(args)' call against a
// registered template.
func (c *Context) evalTemplateCall(n *ast.Node) (*value.Value, error) {
	tmpl, ok := c.templates[n.Token.Literal]
	if !ok {
		return nil, c.newErr(errors.UndefinedTemplate, n.Pos(), n.Token.Literal+" is not defined").WithName(n.Token.Literal)
	}
	return tmpl.Call(c, n.Children, n.Pos())
}
