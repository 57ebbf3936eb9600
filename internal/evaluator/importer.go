package evaluator

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/lexer"
	"github.com/alexandermeade/jason-rs/internal/parser"
	"github.com/alexandermeade/jason-rs/internal/template"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/types"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// export categories, in the fixed precedence order a bare name is resolved
// against: variable, template,
// variable-type, named type, template signature.
const (
	catValue       = "value"
	catTemplate    = "template"
	catVarType     = "variable-type"
	catNamedType   = "named-type"
	catTemplateSig = "template-signature"
)

// evalFrom implements the 'from' side of 'import(names) from "path"' and
// 'use(names) from identifier'.
func (c *Context) evalFrom(n *ast.Node) (*value.Value, error) {
	if n.Left == nil {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'from' requires 'import(...)' or 'use(...)' on its left")
	}
	switch n.Left.Token.Type {
	case token.IMPORTCALL:
		return c.evalImport(n)
	case token.USECALL:
		return c.evalUse(n)
	default:
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'from' must follow 'import(...)' or 'use(...)'")
	}
}

// evalImport implements 'import(names) from "path"': compile the target
// file once, then absorb the requested bindings into this Context.
func (c *Context) evalImport(n *ast.Node) (*value.Value, error) {
	pathV, err := c.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	if pathV == nil || pathV.Kind() != value.KindString {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'import ... from' requires a string path")
	}

	child, err := c.compileChild(pathV.StringValue())
	if err != nil {
		return nil, err
	}

	names := n.Left.Children
	if len(names) == 1 && names[0].Token.Type == token.STAR {
		c.absorbAll(child)
		return nil, nil
	}
	if len(names) == 1 && names[0].Token.Type == token.DOLLAR {
		c.absorbValuesAndTypes(child)
		return nil, nil
	}
	for _, nameNode := range names {
		if nameNode.Token.Type != token.IDENT {
			return nil, c.newErr(errors.SyntaxError, nameNode.Pos(), "import name must be an identifier, '*' or '$'")
		}
		if !c.absorbOne(child, nameNode.Token.Literal) {
			return nil, c.newErr(errors.ImportError, nameNode.Pos(),
				nameNode.Token.Literal+" is not exported by "+child.path).WithName(nameNode.Token.Literal)
		}
	}
	return nil, nil
}

// evalUse implements 'use(names) from identifier': only the "lua" category
// is recognised, copying symbols from the base scripting environment into
// this file's scripting environment.
func (c *Context) evalUse(n *ast.Node) (*value.Value, error) {
	if n.Right == nil || n.Right.Token.Type != token.IDENT {
		return nil, c.newErr(errors.SyntaxError, n.Pos(), "'use ... from' requires a plain identifier category")
	}
	category := n.Right.Token.Literal
	if category != "lua" {
		return nil, c.newErr(errors.ImportError, n.Pos(), "unknown use category "+category).WithName(category)
	}
	if c.scriptEnv == nil {
		return nil, c.newErr(errors.ScriptingError, n.Pos(), "no scripting environment is available")
	}

	for _, nameNode := range n.Left.Children {
		switch nameNode.Token.Type {
		case token.STAR:
			c.scriptEnv.UseAll()
		case token.IDENT:
			if err := c.scriptEnv.UseOne(nameNode.Token.Literal); err != nil {
				return nil, c.newErr(errors.ScriptingError, nameNode.Pos(), err.Error()).WithName(nameNode.Token.Literal)
			}
		default:
			return nil, c.newErr(errors.SyntaxError, nameNode.Pos(), "use name must be an identifier or '*'")
		}
	}
	return nil, nil
}

// evalExportDecl implements 'export(names)': records what an importer of
// this file may subsequently pull. Absence of any export() call leaves
// exportList nil, meaning unrestricted.
func (c *Context) evalExportDecl(n *ast.Node) (*value.Value, error) {
	if c.exportList == nil {
		c.exportList = map[string]bool{}
	}
	for _, child := range n.Children {
		switch child.Token.Type {
		case token.STAR:
			c.exportList["*"] = true
		case token.DOLLAR:
			c.exportList["$"] = true
		case token.IDENT:
			c.exportList[child.Token.Literal] = true
		default:
			return nil, c.newErr(errors.SyntaxError, child.Pos(), "export name must be an identifier, '*' or '$'")
		}
	}
	return nil, nil
}

// isExported reports whether name is visible to an importer of child under
// the given category, honouring child's export(*)/export($)/export(name)
// declarations.
func isExported(child *Context, name, category string) bool {
	if child.exportList == nil {
		return true
	}
	if child.exportList["*"] {
		return true
	}
	if child.exportList["$"] {
		switch category {
		case catValue, catVarType, catNamedType:
			return true
		}
	}
	return child.exportList[name]
}

// absorbOne copies whichever single category first owns name, in fixed
// precedence order (variable, template, variable-type, named type,
// template signature), cloning templates so the absorbing environment
// holds no back-reference into the child's.
func (c *Context) absorbOne(child *Context, name string) bool {
	if v, ok := child.values[name]; ok && isExported(child, name, catValue) {
		c.values[name] = v
		return true
	}
	if t, ok := child.templates[name]; ok && isExported(child, name, catTemplate) {
		c.templates[name] = cloneTemplate(t)
		return true
	}
	if t, ok := child.varTypes[name]; ok && isExported(child, name, catVarType) {
		c.varTypes[name] = t
		return true
	}
	if t, ok := child.namedTypes[name]; ok && isExported(child, name, catNamedType) {
		c.namedTypes[name] = t
		return true
	}
	if sig, ok := child.templateSigs[name]; ok && isExported(child, name, catTemplateSig) {
		c.templateSigs[name] = sig
		return true
	}
	return false
}

// absorbValuesAndTypes implements the '$' import selector: every exported
// value, variable-type and named-type binding, but no templates or
// template signatures.
func (c *Context) absorbValuesAndTypes(child *Context) {
	for name, v := range child.values {
		if isExported(child, name, catValue) {
			c.values[name] = v
		}
	}
	for name, t := range child.varTypes {
		if isExported(child, name, catVarType) {
			c.varTypes[name] = t
		}
	}
	for name, t := range child.namedTypes {
		if isExported(child, name, catNamedType) {
			c.namedTypes[name] = t
		}
	}
}

// absorbAll implements the '*' import selector: every exported binding in
// every category.
func (c *Context) absorbAll(child *Context) {
	c.absorbValuesAndTypes(child)
	for name, t := range child.templates {
		if isExported(child, name, catTemplate) {
			c.templates[name] = cloneTemplate(t)
		}
	}
	for name, sig := range child.templateSigs {
		if isExported(child, name, catTemplateSig) {
			c.templateSigs[name] = sig
		}
	}
}

// cloneTemplate copies t so the absorbing environment can attach its own
// later signature without mutating the child's copy. The body's AST is
// immutable after parsing and is shared, not copied.
func cloneTemplate(t *template.Template) *template.Template {
	clone := *t
	clone.Params = append([]string(nil), t.Params...)
	clone.ParamTypes = append([]types.Type(nil), t.ParamTypes...)
	return &clone
}

// compileChild resolves target relative to this file (falling back to the
// configured import roots), lexes and parses it, and evaluates it as a
// fresh child Context sharing this Context's import chain and scripting
// bridge, so cycles are detected across the whole chain.
func (c *Context) compileChild(target string) (*Context, error) {
	if c.depth+1 > c.maxImportDepth {
		return nil, c.newErr(errors.ImportError, token.Position{},
			"import depth exceeds the maximum of "+strconv.Itoa(c.maxImportDepth)).WithName(target)
	}

	path, data, err := c.resolveAndRead(target)
	if err != nil {
		return nil, c.newErr(errors.FileError, token.Position{}, err.Error()).WithName(target)
	}

	if !c.chain.Enter(path) {
		return nil, c.newErr(errors.CircularImport, token.Position{},
			path+" is already on the active import chain").WithName(path)
	}
	defer c.chain.Leave(path)

	source := string(data)
	lx := lexer.New(source)
	toks := lx.Tokens()
	if lexErrs := lx.Errors(); len(lexErrs) > 0 {
		b := errors.NewBundle(nil)
		for _, le := range lexErrs {
			b.Add(errors.New(errors.LexerError, path, le.Pos, le.Message).WithSource(source))
		}
		return nil, b.Err()
	}

	nodes, err := parser.New(toks, path, source).ParseProgram()
	if err != nil {
		return nil, err
	}

	child := New(Config{
		Path:           path,
		Source:         source,
		Loader:         c.loader,
		Logger:         c.logger,
		Bridge:         c.bridge,
		Chain:          c.chain,
		Depth:          c.depth + 1,
		MaxImportDepth: c.maxImportDepth,
		ImportRoots:    c.importRoots,
	})
	if err := child.Run(nodes); err != nil {
		return nil, err
	}
	return child, nil
}

// resolveAndRead resolves target relative to this file's directory, then
// against each configured import root in order, returning the first one
// the loader can read.
func (c *Context) resolveAndRead(target string) (resolved string, data []byte, err error) {
	if filepath.IsAbs(target) {
		data, err = c.loader.Read(target)
		return target, data, err
	}

	candidate := filepath.Join(filepath.Dir(c.path), target)
	if data, err = c.loader.Read(candidate); err == nil {
		return candidate, data, nil
	}
	for _, root := range c.importRoots {
		candidate = filepath.Join(root, target)
		if data, err = c.loader.Read(candidate); err == nil {
			return candidate, data, nil
		}
	}
	return "", nil, fmt.Errorf("%s could not be resolved relative to %s or any import root", target, c.path)
}
