// Package evaluator tree-walks a parsed jason program into a value.Value.
// Context owns every binding a file can introduce — variable values,
// variable types, named types, templates, and template signatures — plus
// the machinery (import chain, scripting bridge, output slot) those
// bindings are evaluated against.
package evaluator

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/loader"
	"github.com/alexandermeade/jason-rs/internal/scripting"
	"github.com/alexandermeade/jason-rs/internal/template"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/types"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// templateSig is a declared `name(args) :: T` signature, recorded so a
// template definition seen before or after it can pick up its typing.
type templateSig struct {
	ParamTypes []types.Type
	Result     types.Type
}

// Config configures a new Context. Chain must be shared (by pointer)
// across every Context created while compiling one document tree, so
// circular imports are detected across the whole chain rather than per
// file.
type Config struct {
	Path   string
	Source string

	Loader loader.Loader
	Logger *zerolog.Logger
	Bridge *scripting.Interpreter

	Chain          *ImportChain
	Depth          int
	MaxImportDepth int
	ImportRoots    []string
}

// Context is one file's evaluation state.
type Context struct {
	path   string
	source string

	loader loader.Loader
	logger *zerolog.Logger

	bridge    *scripting.Interpreter
	scriptEnv *scripting.Environment

	values       map[string]*value.Value
	varTypes     map[string]types.Type
	namedTypes   map[string]types.Type
	templates    map[string]*template.Template
	templateSigs map[string]templateSig
	exportList   map[string]bool // nil: unrestricted (export(...) never ran)

	out *value.Value

	chain          *ImportChain
	importRoots    []string
	depth          int
	maxImportDepth int

	errs *errors.Bundle
}

// New builds a Context from cfg, defaulting Loader to the filesystem,
// Logger to a discard logger, and MaxImportDepth to 64 when unset.
func New(cfg Config) *Context {
	c := &Context{
		path:   cfg.Path,
		source: cfg.Source,

		loader: cfg.Loader,
		logger: cfg.Logger,
		bridge: cfg.Bridge,

		values:       map[string]*value.Value{},
		varTypes:     map[string]types.Type{},
		namedTypes:   map[string]types.Type{},
		templates:    map[string]*template.Template{},
		templateSigs: map[string]templateSig{},

		out: value.Null(),

		chain:          cfg.Chain,
		importRoots:    cfg.ImportRoots,
		depth:          cfg.Depth,
		maxImportDepth: cfg.MaxImportDepth,

		errs: errors.NewBundle(nil),
	}
	if c.loader == nil {
		c.loader = loader.FS{}
	}
	if c.logger == nil {
		discard := zerolog.Nop()
		c.logger = &discard
	}
	if c.maxImportDepth == 0 {
		c.maxImportDepth = 64
	}
	if c.chain == nil {
		c.chain = NewImportChain()
	}
	if c.bridge != nil {
		c.scriptEnv = c.bridge.NewEnvironment()
	}
	return c
}

// Output returns the file's current output value: whatever the last `out`
// statement set, or Null if none ran.
func (c *Context) Output() *value.Value { return c.out }

// Run evaluates every top-level node, trying each independently and
// collecting failures into a bundle rather than stopping at the first.
func (c *Context) Run(nodes []*ast.Node) error {
	for _, n := range nodes {
		if _, err := c.Eval(n); err != nil {
			c.errs.Add(toEvalError(err, c.path, c.source))
		}
	}
	return c.errs.Err()
}

func toEvalError(err error, file, source string) *errors.Error {
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	return errors.New(errors.Custom, file, token.Position{}, err.Error()).WithSource(source)
}

func (c *Context) newErr(kind errors.Kind, pos token.Position, msg string) *errors.Error {
	return errors.New(kind, c.path, pos, msg).WithSource(c.source)
}

// NewError implements template.Env.
func (c *Context) NewError(kind errors.Kind, pos token.Position, msg string) *errors.Error {
	return c.newErr(kind, pos, msg)
}

// SaveBinding implements template.Env: captures name's current value and
// variable-type bindings (and whether each existed), for later restore.
func (c *Context) SaveBinding(name string) (savedValue *value.Value, hadValue bool, savedType types.Type, hadType bool) {
	savedValue, hadValue = c.values[name]
	savedType, hadType = c.varTypes[name]
	return
}

// BindArg implements template.Env: binds name to v, and to t if non-nil.
func (c *Context) BindArg(name string, v *value.Value, t types.Type) {
	c.values[name] = v
	if t != nil {
		c.varTypes[name] = t
	}
}

// RestoreBinding implements template.Env: restores name's value and
// variable-type bindings to a prior SaveBinding snapshot.
func (c *Context) RestoreBinding(name string, savedValue *value.Value, hadValue bool, savedType types.Type, hadType bool) {
	if hadValue {
		c.values[name] = savedValue
	} else {
		delete(c.values, name)
	}
	if hadType {
		c.varTypes[name] = savedType
	} else {
		delete(c.varTypes, name)
	}
}

// EvalBlockEntries implements template.Env and backs BLOCK evaluation:
// each entry is a 'key : value' node; the result is an object built in
// entry order.
func (c *Context) EvalBlockEntries(entries []*ast.Node) (*value.Value, error) {
	obj := value.Object()
	for _, entry := range entries {
		if entry.Token.Type != token.COLON || entry.Left == nil || entry.Left.Token.Type != token.IDENT {
			return nil, c.newErr(errors.SyntaxError, entry.Pos(), "block entries must be 'key : value'")
		}
		v, err := c.Eval(entry.Right)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, c.newErr(errors.MissingValue, entry.Pos(), "block value produced no value").WithName(entry.Left.Token.Literal)
		}
		obj.Set(entry.Left.Token.Literal, v)
	}
	return obj, nil
}

// Eval evaluates a single node. A nil value with a nil error means the
// node produced no value at all (assignment-like forms, out, info,
// template/type declarations) — distinct from an error.
func (c *Context) Eval(n *ast.Node) (*value.Value, error) {
	if n == nil {
		return nil, nil
	}

	switch n.Token.Type {
	case token.INT:
		i, err := strconv.ParseInt(n.Token.Literal, 10, 64)
		if err != nil {
			return nil, c.newErr(errors.ConversionError, n.Pos(), "invalid integer literal "+n.Token.Literal)
		}
		return value.Int(i), nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(n.Token.Literal, 64)
		if err != nil {
			return nil, c.newErr(errors.ConversionError, n.Pos(), "invalid float literal "+n.Token.Literal)
		}
		return value.Float(f), nil
	case token.STRING:
		return value.String(n.Token.Literal), nil
	case token.COMPOSITE_STRING:
		return c.evalCompositeString(n.Token)
	case token.TRUE:
		return value.Bool(true), nil
	case token.FALSE:
		return value.Bool(false), nil
	case token.NULL:
		return value.Null(), nil
	case token.IDENT:
		v, ok := c.values[n.Token.Literal]
		if !ok {
			return nil, c.newErr(errors.UndefinedVariable, n.Pos(), n.Token.Literal+" is not defined").WithName(n.Token.Literal)
		}
		return v, nil

	case token.LIST:
		elems := make([]*value.Value, len(n.Children))
		for i, child := range n.Children {
			v, err := c.Eval(child)
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, c.newErr(errors.MissingValue, child.Pos(), "list element produced no value")
			}
			elems[i] = v
		}
		return value.Array(elems...), nil

	case token.BLOCK:
		return c.EvalBlockEntries(n.Children)

	case token.PLUS:
		return c.evalPlus(n)
	case token.MINUS:
		return c.evalMinus(n)
	case token.PERCENT:
		return c.evalPercent(n)
	case token.SLASH:
		return c.evalSlash(n)
	case token.STAR:
		return c.evalStar(n)
	case token.REPEAT:
		return c.evalRepeat(n)
	case token.AT:
		return c.evalAt(n)
	case token.PICK:
		return c.evalPick(n)
	case token.UPICK:
		return c.evalUpick(n)
	case token.MAPCALL:
		return c.evalMap(n)
	case token.AMP:
		return c.evalAmp(n)
	case token.APPEND:
		return c.evalAppend(n)
	case token.AS:
		return c.evalAs(n)

	case token.ASSIGN:
		return c.evalAssign(n)
	case token.COLON:
		return c.evalColon(n)
	case token.WALRUS:
		return c.evalWalrus(n)
	case token.DECLTYPE:
		return c.evalDeclType(n)
	case token.TYPEBIND:
		return c.evalTypeBind(n)

	case token.FROM:
		return c.evalFrom(n)
	case token.EXPORTCALL:
		return c.evalExportDecl(n)

	case token.TEMPLATEDEF:
		return c.evalTemplateDef(n)
	case token.CALL:
		return c.evalTemplateCall(n)
	case token.SCRIPTCALL:
		return c.evalScriptCall(n)
	case token.STRCALL:
		return c.evalConvert(n, "str")
	case token.INTCALL:
		return c.evalConvert(n, "int")
	case token.FLOATCALL:
		return c.evalConvert(n, "float")

	case token.OUT:
		return c.evalOut(n)
	case token.INFO:
		return c.evalInfo(n)
	case token.INFOT:
		return c.evalInfoT(n)
	case token.INCLUDE:
		return c.evalInclude(n)

	default:
		return nil, c.newErr(errors.MissingNode, n.Pos(), "no evaluation rule for "+n.Token.Type.String())
	}
}
