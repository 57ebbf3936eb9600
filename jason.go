// Package jason is the public entry point for compiling jason source into
// a structured value: lex, parse, evaluate, and hand back the file's
// designated `out` value for a caller to render or inspect. File I/O,
// output serialisation, and colourised diagnostics are injectable
// collaborators (internal/loader, internal/render) rather than baked into
// Compile itself; the builder façade exposes interfaces only.
package jason

import (
	"github.com/rs/zerolog"

	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/evaluator"
	"github.com/alexandermeade/jason-rs/internal/lexer"
	"github.com/alexandermeade/jason-rs/internal/loader"
	"github.com/alexandermeade/jason-rs/internal/parser"
	"github.com/alexandermeade/jason-rs/internal/render"
	"github.com/alexandermeade/jason-rs/internal/scripting"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// Builder accumulates compile-time configuration (loader, scripting
// preload source, import search roots, logger) across calls, so a caller
// wiring up the same environment for several files only sets it up once.
type Builder struct {
	loader          loader.Loader
	scriptingSource string
	importRoots     []string
	maxImportDepth  int
	logger          *zerolog.Logger
}

// New creates a Builder. Without options, imports/includes read from the
// local filesystem, no scripting preload source runs, and diagnostics are
// discarded.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is one file's compiled output: the designated `out` value, ready
// to inspect directly or render to a textual format.
type Result struct {
	Output *value.Value
}

// JSON renders the result as pretty-printed JSON.
func (r *Result) JSON() ([]byte, error) { return render.JSON(r.Output) }

// YAML renders the result as YAML.
func (r *Result) YAML() ([]byte, error) { return render.YAML(r.Output) }

// TOML renders the result as TOML. The output value must be an object.
func (r *Result) TOML() ([]byte, error) { return render.TOML(r.Output) }

// CompileFile reads path through the Builder's loader (the filesystem by
// default) and compiles it.
func (b *Builder) CompileFile(path string) (*Result, error) {
	data, err := b.loaderOrDefault().Read(path)
	if err != nil {
		return nil, errors.New(errors.FileError, path, token.Position{}, err.Error())
	}
	return b.compile(path, string(data))
}

// Compile compiles source text directly, reporting diagnostics under the
// synthetic path "<source>".
func Compile(source string, opts ...Option) (*Result, error) {
	return New(opts...).Compile(source)
}

// Compile compiles source text directly under this Builder's
// configuration, reporting diagnostics under the synthetic path
// "<source>".
func (b *Builder) Compile(source string) (*Result, error) {
	return b.compile("<source>", source)
}

// CompileFile is a convenience wrapper equivalent to New(opts...).CompileFile(path).
func CompileFile(path string, opts ...Option) (*Result, error) {
	return New(opts...).CompileFile(path)
}

func (b *Builder) loaderOrDefault() loader.Loader {
	if b.loader != nil {
		return b.loader
	}
	return loader.FS{}
}

func (b *Builder) compile(path, source string) (*Result, error) {
	lx := lexer.New(source)
	toks := lx.Tokens()
	if lexErrs := lx.Errors(); len(lexErrs) > 0 {
		bundle := errors.NewBundle(nil)
		for _, le := range lexErrs {
			bundle.Add(errors.New(errors.LexerError, path, le.Pos, le.Message).WithSource(source))
		}
		return nil, bundle.Err()
	}

	nodes, err := parser.New(toks, path, source).ParseProgram()
	if err != nil {
		return nil, err
	}

	bridge, err := scripting.New(b.scriptingSource)
	if err != nil {
		return nil, err
	}
	defer bridge.Close()

	ctx := evaluator.New(evaluator.Config{
		Path:   path,
		Source: source,

		Loader: b.loaderOrDefault(),
		Logger: b.logger,
		Bridge: bridge,

		MaxImportDepth: b.maxImportDepth,
		ImportRoots:    b.importRoots,
	})
	if err := ctx.Run(nodes); err != nil {
		return nil, err
	}
	return &Result{Output: ctx.Output()}, nil
}
