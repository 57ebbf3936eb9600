package evaluator

import (
	"testing"

	"github.com/alexandermeade/jason-rs/internal/lexer"
	"github.com/alexandermeade/jason-rs/internal/parser"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// newTestContext builds a Context with no loader/scripting bridge wired,
// suitable for snippets that don't import or call into Lua.
func newTestContext(source string) *Context {
	return New(Config{Path: "<test>", Source: source})
}

// runSource lexes, parses, and runs source against a fresh Context,
// returning the Context (for inspecting bindings) and any error.
func runSource(t *testing.T, source string) (*Context, error) {
	t.Helper()
	toks := lexer.New(source).Tokens()
	nodes, err := parser.New(toks, "<test>", source).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	c := newTestContext(source)
	return c, c.Run(nodes)
}

// evalExpr parses a single expression and evaluates it against c.
func evalExpr(t *testing.T, c *Context, source string) (*value.Value, error) {
	t.Helper()
	toks := lexer.New(source).Tokens()
	n, err := parser.ParseExpr(toks, "<test>", source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return c.Eval(n)
}
