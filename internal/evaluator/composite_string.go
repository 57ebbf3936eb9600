package evaluator

import (
	"strings"

	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/parser"
	"github.com/alexandermeade/jason-rs/internal/token"
	"github.com/alexandermeade/jason-rs/internal/value"
)

// evalCompositeString implements $"...{expr}...": interleaves the literal
// fragments with the str-converted values of the embedded expressions. The
// lexer already tokenised each embedded run into one flat token sequence
// (token.Token.Exprs), without comma splitting; parsing it into an
// expression tree is deferred to here, since internal/parser did not yet
// exist at lex time.
func (c *Context) evalCompositeString(tok token.Token) (*value.Value, error) {
	var sb strings.Builder
	for i, frag := range tok.Fragments {
		sb.WriteString(frag)
		if i >= len(tok.Exprs) {
			continue
		}

		n, err := parser.ParseExpr(tok.Exprs[i], c.path, c.source)
		if err != nil {
			return nil, c.newErr(errors.ParseError, tok.Pos, err.Error())
		}
		v, err := c.Eval(n)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, c.newErr(errors.MissingValue, tok.Pos, "composite-string expression has no value")
		}
		sb.WriteString(toDisplayString(v))
	}
	return value.String(sb.String()), nil
}
