// Package parser turns a lexed jason token sequence into a forest of
// ast.Node expression trees, one per top-level statement.
//
// Four precedence levels, ascending: expr (assignment-like and
// path-like binary forms), addition (+ - | & while), term (* / % repeat at
// pick upick with map(...), postfix ', prefix comparisons), factor
// (literals, identifiers, parenthesised subexpressions, lexer-pregrouped
// list/block/call/template tokens, the out/info/infoT/include prefix
// keywords). The lexer has already resolved bracket depth and comma
// boundaries for every grouped construct, so the parser never tracks
// nesting itself — it recurses into a fresh Parser per comma-separated
// group instead.
package parser

import (
	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/token"
)

// Parser consumes a flat token slice (a whole file, or one lexer-pregrouped
// argument/element run) and builds expression trees from it.
type Parser struct {
	file   string
	source string
	toks   []token.Token
	pos    int
	errs   *errors.Bundle
}

// New creates a Parser over toks. file and source are carried through to
// every error for diagnostic formatting; source may be empty when parsing
// an inner group that shares the outer file's already-known source.
func New(toks []token.Token, file, source string) *Parser {
	return &Parser{toks: toks, file: file, source: source, errs: errors.NewBundle(nil)}
}

func (p *Parser) cur() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	if n := len(p.toks); n > 0 {
		return token.Token{Type: token.EOF, Pos: p.toks[n-1].End()}
	}
	return token.Token{Type: token.EOF}
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) atEnd() bool { return p.cur().Type == token.EOF }

func (p *Parser) newErr(kind errors.Kind, pos token.Position, msg string) *errors.Error {
	return errors.New(kind, p.file, pos, msg).WithSource(p.source)
}

// ParseProgram parses every top-level statement until the token sequence is
// exhausted, accumulating every error into a single Bundle instead of
// stopping at the first.
func (p *Parser) ParseProgram() ([]*ast.Node, error) {
	var nodes []*ast.Node
	for !p.atEnd() {
		start := p.pos
		n, err := p.expr()
		if err != nil {
			p.errs.Add(toBundleError(err, p.file, p.source))
			if p.pos == start {
				p.advance() // guarantee forward progress past a token nothing could consume
			}
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes, p.errs.Err()
}

func toBundleError(err error, file, source string) *errors.Error {
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	return errors.New(errors.SyntaxError, file, token.Position{}, err.Error()).WithSource(source)
}

// expr is precedence level 1: `:`, `from`, `as`, `append`, `=`, `::`, `:=`,
// `::=`, left-associative.
func (p *Parser) expr() (*ast.Node, error) {
	left, err := p.addition()
	if err != nil {
		return nil, err
	}
	for exprOps[p.cur().Type] {
		opTok := p.advance()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(opTok, left, right)
	}
	return left, nil
}

// addition is precedence level 2: `+`, `-`, `|`, `&`, `while`.
func (p *Parser) addition() (*ast.Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for additionOps[p.cur().Type] {
		opTok := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(opTok, left, right)
	}
	return left, nil
}

// term is precedence level 3: `*`, `/`, `%`, `repeat`, `at`, `pick`,
// `upick`, `with`, `map(...)`, postfix `'`, and the prefix interval
// comparisons `<`, `<=`, `>`, `>=`.
func (p *Parser) term() (*ast.Node, error) {
	var left *ast.Node

	if isComparisonPrefix(p.cur().Type) {
		opTok := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = ast.NewUnary(opTok, right)
	} else {
		var err error
		left, err = p.factor()
		if err != nil {
			return nil, err
		}
	}

	for {
		switch {
		case p.cur().Type == token.QUOTE:
			quoteTok := p.advance()
			left = &ast.Node{Token: quoteTok, Left: left}
		case p.cur().Type == token.MAPCALL:
			// "list map(p) body" / "list map(p, i) body": MAPCALL is infix
			// like the other term-level operators, but unlike them it also
			// carries its own pregrouped payload (the bound parameter
			// names), so it needs Children alongside Left/Right.
			opTok := p.advance()
			params, err := p.parseGroups(opTok.Groups)
			if err != nil {
				return nil, err
			}
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = &ast.Node{Token: opTok, Left: left, Right: right, Children: params}
		case termOps[p.cur().Type]:
			opTok := p.advance()
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = ast.NewBinary(opTok, left, right)
		default:
			return left, nil
		}
	}
}

// factor is precedence level 4: literals, identifiers, parenthesised
// subexpressions, lexer-pregrouped tokens, and the out/info/infoT/include
// prefix keywords.
func (p *Parser) factor() (*ast.Node, error) {
	tok := p.cur()

	switch {
	case tok.Type == token.EOF:
		return nil, p.newErr(errors.SyntaxError, tok.Pos, "unexpected end of input")

	case literalLeaf[tok.Type]:
		p.advance()
		return ast.New(tok), nil

	case tok.Type == token.COMPOSITE_STRING:
		p.advance()
		return ast.New(tok), nil

	case tok.Type == token.MINUS:
		p.advance()
		lit := p.cur()
		if lit.Type != token.INT && lit.Type != token.FLOAT {
			return nil, p.newErr(errors.SyntaxError, tok.Pos, "unary '-' is only valid in front of a number literal")
		}
		p.advance()
		signed := lit
		signed.Literal = "-" + lit.Literal
		return ast.New(signed), nil

	case tok.Type == token.PLUS:
		return nil, p.newErr(errors.InvalidOperation, tok.Pos, "unexpected '+' in factor position")

	case tok.Type == token.LPAREN:
		p.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.cur().Type != token.RPAREN {
			return nil, p.newErr(errors.SyntaxError, p.cur().Pos, "expected ')'")
		}
		p.advance()
		return inner, nil

	case prefixKeywords[tok.Type]:
		p.advance()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(tok, right), nil

	case groupedFactors[tok.Type]:
		p.advance()
		return p.buildGroup(tok)

	case tok.Type == token.ILLEGAL:
		p.advance()
		return nil, p.newErr(errors.LexerError, tok.Pos, tok.Literal)

	default:
		return nil, p.newErr(errors.SyntaxError, tok.Pos, "unexpected "+tok.Type.String()+" in factor position")
	}
}

// buildGroup converts a lexer-pregrouped token's comma-separated runs into
// child nodes, one node per group.
func (p *Parser) buildGroup(tok token.Token) (*ast.Node, error) {
	children, err := p.parseGroups(tok.Groups)
	if err != nil {
		return nil, err
	}
	var bodyChildren []*ast.Node
	if tok.Type == token.TEMPLATEDEF {
		bodyChildren, err = p.parseGroups(tok.BodyGroups)
		if err != nil {
			return nil, err
		}
	}
	return ast.NewGroup(tok, children, bodyChildren), nil
}

// ParseExpr parses toks as a single expression. Used by the evaluator to
// lazily parse a composite string's interpolation runs, which the lexer
// tokenised as flat runs (not comma-split) but left unparsed since the parser
// package did not exist yet at lex time.
func ParseExpr(toks []token.Token, file, source string) (*ast.Node, error) {
	p := New(toks, file, source)
	n, err := p.expr()
	if err != nil {
		return nil, toBundleError(err, file, source)
	}
	if !p.atEnd() {
		return nil, p.newErr(errors.SyntaxError, p.cur().Pos, "unexpected trailing tokens")
	}
	return n, nil
}

// parseGroups parses each comma-separated token run as a full expr, failing
// if a run leaves trailing tokens unconsumed.
func (p *Parser) parseGroups(groups [][]token.Token) ([]*ast.Node, error) {
	if groups == nil {
		return nil, nil
	}
	nodes := make([]*ast.Node, 0, len(groups))
	for _, run := range groups {
		sub := New(run, p.file, p.source)
		n, err := sub.expr()
		if err != nil {
			return nil, err
		}
		if !sub.atEnd() {
			return nil, p.newErr(errors.SyntaxError, sub.cur().Pos, "unexpected trailing tokens")
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
