// Package ast defines the expression-tree shape jason's parser builds.
//
// Every construct in the language — arithmetic, assignment, calls, blocks,
// templates, imports — collapses to a single Node carrying its operator
// token and up to two children, following the grammar's habit of being a
// binary operator applied to sub-expressions. There is
// deliberately no one-struct-per-construct hierarchy: a Node's Token.Type
// tells the evaluator which family of behaviour applies.
package ast

import (
	"strings"

	"github.com/alexandermeade/jason-rs/internal/token"
)

// Node is a single expression-tree node. Left and/or Right may be nil
// depending on the operator's arity: prefix keywords (out, info, infoT,
// include) and prefix comparisons (<, <=, >, >=) carry only Right; the
// postfix variance operator (') carries only Left; literals and
// identifiers carry neither and are leaves whose payload lives entirely
// in Token.
//
// The lexer pre-splits LIST, BLOCK, any CALL-family token, and TEMPLATEDEF's
// parameter list into comma-separated token groups (token.Token.Groups);
// the parser converts each group into exactly one Node. Since a group count
// can exceed two, those nodes carry their per-group children in Children
// rather
// than forcing them through Left/Right — Children is nil for every other
// node kind except MAPCALL, whose "list map(p) body" shape needs Left (the
// source list), Right (the body) and Children (the bound parameter names)
// simultaneously. TEMPLATEDEF additionally populates BodyChildren from
// Token.BodyGroups.
type Node struct {
	Token token.Token
	Left  *Node
	Right *Node

	Children     []*Node
	BodyChildren []*Node
}

// New builds a leaf node from a single token — literals and identifiers.
func New(tok token.Token) *Node {
	return &Node{Token: tok}
}

// NewGroup builds a node for a pre-grouped lexer token (LIST, BLOCK, any
// CALL-family token, TEMPLATEDEF), with children already parsed from each
// of Token.Groups (and, for TEMPLATEDEF, Token.BodyGroups).
func NewGroup(tok token.Token, children, bodyChildren []*Node) *Node {
	return &Node{Token: tok, Children: children, BodyChildren: bodyChildren}
}

// NewUnary builds a prefix node: an operator token applied to a single
// right-hand child (out, info, infoT, include, and prefix interval
// comparisons <, <=, >, >=).
func NewUnary(tok token.Token, right *Node) *Node {
	return &Node{Token: tok, Right: right}
}

// NewBinary builds a binary node: an operator token applied to a left and
// right child.
func NewBinary(tok token.Token, left, right *Node) *Node {
	return &Node{Token: tok, Left: left, Right: right}
}

// Pos returns the node's source position, taken from its own token.
func (n *Node) Pos() token.Position { return n.Token.Pos }

// PlainSum reconstructs a canonically-formatted source slice this node
// spans, used for diagnostics (the caret-underlined line in error output)
// and by the `jason fmt` command. It is not a byte-exact echo of the
// original source — whitespace is normalized the way token.Print does for
// pre-grouped tokens.
func (n *Node) PlainSum() string {
	if n == nil {
		return ""
	}
	switch {
	case n.Token.Type == token.MAPCALL:
		// carries Left (source list), Right (body) and Children (bound
		// parameter names) all at once, so it needs its own reconstruction.
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.PlainSum()
		}
		return joinSpace(n.Left.PlainSum(), n.Token.Literal+"("+strings.Join(parts, ", ")+")", n.Right.PlainSum())
	case n.Children != nil:
		return plainSumGrouped(n)
	case n.Left == nil && n.Right == nil:
		return token.Print(n.Token)
	case n.Left == nil:
		return joinSpace(token.Print(n.Token), n.Right.PlainSum())
	case n.Right == nil:
		return n.Left.PlainSum() + token.Print(n.Token) // postfix, e.g. variance '
	default:
		return joinSpace(n.Left.PlainSum(), token.Print(n.Token), n.Right.PlainSum())
	}
}

func plainSumGrouped(n *Node) string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.PlainSum()
	}
	args := strings.Join(parts, ", ")

	switch {
	case n.Token.Type.IsGrouped() && n.BodyChildren != nil:
		bodyParts := make([]string, len(n.BodyChildren))
		for i, c := range n.BodyChildren {
			bodyParts[i] = c.PlainSum()
		}
		return n.Token.Literal + "(" + args + ") {" + strings.Join(bodyParts, ", ") + "}"
	case n.Token.Type == token.SCRIPTCALL:
		return n.Token.Literal + "(" + args + ")!"
	case n.Token.Literal != "":
		return n.Token.Literal + "(" + args + ")"
	default:
		open, close := "[", "]"
		if n.Token.Type == token.BLOCK {
			open, close = "{", "}"
		}
		return open + args + close
	}
}

func joinSpace(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// IsLeaf reports whether n has no children of any kind.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil && len(n.Children) == 0 && len(n.BodyChildren) == 0
}
