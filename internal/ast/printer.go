package ast

import (
	"fmt"
	"strings"
)

// Dump renders an indented tree view of n, one node per line. It is
// deliberately more verbose than PlainSum, which reconstructs surface
// syntax instead.
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "%s %q\n", n.Token.Type, n.Token.Literal)
	dump(sb, n.Left, depth+1)
	dump(sb, n.Right, depth+1)
	for _, c := range n.Children {
		dump(sb, c, depth+1)
	}
	for _, c := range n.BodyChildren {
		dump(sb, c, depth+1)
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", n.Token.Type, n.PlainSum())
}
