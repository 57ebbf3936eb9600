package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexandermeade/jason-rs/internal/ast"
	"github.com/alexandermeade/jason-rs/internal/lexer"
	"github.com/alexandermeade/jason-rs/internal/parser"
)

var (
	parseEval     string
	parseDumpTree bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse jason source and display its expression trees",
	Long: `Parse jason source into one expression tree per top-level statement.

Without --dump-tree, each statement prints as its reconstructed canonical
source. With --dump-tree, the Node structure (Token, Left, Right, Children,
BodyChildren) is shown indented.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse an inline expression instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "dump the full Node tree structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readParseInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	toks := l.Tokens()
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintf(os.Stderr, "lex error: %s\n", e)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	nodes, err := parser.New(toks, filename, input).ParseProgram()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing failed")
	}

	for i, n := range nodes {
		if parseDumpTree {
			fmt.Printf("--- statement %d ---\n", i)
			dumpNode(n, 0)
		} else {
			fmt.Println(n.PlainSum())
		}
	}
	return nil
}

func readParseInput(args []string) (input, filename string, err error) {
	switch {
	case parseEval != "":
		return parseEval, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}

func dumpNode(n *ast.Node, indent int) {
	if n == nil {
		return
	}
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	fmt.Printf("%s%s %q\n", pad, n.Token.Type, n.Token.Literal)
	if n.Left != nil {
		fmt.Printf("%s  left:\n", pad)
		dumpNode(n.Left, indent+2)
	}
	if n.Right != nil {
		fmt.Printf("%s  right:\n", pad)
		dumpNode(n.Right, indent+2)
	}
	for i, c := range n.Children {
		fmt.Printf("%s  child[%d]:\n", pad, i)
		dumpNode(c, indent+2)
	}
	for i, c := range n.BodyChildren {
		fmt.Printf("%s  body[%d]:\n", pad, i)
		dumpNode(c, indent+2)
	}
}
