package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexandermeade/jason-rs/internal/lexer"
	"github.com/alexandermeade/jason-rs/internal/token"
)

var (
	lexEval       string
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a jason file or expression",
	Long: `Tokenize (lex) jason source and print the resulting top-level tokens.

Useful for debugging the lexer's delimiter-balanced grouping: a LIST, BLOCK,
or call-family token prints with its Groups already split out.

Examples:
  jason lex config.jason
  jason lex -e '{a: 1, b: 2}'
  jason lex --show-type --show-pos config.jason`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readLexInput(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Input length: %d bytes\n---\n", len(input))
	}

	l := lexer.New(input)
	toks := l.Tokens()

	if !lexOnlyErrors {
		for _, tok := range toks {
			printToken(tok)
		}
	}

	lexErrs := l.Errors()
	for _, e := range lexErrs {
		fmt.Fprintf(os.Stderr, "illegal: %s\n", e)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "---\nTotal tokens: %d\n", len(toks))
	}

	if len(lexErrs) > 0 {
		return fmt.Errorf("found %d illegal token(s)", len(lexErrs))
	}
	return nil
}

func readLexInput(args []string) (input, filename string, err error) {
	switch {
	case lexEval != "":
		return lexEval, "<eval>", nil
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

func printToken(tok token.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-14s]", tok.Type.String())
	}
	if tok.Literal == "" {
		out += " " + tok.Type.String()
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if tok.Type.IsGrouped() {
		out += fmt.Sprintf(" (%d group(s))", len(tok.Groups))
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
