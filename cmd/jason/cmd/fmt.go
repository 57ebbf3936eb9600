package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexandermeade/jason-rs/internal/lexer"
	"github.com/alexandermeade/jason-rs/internal/parser"
)

var (
	fmtWrite bool
	fmtList  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Reformat jason source to its canonical form",
	Long: `Reformat jason source files by parsing them and reprinting each top-level
statement via its canonical reconstruction (Node.PlainSum).

By default, writes the formatted result to stdout. If no file is given,
reads from stdin.

Examples:
  jason fmt config.jason
  jason fmt -w config.jason
  jason fmt -l *.jason`,
	RunE: runFmtCmd,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
}

func runFmtCmd(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}

	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		formatted, err := formatSource(string(src), "<stdin>")
		if err != nil {
			return err
		}
		fmt.Print(formatted)
		return nil
	}

	hasErrors := false
	for _, path := range args {
		if err := formatFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	formatted, err := formatSource(string(src), path)
	if err != nil {
		return err
	}

	changed := string(src) != formatted
	switch {
	case fmtList:
		if changed {
			fmt.Println(path)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

func formatSource(source, filename string) (string, error) {
	l := lexer.New(source)
	toks := l.Tokens()
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		var sb strings.Builder
		sb.WriteString("lex errors:\n")
		for _, e := range lexErrs {
			fmt.Fprintf(&sb, "  %s\n", e)
		}
		return "", fmt.Errorf("%s", sb.String())
	}

	nodes, err := parser.New(toks, filename, source).ParseProgram()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.PlainSum())
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
