package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jason "github.com/alexandermeade/jason-rs"
	"github.com/alexandermeade/jason-rs/internal/errors"
)

var (
	compileFormat      string
	compileOutputFile  string
	compileScripting   string
	compileImportRoots []string
	compileColor       bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a jason file to a structured value",
	Long: `Compile a jason program and render its designated 'out' value.

Examples:
  jason compile config.jason
  jason compile config.jason -f yaml -o config.yaml
  jason compile config.jason -f toml --import-root ./lib`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileFormat, "format", "f", "json", "output format: json, yaml, or toml")
	compileCmd.Flags().StringVarP(&compileOutputFile, "output", "o", "", "output file (default: stdout)")
	compileCmd.Flags().StringVarP(&compileScripting, "scripting", "s", "", "Lua source file preloaded into the scripting bridge's base environment")
	compileCmd.Flags().StringArrayVar(&compileImportRoots, "import-root", nil, "additional base directory to search for import/include paths (repeatable)")
	compileCmd.Flags().BoolVar(&compileColor, "color", false, "colourise error output")
}

func runCompile(cmd *cobra.Command, args []string) error {
	filename := args[0]

	opts := []jason.Option{
		jason.WithLogger(newLogger()),
		jason.WithImportRoots(compileImportRoots...),
	}
	if compileScripting != "" {
		src, err := os.ReadFile(compileScripting)
		if err != nil {
			return fmt.Errorf("failed to read scripting source %s: %w", compileScripting, err)
		}
		opts = append(opts, jason.WithScriptingSource(string(src)))
	}

	result, err := jason.CompileFile(filename, opts...)
	if err != nil {
		printCompileError(err)
		return fmt.Errorf("compilation failed")
	}

	var rendered []byte
	switch compileFormat {
	case "json":
		rendered, err = result.JSON()
	case "yaml":
		rendered, err = result.YAML()
	case "toml":
		rendered, err = result.TOML()
	default:
		return fmt.Errorf("unknown format %q (use json, yaml, or toml)", compileFormat)
	}
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if compileOutputFile == "" {
		fmt.Println(string(rendered))
		return nil
	}
	if err := os.WriteFile(compileOutputFile, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", compileOutputFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Compiled %s -> %s\n", filename, compileOutputFile)
	}
	return nil
}

func printCompileError(err error) {
	switch e := err.(type) {
	case *errors.Bundle:
		fmt.Fprint(os.Stderr, e.Format(compileColor))
		fmt.Fprintln(os.Stderr)
	case *errors.Error:
		fmt.Fprint(os.Stderr, e.Format(compileColor))
		fmt.Fprintln(os.Stderr)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}
