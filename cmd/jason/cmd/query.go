package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jason "github.com/alexandermeade/jason-rs"
	"github.com/alexandermeade/jason-rs/internal/jsonvalue"
)

var querySet string

var queryCmd = &cobra.Command{
	Use:   "query [file] [path]",
	Short: "Compile a jason file and run a gjson path query against its output",
	Long: `Compile a jason file and query its 'out' value with a gjson path,
without having to re-render and pipe through another tool.

With --set, instead patches the rendered JSON at path and prints the
patched document (sjson), leaving the source file untouched.

Examples:
  jason query config.jason servers.0.host
  jason query config.jason servers --set '["a","b"]'`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&querySet, "set", "", "patch the value at path to this raw JSON value instead of querying")
}

func runQuery(cmd *cobra.Command, args []string) error {
	filename, path := args[0], args[1]

	result, err := jason.CompileFile(filename, jason.WithLogger(newLogger()))
	if err != nil {
		printCompileError(err)
		return fmt.Errorf("compilation failed")
	}

	raw, err := result.JSON()
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if querySet != "" {
		patched, err := jsonvalue.Patch(raw, path, json.RawMessage(querySet))
		if err != nil {
			return fmt.Errorf("patch failed: %w", err)
		}
		fmt.Println(string(patched))
		return nil
	}

	res := jsonvalue.Query(raw, path)
	if !res.Exists() {
		fmt.Fprintf(os.Stderr, "%s: no match\n", path)
		return fmt.Errorf("path not found")
	}
	fmt.Println(res.Raw)
	return nil
}
