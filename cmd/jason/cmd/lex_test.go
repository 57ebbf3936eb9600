package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunLexEvalInline(t *testing.T) {
	lexEval = `{a: 1}`
	lexOnlyErrors = false
	defer func() { lexEval, lexOnlyErrors = "", false }()

	if err := runLex(lexCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunLexReportsIllegalTokens(t *testing.T) {
	lexEval = "`"
	lexOnlyErrors = false
	defer func() { lexEval, lexOnlyErrors = "", false }()

	if err := runLex(lexCmd, nil); err == nil {
		t.Errorf("expected an error for illegal input")
	}
}

func TestRunLexFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jason")
	if err := os.WriteFile(path, []byte(`out 1`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	lexEval = ""
	defer func() { lexEval = "" }()

	if err := runLex(lexCmd, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReadLexInputMissingFile(t *testing.T) {
	lexEval = ""
	_, _, err := readLexInput([]string{"/nonexistent/file.jason"})
	if err == nil {
		t.Errorf("expected an error reading a missing file")
	}
}
