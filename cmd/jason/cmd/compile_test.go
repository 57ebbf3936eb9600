package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunCompileWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "config.jason")
	if err := os.WriteFile(src, []byte(`out { a : 1 }`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	out := filepath.Join(dir, "config.json")

	compileFormat = "json"
	compileOutputFile = out
	compileScripting = ""
	compileImportRoots = nil
	defer func() {
		compileFormat, compileOutputFile, compileScripting, compileImportRoots = "json", "", "", nil
	}()

	if err := runCompile(compileCmd, []string{src}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected runCompile to write %s: %v", out, err)
	}
	if len(got) == 0 {
		t.Errorf("expected non-empty rendered output")
	}
}

func TestRunCompileUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "config.jason")
	if err := os.WriteFile(src, []byte(`out 1`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	compileFormat = "xml"
	compileOutputFile = ""
	defer func() { compileFormat, compileOutputFile = "json", "" }()

	if err := runCompile(compileCmd, []string{src}); err == nil {
		t.Fatalf("expected an error for an unknown output format")
	}
}

func TestRunCompileMissingFile(t *testing.T) {
	compileFormat = "json"
	compileOutputFile = ""
	defer func() { compileFormat, compileOutputFile = "json", "" }()

	if err := runCompile(compileCmd, []string{"/nonexistent/file.jason"}); err == nil {
		t.Fatalf("expected an error compiling a missing file")
	}
}
