package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunQueryExistingPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "config.jason")
	if err := os.WriteFile(src, []byte(`out { servers : [{ host : "a" }, { host : "b" }] }`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	querySet = ""
	defer func() { querySet = "" }()

	if err := runQuery(queryCmd, []string{src, "servers.1.host"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunQueryMissingPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "config.jason")
	if err := os.WriteFile(src, []byte(`out { a : 1 }`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	querySet = ""
	defer func() { querySet = "" }()

	if err := runQuery(queryCmd, []string{src, "nonexistent"}); err == nil {
		t.Errorf("expected an error for a missing path")
	}
}

func TestRunQuerySetPatches(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "config.jason")
	if err := os.WriteFile(src, []byte(`out { a : 1 }`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	querySet = `2`
	defer func() { querySet = "" }()

	if err := runQuery(queryCmd, []string{src, "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunQueryCompileErrorPropagates(t *testing.T) {
	querySet = ""
	defer func() { querySet = "" }()

	if err := runQuery(queryCmd, []string{"/nonexistent/file.jason", "a"}); err == nil {
		t.Errorf("expected an error compiling a missing file")
	}
}
