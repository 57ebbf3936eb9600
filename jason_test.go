package jason_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	jason "github.com/alexandermeade/jason-rs"
)

// TestFixtures compiles every end-to-end scenario under testdata/ and
// snapshots either its rendered JSON output or its formatted error, so a
// regression in the lexer, parser, type system or evaluator shows up as a
// snapshot diff instead of a silent behavior change.
func TestFixtures(t *testing.T) {
	cases := []struct {
		name string
		path string
	}{
		{"object_union", "testdata/object_union.jason"},
		{"deep_merge", "testdata/deep_merge.jason"},
		{"repeat_overload", "testdata/repeat_overload.jason"},
		{"template_typed", "testdata/template_typed.jason"},
		{"division_by_zero", "testdata/division_by_zero.jason"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := compileToSnapshotString(tc.path)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", tc.name), actual)
		})
	}
}

// TestCircularImport compiles a file that imports a second file importing
// the first back, and snapshots the resulting CircularImport error rather
// than any rendered output, since compilation must fail.
func TestCircularImport(t *testing.T) {
	actual := compileToSnapshotString("testdata/circular_import/a.jason")
	snaps.MatchSnapshot(t, "circular_import_output", actual)
}

func compileToSnapshotString(path string) string {
	result, err := jason.CompileFile(path)
	if err != nil {
		return "error: " + err.Error()
	}
	raw, err := result.JSON()
	if err != nil {
		return "render error: " + err.Error()
	}
	return string(raw)
}
