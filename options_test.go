package jason_test

import (
	"errors"
	"testing"

	jason "github.com/alexandermeade/jason-rs"
)

type fakeLoader map[string]string

func (f fakeLoader) Read(path string) ([]byte, error) {
	src, ok := f[path]
	if !ok {
		return nil, errors.New("no such file: " + path)
	}
	return []byte(src), nil
}

func TestWithLoaderOverridesFileReads(t *testing.T) {
	loader := fakeLoader{"virtual.jason": `out { a : 1 }`}
	b := jason.New(jason.WithLoader(loader))

	result, err := b.CompileFile("virtual.jason")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := result.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) == "" {
		t.Errorf("expected non-empty rendered output")
	}
}

func TestWithScriptingSourcePreloadsBaseEnvironment(t *testing.T) {
	result, err := jason.Compile(
		`out double(21)!`,
		jason.WithScriptingSource(`function double(x) return x * 2 end`),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Output.IntValue() != 42 {
		t.Errorf("got %v, want 42", result.Output)
	}
}

func TestWithImportRootsResolvesAgainstAdditionalBase(t *testing.T) {
	loader := fakeLoader{
		"main.jason": `import(*) from "lib.jason"
out { value : value }`,
		"/lib/lib.jason": `value := 1`,
	}
	b := jason.New(jason.WithLoader(loader), jason.WithImportRoots("/lib"))
	result, err := b.CompileFile("main.jason")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := result.Output.ObjectGet("value")
	if !ok || v.IntValue() != 1 {
		t.Errorf("got %v, want an object with value 1", result.Output)
	}
}

func TestWithMaxImportDepthLimitsNesting(t *testing.T) {
	loader := fakeLoader{
		"a.jason": `import(*) from "b.jason"
out { from : "a" }`,
		"b.jason": `import(*) from "a.jason"
out { from : "b" }`,
	}
	b := jason.New(jason.WithLoader(loader), jason.WithMaxImportDepth(1))
	if _, err := b.CompileFile("a.jason"); err == nil {
		t.Errorf("expected a depth-limit error with a tiny max import depth")
	}
}

func TestCompilePackageLevelMatchesBuilderForm(t *testing.T) {
	source := `out 1 + 1`
	viaPackage, err := jason.Compile(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaBuilder, err := jason.New().Compile(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viaPackage.Output.IntValue() != viaBuilder.Output.IntValue() {
		t.Errorf("expected both forms to compile to the same value")
	}
}
