package errors

import (
	"strings"
	"testing"

	"github.com/alexandermeade/jason-rs/internal/token"
)

func TestFormatHighlightsName(t *testing.T) {
	e := New(UndefinedVariable, "main.jason", token.Position{Line: 1, Column: 5}, "undefined variable 'x'").
		WithName("x").
		WithSource("out x + 1")

	got := e.Format(false)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "UndefinedVariable") || !strings.Contains(lines[0], "main.jason") {
		t.Errorf("header missing kind/file: %q", lines[0])
	}
	caretLine := lines[len(lines)-1]
	if !strings.Contains(caretLine, "^") {
		t.Errorf("expected a caret line, got %q", caretLine)
	}
}

func TestFormatWholeLineHighlight(t *testing.T) {
	e := New(SyntaxError, "main.jason", token.Position{Line: 2, Column: 1}, "bad syntax").
		WithSource("line one\nbroken )) here")
	got := e.Format(false)
	if !strings.Contains(got, "broken )) here") {
		t.Errorf("expected source line reconstruction, got %q", got)
	}
}

func TestBundleErr(t *testing.T) {
	var b Bundle
	if b.Err() != nil {
		t.Fatalf("empty bundle should have nil Err()")
	}
	b.Add(New(ValueError, "f.jason", token.Position{Line: 1, Column: 1}, "boom"))
	if b.Err() == nil {
		t.Fatalf("non-empty bundle should have non-nil Err()")
	}
	if len(b.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(b.Errors))
	}
}

func TestBundleFormatMultiple(t *testing.T) {
	b := NewBundle([]*Error{
		New(ValueError, "f.jason", token.Position{Line: 1, Column: 1}, "first"),
		New(TypeError, "f.jason", token.Position{Line: 2, Column: 1}, "second"),
	})
	got := b.Format(false)
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("expected both messages in bundle format: %q", got)
	}
	if !strings.Contains(got, "2 errors") {
		t.Errorf("expected error count summary: %q", got)
	}
}

func TestWrap(t *testing.T) {
	inner := New(LexerError, "f.jason", token.Position{Line: 1, Column: 1}, "bad token")
	e := Wrap(ParseError, "f.jason", token.Position{Line: 1, Column: 1}, "could not parse", inner)
	if e.Unwrap() != error(inner) {
		t.Errorf("Unwrap() should return the wrapped error")
	}
}
