package errors

import (
	"fmt"

	"github.com/alexandermeade/jason-rs/internal/token"
)

// Error is a single jason compilation error: a kind, a message, the
// position and file it originated in, the name parameter (if the kind
// carries one) used to pick the highlighted substring, and an ordered
// context stack for nesting (template-call chain, import chain).
type Error struct {
	Kind    Kind
	Message string
	File    string
	Pos     token.Position
	Name    string // highlighted substring; HighlightAll for whole-line
	Source  string // the file's full source text, for line reconstruction
	Context []string
	Wrapped error
}

// New builds an Error of the given kind with a plain message. Name defaults
// to HighlightAll.
func New(kind Kind, file string, pos token.Position, message string) *Error {
	return &Error{Kind: kind, Message: message, File: file, Pos: pos, Name: HighlightAll}
}

// WithName sets the substring to highlight (e.g. the offending variable or
// template name) instead of the whole line.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithSource attaches the file's source text so Format can reconstruct the
// offending line.
func (e *Error) WithSource(source string) *Error {
	e.Source = source
	return e
}

// Push appends a frame to the context stack (e.g. "in template P" or
// "imported from b.jason"), read outermost-first by Format.
func (e *Error) Push(frame string) *Error {
	e.Context = append(e.Context, frame)
	return e
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Format(false) }

// Unwrap exposes a lower-level error this one wraps, e.g. a lexer.Error or
// scripting-interpreter failure, for errors.Is/As interop with fmt's %w.
func (e *Error) Unwrap() error { return e.Wrapped }

// Wrap builds a new Error whose message is message followed by wrapped's
// text, and which unwraps to wrapped.
func Wrap(kind Kind, file string, pos token.Position, message string, wrapped error) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf("%s: %v", message, wrapped),
		File:    file,
		Pos:     pos,
		Name:    HighlightAll,
		Wrapped: wrapped,
	}
}
