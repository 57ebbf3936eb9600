package errors

import (
	"fmt"
	"strings"
)

// Bundle collects every error discovered during one phase (lexing,
// parsing, or a file's evaluation) instead of stopping at the first: the
// lexer and parser return every error they find, and the evaluator tries
// every top-level expression independently before returning its
// accumulated errors together.
type Bundle struct {
	Errors []*Error
}

// NewBundle wraps errs into a Bundle. A nil/empty slice produces a Bundle
// whose Err() returns nil.
func NewBundle(errs []*Error) *Bundle {
	return &Bundle{Errors: errs}
}

// Add appends err to the bundle, ignoring nil.
func (b *Bundle) Add(err *Error) {
	if err == nil {
		return
	}
	b.Errors = append(b.Errors, err)
}

// Err returns b as an error, or nil if b holds no errors — the idiomatic
// way to fold a Bundle into a function's plain error return.
func (b *Bundle) Err() error {
	if b == nil || len(b.Errors) == 0 {
		return nil
	}
	return b
}

// Error implements the error interface by formatting every member in
// sequence, uncoloured.
func (b *Bundle) Error() string { return b.Format(false) }

// Format renders every member error via Error.Format, headed by a count
// summary when there is more than one.
func (b *Bundle) Format(color bool) string {
	switch len(b.Errors) {
	case 0:
		return ""
	case 1:
		return b.Errors[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n\n", len(b.Errors))
	for i, e := range b.Errors {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(b.Errors))
		sb.WriteString(e.Format(color))
		if i < len(b.Errors)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// Unwrap exposes the member errors for errors.Is/As traversal (Go 1.20+
// multi-error Unwrap() []error convention).
func (b *Bundle) Unwrap() []error {
	errs := make([]error, len(b.Errors))
	for i, e := range b.Errors {
		errs[i] = e
	}
	return errs
}
