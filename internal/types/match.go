package types

import "github.com/alexandermeade/jason-rs/internal/value"

// Matches is a free-function convenience wrapper around t.Matches(v) that
// tolerates a nil Type (treated as Any) — used by callers that construct a
// type lazily and may not have one yet (e.g. an undeclared variable-type).
func Matches(t Type, v *value.Value) bool {
	if t == nil {
		return true
	}
	return t.Matches(v)
}
