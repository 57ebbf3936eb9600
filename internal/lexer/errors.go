package lexer

import (
	"fmt"

	"github.com/alexandermeade/jason-rs/internal/token"
)

// Error is a single lexical error discovered while scanning. The lexer
// collects every error it finds rather than stopping at the first one;
// the caller wraps these into the canonical errors.Error kind set for
// display.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}
