// Package token defines the tagged token model the lexer produces and the
// parser consumes: a token type, its literal text, a source position, and —
// for the handful of token kinds the lexer pre-groups at lex time (lists,
// blocks, call argument lists, composite strings) — the nested token runs
// that make up that grouping.
package token

// Position identifies a location in source text by line and column (both
// 1-based) plus a byte offset usable for O(1) substring extraction.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is a single lexical unit with its source position. Most tokens only
// use Type/Literal/Pos; the pre-grouped kinds additionally populate Groups,
// BodyGroups, Fragments and Exprs as described on each TokenType constant.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position

	// Groups holds comma-separated token runs collected by the lexer for
	// delimiter-balanced constructs: LIST elements, BLOCK key:value entries,
	// and CALL/SCRIPTCALL/TEMPLATEDEF argument (parameter) lists.
	Groups [][]Token

	// BodyGroups holds a second comma-separated payload, used only by
	// TEMPLATEDEF tokens to carry the `{ ... }` body's key:value entries
	// (shaped exactly like a BLOCK token's Groups).
	BodyGroups [][]Token

	// Fragments and Exprs back a COMPOSITE_STRING token: Fragments holds the
	// literal text segments (always len(Exprs)+1 of them) and Exprs holds the
	// already-grouped token run for each `{...}` interpolation, in order.
	Fragments []string
	Exprs     [][]Token
}

// End returns the position immediately after the token's literal text, used
// by the source-slice reconstruction in diagnostics.
func (t Token) End() Position {
	end := t.Pos
	end.Column += len([]rune(t.Literal))
	end.Offset += len(t.Literal)
	return end
}
