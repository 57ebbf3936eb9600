package lexer

import "github.com/alexandermeade/jason-rs/internal/token"

// lexUntil scans tokens until it sees closer (consuming it) or runs out of
// input. Nested brackets, calls, and template bodies are already consumed
// whole by scanToken's recursive descent, so callers never need to track
// their depth when splitting on commas. A bare '(' ... ')' pair stays as
// plain LPAREN/RPAREN tokens; when closer is ')', such pairs are counted so
// that an inner ')' does not end the run early.
func (l *Lexer) lexUntil(closer token.TokenType) ([]token.Token, bool) {
	var toks []token.Token
	depth := 0 // unmatched bare '(' tokens, counted only when closer is ')'
	for {
		l.skipWhitespaceAndComments()
		if l.ch == 0 {
			return toks, false
		}
		if depth == 0 {
			if peeked, ok := l.peekCloser(closer); ok {
				_ = peeked
				return toks, true
			}
		}
		tok := l.scanToken()
		if closer == token.RPAREN {
			switch tok.Type {
			case token.LPAREN:
				depth++
			case token.RPAREN:
				depth--
			}
		}
		toks = append(toks, tok)
	}
}

// peekCloser reports whether the lexer is sitting on closer's single-rune
// surface text, consuming it if so.
func (l *Lexer) peekCloser(closer token.TokenType) (token.Token, bool) {
	var want rune
	switch closer {
	case token.RPAREN:
		want = ')'
	case token.RBRACKET:
		want = ']'
	case token.RBRACE:
		want = '}'
	default:
		return token.Token{}, false
	}
	if l.ch != want {
		return token.Token{}, false
	}
	pos := l.currentPos()
	l.readChar()
	return token.Token{Type: closer, Pos: pos}, true
}

// splitByComma partitions a flat token run into comma-separated groups. An
// empty run yields no groups (used for e.g. "[]"); a single trailing comma
// is tolerated and does not produce a spurious empty trailing group.
func splitByComma(toks []token.Token) [][]token.Token {
	if len(toks) == 0 {
		return nil
	}
	var groups [][]token.Token
	var cur []token.Token
	for _, t := range toks {
		if t.Type == token.COMMA {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// scanList reads a '[' ... ']' list literal, grouping its elements by comma.
func (l *Lexer) scanList() token.Token {
	pos := l.currentPos()
	l.readChar() // consume '['
	toks, closed := l.lexUntil(token.RBRACKET)
	if !closed {
		l.addError("unclosed '[' opened at "+posString(pos), pos)
		return token.Token{Type: token.ILLEGAL, Literal: "unclosed '['", Pos: pos}
	}
	return token.Token{Type: token.LIST, Groups: splitByComma(toks), Pos: pos}
}

// scanBlock reads a '{' ... '}' object literal, grouping its entries by
// comma. Each entry is itself a "key : value" run handled at the parser
// level; the lexer only establishes the comma boundaries.
func (l *Lexer) scanBlock() token.Token {
	pos := l.currentPos()
	l.readChar() // consume '{'
	toks, closed := l.lexUntil(token.RBRACE)
	if !closed {
		l.addError("unclosed '{' opened at "+posString(pos), pos)
		return token.Token{Type: token.ILLEGAL, Literal: "unclosed '{'", Pos: pos}
	}
	return token.Token{Type: token.BLOCK, Groups: splitByComma(toks), Pos: pos}
}
