package lexer

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/alexandermeade/jason-rs/internal/token"
)

// scanIdentifierOrCall reads an identifier, resolves it against the keyword
// table, and — when it's immediately followed by '(' — disambiguates
// between a plain call, a template definition, and a scripting call.
func (l *Lexer) scanIdentifierOrCall() token.Token {
	pos := l.currentPos()
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	for isNonASCIILetter(l.ch) || isConfusableWidthLetter(l.ch) {
		l.addError("identifiers must be ASCII-only", l.currentPos())
		l.readChar()
		for isIdentPart(l.ch) {
			l.readChar()
		}
	}
	name := l.input[start:l.position]

	if tt, ok := token.LookupKeyword(name); ok {
		return token.Token{Type: tt, Literal: name, Pos: pos}
	}

	if l.ch == '(' {
		return l.scanCallLike(name, pos)
	}

	return token.Token{Type: token.IDENT, Literal: name, Pos: pos}
}

// isConfusableWidthLetter reports whether ch is a fullwidth (or otherwise
// non-narrow) form that folds to an ASCII letter or digit, e.g. the
// fullwidth 'ａ' (U+FF41). jason's "ASCII-only identifiers" invariant would
// otherwise be silently bypassed by visually-identical Unicode look-alikes.
func isConfusableWidthLetter(ch rune) bool {
	if ch <= unicode_MaxASCII {
		return false
	}
	folded := width.Narrow.String(string(ch))
	if folded == string(ch) {
		return false
	}
	r := []rune(folded)
	return len(r) == 1 && isIdentPart(r[0])
}

const unicode_MaxASCII = 0x7F

// scanCallLike consumes '(' args ')' then disambiguates the construct that
// follows: '!' -> scripting call, '{' -> template definition, else a plain
// call (possibly retagged to a call-keyword like IMPORTCALL).
func (l *Lexer) scanCallLike(name string, pos token.Position) token.Token {
	l.readChar() // consume '('
	openPos := pos
	argTokens, closed := l.lexUntil(token.RPAREN)
	if !closed {
		l.addError("unclosed '(' opened at "+posString(openPos), openPos)
		return token.Token{Type: token.ILLEGAL, Literal: "unclosed '('", Pos: pos}
	}
	groups := splitByComma(argTokens)

	l.skipWhitespaceAndComments()
	switch {
	case l.ch == '!':
		l.readChar()
		return token.Token{Type: token.SCRIPTCALL, Literal: name, Groups: groups, Pos: pos}
	case l.ch == '{':
		l.readChar()
		bodyOpen := l.currentPos()
		bodyTokens, closedBody := l.lexUntil(token.RBRACE)
		if !closedBody {
			l.addError("unclosed '{' opened at "+posString(bodyOpen), bodyOpen)
			return token.Token{Type: token.ILLEGAL, Literal: "unclosed '{'", Pos: pos}
		}
		return token.Token{
			Type:       token.TEMPLATEDEF,
			Literal:    name,
			Groups:     groups,
			BodyGroups: splitByComma(bodyTokens),
			Pos:        pos,
		}
	default:
		tt := token.CALL
		if kw, ok := token.LookupCallKeyword(name); ok {
			tt = kw
		}
		return token.Token{Type: tt, Literal: name, Groups: groups, Pos: pos}
	}
}

func posString(p token.Position) string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// scanNumber reads an INT or FLOAT literal. A second '.' inside the digits
// is a lexical error.
func (l *Lexer) scanNumber() token.Token {
	pos := l.currentPos()
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	isFloat := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
		if l.ch == '.' && isDigit(l.peekChar()) {
			l.addError("number literal has more than one decimal point", l.currentPos())
			for l.ch == '.' || isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	lit := l.input[start:l.position]
	if isFloat {
		return token.Token{Type: token.FLOAT, Literal: lit, Pos: pos}
	}
	return token.Token{Type: token.INT, Literal: lit, Pos: pos}
}

// scanString reads a "..." literal, interpreting \\, \", \n and \t escapes.
func (l *Lexer) scanString() token.Token {
	pos := l.currentPos()
	l.readChar() // consume opening quote
	var sb strings.Builder
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				sb.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == 0 {
		l.addError("unterminated string literal", pos)
		return token.Token{Type: token.ILLEGAL, Literal: "unterminated string", Pos: pos}
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Literal: sb.String(), Pos: pos}
}
