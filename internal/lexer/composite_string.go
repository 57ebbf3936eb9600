package lexer

import (
	"strings"

	"github.com/alexandermeade/jason-rs/internal/token"
)

// scanComposite reads a $"..." composite string: a literal with {expr}
// interpolations. Fragments holds the literal text between interpolations
// (len(Fragments) == len(Exprs)+1); Exprs holds each interpolated
// expression's token run. A literal '{' or '}' inside the fragment text is
// written as "\{" / "\}".
func (l *Lexer) scanComposite() token.Token {
	pos := l.currentPos()
	l.readChar() // consume '$'
	l.readChar() // consume opening '"'

	var fragments []string
	var exprs [][]token.Token
	var frag strings.Builder

	for {
		switch {
		case l.ch == 0:
			l.addError("unterminated composite string", pos)
			fragments = append(fragments, frag.String())
			return token.Token{
				Type:      token.COMPOSITE_STRING,
				Fragments: fragments,
				Exprs:     exprs,
				Pos:       pos,
			}
		case l.ch == '"':
			l.readChar() // consume closing '"'
			fragments = append(fragments, frag.String())
			return token.Token{
				Type:      token.COMPOSITE_STRING,
				Fragments: fragments,
				Exprs:     exprs,
				Pos:       pos,
			}
		case l.ch == '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				frag.WriteRune('\n')
			case 't':
				frag.WriteRune('\t')
			case '"':
				frag.WriteRune('"')
			case '\\':
				frag.WriteRune('\\')
			case '{':
				frag.WriteRune('{')
			case '}':
				frag.WriteRune('}')
			default:
				frag.WriteRune(l.ch)
			}
			l.readChar()
		case l.ch == '{':
			fragments = append(fragments, frag.String())
			frag.Reset()
			l.readChar() // consume '{'
			exprPos := l.currentPos()
			toks, closed := l.lexUntil(token.RBRACE)
			if !closed {
				l.addError("unclosed '{' opened at "+posString(exprPos), exprPos)
			}
			exprs = append(exprs, toks)
		default:
			frag.WriteRune(l.ch)
			l.readChar()
		}
	}
}
