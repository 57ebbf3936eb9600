// Package lexer turns jason source text into a flat token.Token sequence.
// Beyond ordinary scanning it performs delimiter-balanced subgrouping at lex
// time: lists, blocks, call argument lists and template bodies are each
// collected into a single token whose payload is already split into
// comma-separated groups, so the parser never has to track bracket depth.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/alexandermeade/jason-rs/internal/token"
)

// Lexer scans jason source text into tokens.
//
// Column positions are rune counts, not byte offsets or display widths:
// every code point — including multi-byte ones — advances the column by
// exactly one. This keeps position tracking simple and reproducible at the
// cost of not matching a terminal's visual cursor for wide glyphs.
type Lexer struct {
	input        string
	position     int // byte offset of ch
	readPosition int // byte offset of the next rune to read
	line         int
	column       int
	ch           rune

	errs    []*Error
	tracing bool
	log     zerolog.Logger
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTracing enables per-token trace logging of scanned tokens, emitted at
// zerolog's trace level. Useful when diagnosing grouping/precedence issues
// during development; a no-op unless the caller's logger has trace enabled.
func WithTracing(trace bool) Option {
	return func(l *Lexer) { l.tracing = trace }
}

// WithLogger attaches a zerolog.Logger for trace output. Without one, a
// disabled logger is used and WithTracing has no observable effect.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Lexer) { l.log = log }
}

// New creates a Lexer for input. A leading UTF-8 BOM is stripped if present.
func New(input string, opts ...Option) *Lexer {
	if len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF {
		input = input[3:]
	}
	l := &Lexer{input: input, line: 1, column: 0, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// Errors returns every lexical error collected so far.
func (l *Lexer) Errors() []*Error { return l.errs }

func (l *Lexer) addError(msg string, pos token.Position) {
	l.errs = append(l.errs, &Error{Message: msg, Pos: pos})
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == utf8.RuneError && size == 1 {
		l.addError("invalid UTF-8 encoding", l.currentPos())
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// skipWhitespaceAndComments also swallows ';', which jason uses purely as
// an optional visual separator between top-level statements. The grammar
// itself never assigns it an operator meaning, and statement boundaries are
// already unambiguous from the four-level grammar alone, so it is treated
// exactly like whitespace rather than becoming its own token kind.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' || l.ch == ';':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') && l.ch != 0 {
				l.readChar()
			}
			if l.ch == 0 {
				l.addError("unterminated block comment", l.currentPos())
				return
			}
			l.readChar()
			l.readChar()
		default:
			return
		}
	}
}

// Tokens scans the entire input and returns the flat token sequence,
// excluding newlines and comments, terminated by an EOF token. It never
// stops at the first error — collect them via Errors after calling Tokens.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.scanToken()
		if l.tracing {
			l.log.Trace().
				Str("type", tok.Type.String()).
				Str("literal", tok.Literal).
				Int("line", tok.Pos.Line).
				Int("column", tok.Pos.Column).
				Msg("scanned token")
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// scanToken returns the next token, consuming whatever input it spans.
func (l *Lexer) scanToken() token.Token {
	l.skipWhitespaceAndComments()
	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Pos: pos}
	case isIdentStart(l.ch):
		return l.scanIdentifierOrCall()
	case isDigit(l.ch):
		return l.scanNumber()
	case l.ch == '"':
		return l.scanString()
	case l.ch == '$':
		if l.peekChar() == '"' {
			return l.scanComposite()
		}
		l.readChar()
		return token.Token{Type: token.DOLLAR, Literal: "$", Pos: pos}
	case l.ch == '[':
		return l.scanList()
	case l.ch == '{':
		return l.scanBlock()
	}

	return l.scanOperator()
}

func (l *Lexer) scanOperator() token.Token {
	pos := l.currentPos()
	ch := l.ch

	simple := func(tt token.TokenType, lit string) token.Token {
		l.readChar()
		return token.Token{Type: tt, Literal: lit, Pos: pos}
	}

	switch ch {
	case '(':
		return simple(token.LPAREN, "(")
	case ')':
		return simple(token.RPAREN, ")")
	case ']':
		return simple(token.RBRACKET, "]")
	case '}':
		return simple(token.RBRACE, "}")
	case ',':
		return simple(token.COMMA, ",")
	case '.':
		return simple(token.DOT, ".")
	case '|':
		return simple(token.PIPE, "|")
	case '&':
		return simple(token.AMP, "&")
	case '\'':
		return simple(token.QUOTE, "'")
	case '+':
		return simple(token.PLUS, "+")
	case '-':
		return simple(token.MINUS, "-")
	case '*':
		return simple(token.STAR, "*")
	case '/':
		return simple(token.SLASH, "/")
	case '%':
		return simple(token.PERCENT, "%")
	case '!':
		return simple(token.BANG, "!")
	case '=':
		return simple(token.ASSIGN, "=")
	case '<':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.Token{Type: token.LE, Literal: "<=", Pos: pos}
		}
		return token.Token{Type: token.LT, Literal: "<", Pos: pos}
	case '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return token.Token{Type: token.GE, Literal: ">=", Pos: pos}
		}
		return token.Token{Type: token.GT, Literal: ">", Pos: pos}
	case ':':
		l.readChar()
		if l.ch == ':' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return token.Token{Type: token.DECLTYPE, Literal: "::=", Pos: pos}
			}
			return token.Token{Type: token.TYPEBIND, Literal: "::", Pos: pos}
		}
		if l.ch == '=' {
			l.readChar()
			return token.Token{Type: token.WALRUS, Literal: ":=", Pos: pos}
		}
		return token.Token{Type: token.COLON, Literal: ":", Pos: pos}
	}

	l.addError("unexpected character '"+string(ch)+"'", pos)
	l.readChar()
	return token.Token{Type: token.ILLEGAL, Literal: string(ch), Pos: pos}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// isNonASCIILetter reports whether ch is a Unicode letter outside ASCII —
// jason identifiers are ASCII-only, so such a rune is always a
// lexical error rather than silently accepted as an identifier character.
func isNonASCIILetter(ch rune) bool {
	return ch > unicode.MaxASCII && unicode.IsLetter(ch)
}
