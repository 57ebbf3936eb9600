package parser

import "github.com/alexandermeade/jason-rs/internal/token"

// exprOps are the operators recognised at the lowest (expr) precedence
// level: assignment-like and path-like binary forms.
var exprOps = map[token.TokenType]bool{
	token.COLON:    true,
	token.FROM:     true,
	token.AS:       true,
	token.APPEND:   true,
	token.ASSIGN:   true,
	token.TYPEBIND: true,
	token.WALRUS:   true,
	token.DECLTYPE: true,
}

// additionOps sit at level 2.
var additionOps = map[token.TokenType]bool{
	token.PLUS:  true,
	token.MINUS: true,
	token.PIPE:  true,
	token.AMP:   true,
	token.WHILE: true,
}

// termOps sit at level 3, alongside postfix ' and prefix comparisons
// (handled separately in term(), since neither fits the infix shape below)
// and MAPCALL (also handled separately, since it carries its own pregrouped
// parameter-name payload alongside its Left/Right operands).
var termOps = map[token.TokenType]bool{
	token.STAR:    true,
	token.SLASH:   true,
	token.PERCENT: true,
	token.REPEAT:  true,
	token.AT:      true,
	token.PICK:    true,
	token.UPICK:   true,
	token.WITH:    true,
}

// literalLeaf are the token kinds that stand alone as a factor with no
// children: literals, identifiers, type keywords, and the two wildcard
// selectors ('*' and '$') used inside import/export/use argument lists.
var literalLeaf = map[token.TokenType]bool{
	token.INT:      true,
	token.FLOAT:    true,
	token.STRING:   true,
	token.IDENT:    true,
	token.TRUE:     true,
	token.FALSE:    true,
	token.NULL:     true,
	token.STRTYPE:  true,
	token.NUMBER:   true,
	token.INTTYPE:  true,
	token.FLOAT_T:  true,
	token.BOOL:     true,
	token.ANY:      true,
	token.NULLTYPE: true,
	token.STAR:     true,
	token.DOLLAR:   true,
}

// prefixKeywords carry only a right child.
var prefixKeywords = map[token.TokenType]bool{
	token.OUT:     true,
	token.INFO:    true,
	token.INFOT:   true,
	token.INCLUDE: true,
}

// groupedFactors are the lexer-pregrouped token kinds handled by buildGroup.
var groupedFactors = map[token.TokenType]bool{
	token.LIST:        true,
	token.BLOCK:       true,
	token.CALL:        true,
	token.SCRIPTCALL:  true,
	token.TEMPLATEDEF: true,
	token.IMPORTCALL:  true,
	token.EXPORTCALL:  true,
	token.USECALL:     true,
	token.STRCALL:     true,
	token.INTCALL:     true,
	token.FLOATCALL:   true,
	token.MAPCALL:     true,
}

func isComparisonPrefix(tt token.TokenType) bool {
	return tt == token.LT || tt == token.LE || tt == token.GT || tt == token.GE
}
