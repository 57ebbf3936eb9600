package token

import "strings"

// symbols holds the canonical surface text for token kinds whose literal
// text is fixed (operators, delimiters, keywords). Literal-bearing kinds
// (IDENT, INT, FLOAT, STRING, COMPOSITE_STRING) and grouped kinds are
// reconstructed from their payload instead, see Print.
var symbols = map[TokenType]string{
	NULL: "null", TRUE: "true", FALSE: "false", FROM: "from", AS: "as",
	STRTYPE: "String", NUMBER: "Number", INTTYPE: "Int", FLOAT_T: "Float",
	BOOL: "Bool", ANY: "Any", NULLTYPE: "Null", EMBED: "embed",
	RETURN: "return", OUT: "out", AT: "at", UPICK: "upick", PICK: "pick",
	REPEAT: "repeat", APPEND: "append", WITH: "with", WHILE: "while",
	INFO: "info", INFOT: "infoT", INCLUDE: "include",

	LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	LBRACE: "{", RBRACE: "}", COMMA: ",", DOT: ".",

	ASSIGN: "=", WALRUS: ":=", DECLTYPE: "::=", TYPEBIND: "::", COLON: ":",
	PIPE: "|", AMP: "&", QUOTE: "'", PLUS: "+", MINUS: "-", STAR: "*",
	SLASH: "/", PERCENT: "%", LT: "<", LE: "<=", GT: ">", GE: ">=",
	DOLLAR: "$", BANG: "!",
}

// Print reconstructs the source text a token represents. For literal and
// fixed-text tokens this is exact; for lexer-grouped tokens (LIST, BLOCK,
// any CALL variant, TEMPLATEDEF, COMPOSITE_STRING) it rebuilds a
// canonically-formatted equivalent — the reconstruction used for error
// diagnostics and by the `jason fmt` command, not a byte-exact echo of the
// original whitespace.
func Print(t Token) string {
	switch t.Type {
	case IDENT, INT, FLOAT:
		return t.Literal
	case STRING:
		return `"` + t.Literal + `"`
	case COMPOSITE_STRING:
		return printComposite(t)
	case LIST:
		return "[" + printGroups(t.Groups) + "]"
	case BLOCK:
		return "{" + printGroups(t.Groups) + "}"
	case CALL, IMPORTCALL, EXPORTCALL, USECALL, STRCALL, INTCALL, FLOATCALL, MAPCALL:
		return t.Literal + "(" + printGroups(t.Groups) + ")"
	case SCRIPTCALL:
		return t.Literal + "(" + printGroups(t.Groups) + ")!"
	case TEMPLATEDEF:
		return t.Literal + "(" + printGroups(t.Groups) + ") {" + printGroups(t.BodyGroups) + "}"
	default:
		if sym, ok := symbols[t.Type]; ok {
			return sym
		}
		return t.Literal
	}
}

// printGroups renders comma-separated token runs by printing each run's
// tokens space-joined, then joining runs with ", ".
func printGroups(groups [][]Token) string {
	parts := make([]string, 0, len(groups))
	for _, run := range groups {
		parts = append(parts, printRun(run))
	}
	return strings.Join(parts, ", ")
}

func printRun(run []Token) string {
	parts := make([]string, 0, len(run))
	for _, tok := range run {
		parts = append(parts, Print(tok))
	}
	return strings.Join(parts, " ")
}

func printComposite(t Token) string {
	var sb strings.Builder
	sb.WriteString(`$"`)
	for i, frag := range t.Fragments {
		sb.WriteString(frag)
		if i < len(t.Exprs) {
			sb.WriteString("{")
			sb.WriteString(printRun(t.Exprs[i]))
			sb.WriteString("}")
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}
