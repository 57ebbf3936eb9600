package errors

import (
	"fmt"
	"strings"
)

// Format renders the user-visible error text: one header line with kind,
// file, row and message, then "row | reconstructed-source-line" with a
// caret row underneath. When Name is HighlightAll the whole line is
// underlined; otherwise the carets span the first occurrence of Name found
// on that line. ANSI colour is added only when color is true.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s in %s:%d:%d: %s\n", e.Kind, displayFile(e.File), e.Pos.Line, e.Pos.Column, e.Message)

	for i := len(e.Context) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "  ...%s\n", e.Context[i])
	}

	line := sourceLine(e.Source, e.Pos.Line)
	if line == "" {
		return sb.String()
	}

	gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(gutter)
	sb.WriteString(line)
	sb.WriteString("\n")

	start, width := highlightSpan(line, e.Pos.Column, e.Name)
	sb.WriteString(strings.Repeat(" ", len(gutter)+start))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString(strings.Repeat("^", width))
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func displayFile(file string) string {
	if file == "" {
		return "<source>"
	}
	return file
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// highlightSpan returns the zero-based start column and width of the caret
// run. HighlightAll underlines the full line (minimum width 1 for an empty
// line); otherwise it underlines the first occurrence of name in the line.
// If name does not occur, it places a single caret at column col-1, or
// underlines the whole line when col-1 is outside the line.
func highlightSpan(line string, col int, name string) (start, width int) {
	if name == "" || name == HighlightAll {
		if len(line) == 0 {
			return 0, 1
		}
		return 0, len([]rune(line))
	}
	runes := []rune(line)
	needle := []rune(name)
	for i := 0; i+len(needle) <= len(runes); i++ {
		if string(runes[i:i+len(needle)]) == name {
			return i, len(needle)
		}
	}
	if col-1 >= 0 && col-1 < len(runes) {
		return col - 1, 1
	}
	return 0, len(runes)
}
