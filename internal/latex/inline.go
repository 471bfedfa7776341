// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

var (
	// boldPattern matches **text** with no asterisk inside.
	boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// italicPattern matches *text*. Neighbouring asterisks are rejected in
	// convertItalic since RE2 has no lookaround.
	italicPattern = regexp.MustCompile(`\*[^*]+\*`)

	// bulletPattern matches a hyphen bullet prefix on any line.
	bulletPattern = regexp.MustCompile(`(?m)^[ \t]*-[ \t]+`)

	// rulePattern matches a line holding only three or more hyphens. A
	// CRLF line's \r is captured so it survives the removal.
	rulePattern = regexp.MustCompile(`(?m)^[ \t]*---+[ \t]*(\r?)$`)
)

// ConvertInline applies the emphasis, bullet, and rule substitutions to text,
// in that order. Bold must precede italic: *x* is a substring of **x**.
func ConvertInline(text string) string {
	text = convertBold(text)
	text = convertItalic(text)
	text = convertBullets(text)
	text = removeRules(text)
	return text
}

// convertBold transforms **text** to \textbf{text}.
func convertBold(text string) string {
	return boldPattern.ReplaceAllString(text, `\textbf{${1}}`)
}

// convertItalic transforms *text* to \textit{text} unless either marker
// touches another asterisk.
func convertItalic(text string) string {
	var b strings.Builder
	copied, pos := 0, 0
	for pos < len(text) {
		loc := italicPattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if (start > 0 && text[start-1] == '*') || (end < len(text) && text[end] == '*') {
			pos = start + 1
			continue
		}
		b.WriteString(text[copied:start])
		b.WriteString(`\textit{`)
		b.WriteString(text[start+1 : end-1])
		b.WriteByte('}')
		copied, pos = end, end
	}
	if copied == 0 {
		return text
	}
	b.WriteString(text[copied:])
	return b.String()
}

// convertBullets replaces "- " prefixes, and any indentation before them,
// with \item.
func convertBullets(text string) string {
	return bulletPattern.ReplaceAllLiteralString(text, `\item `)
}

// removeRules blanks out --- horizontal rule lines.
func removeRules(text string) string {
	return rulePattern.ReplaceAllString(text, "${1}")
}
