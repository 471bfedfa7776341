// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import "strings"

// ConvertHeadings rewrites lines starting with one to four hash markers into
// the matching sectioning command from cmds. Every other line passes through
// unchanged; the output has exactly as many lines as the input.
func ConvertHeadings(text string, cmds Sectioning) string {
	out, _ := rewriteHeadings(text, cmds)
	return out
}

func rewriteHeadings(text string, cmds Sectioning) (string, int) {
	lines := strings.Split(text, "\n")
	rewritten := 0
	for i, line := range lines {
		if out, ok := rewriteHeading(line, cmds); ok {
			lines[i] = out
			rewritten++
		}
	}
	return strings.Join(lines, "\n"), rewritten
}

// rewriteHeading applies the heading ladder to one line. The prefixes are
// tested deepest first since "#### " also starts with "# ".
func rewriteHeading(line string, cmds Sectioning) (string, bool) {
	if hasSectioning(line, cmds) {
		return line, false
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "#### "):
		return command(cmds[3], trimmed[5:]), true
	case strings.HasPrefix(trimmed, "### "):
		return command(cmds[2], trimmed[4:]), true
	case strings.HasPrefix(trimmed, "## "):
		return command(cmds[1], trimmed[3:]), true
	case strings.HasPrefix(trimmed, "# ") && !strings.HasPrefix(trimmed, "## "):
		heading := strings.TrimSpace(trimmed[2:])
		// "# # x" and similar are left alone.
		if heading == "" || strings.HasPrefix(heading, "#") {
			return line, false
		}
		return command(cmds[0], heading), true
	}
	return line, false
}

// hasSectioning reports whether line already holds one of the commands or
// a command of any preset, so a file converted in one style is left alone
// when run again in another.
func hasSectioning(line string, cmds Sectioning) bool {
	for _, set := range []Sectioning{cmds, BookSectioning, ArticleSectioning} {
		for _, c := range set {
			if strings.Contains(line, `\`+c+`{`) {
				return true
			}
		}
	}
	return false
}

func command(name, heading string) string {
	return `\` + name + `{` + strings.TrimSpace(heading) + `}`
}
