// File path: internal/markdown/parser.go
package markdown

import (
	"regexp"
	"strings"
)

// reportFooter is the attribution paragraph appended after every parse.
const reportFooter = "_Generated by the Shift Handover Intelligence service_"

var numberedRe = regexp.MustCompile(`^\d+\.\s`)

// Parse converts markdown-like text into an ordered block sequence. It is a
// single forward pass over the input lines with one-line lookahead for run
// grouping, never fails on malformed input, and yields the same sequence for
// the same text. Unterminated fences and lists close at end of input.
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines)+2)
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "":
			blocks = append(blocks, Spacer{})
			i++
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Heading{Level: 3, Text: StyleText(strings.TrimSpace(line[4:]))})
			i++
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Heading{Level: 2, Text: StyleText(strings.TrimSpace(line[3:]))})
			i++
		case strings.HasPrefix(line, "# "):
			// Titles get extra breathing room below them.
			blocks = append(blocks, Heading{Level: 1, Text: StyleText(strings.TrimSpace(line[2:]))}, Spacer{})
			i++
		case isBulletLine(line):
			var items []StyledText
			for i < len(lines) {
				current := strings.TrimSpace(lines[i])
				if !isBulletLine(current) {
					break
				}
				items = append(items, StyleText(strings.TrimSpace(current[2:])))
				i++
			}
			blocks = append(blocks, BulletList{Items: items})
		case numberedRe.MatchString(line):
			var items []StyledText
			for i < len(lines) {
				current := strings.TrimSpace(lines[i])
				loc := numberedRe.FindStringIndex(current)
				if loc == nil {
					break
				}
				items = append(items, StyleText(strings.TrimSpace(current[loc[1]:])))
				i++
			}
			blocks = append(blocks, NumberedList{Items: items})
		case strings.HasPrefix(line, "```"):
			i++
			var code []string
			for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
				code = append(code, lines[i])
				i++
			}
			if i < len(lines) {
				i++ // closing fence
			}
			blocks = append(blocks, CodeBlock{Text: strings.Join(code, "\n")})
		default:
			blocks = append(blocks, Paragraph{Text: StyleText(line)})
			i++
		}
	}
	blocks = append(blocks, Spacer{}, Paragraph{Text: StyleText(reportFooter)})
	return blocks
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ")
}
