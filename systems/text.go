package systems

import (
	"strings"
	"unicode/utf8"
)

// wrapText splits s into lines of at most width characters, breaking on
// spaces. With maxLines > 0 the result is clamped and the last kept line
// ends in an ellipsis.
func wrapText(s string, width, maxLines int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if width > 3 && len(last)+3 > width {
			last = last[:width-3]
		}
		lines[maxLines-1] = strings.TrimRight(string(last), " .,") + "..."
	}
	return lines
}
