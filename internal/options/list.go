package options

import (
	"fmt"
	"strings"
)

const wrapWidth = 72

// ListOptions renders every registered option with its kind, default and
// description. The output is stable across calls.
func ListOptions() string {
	var sb strings.Builder
	for i, d := range registry {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "option %q\n", d.Name)
		fmt.Fprintf(&sb, "  kind:    %s\n", d.Kind)
		fmt.Fprintf(&sb, "  default: %q\n", d.Default.String())
		if len(d.Legal) > 0 {
			fmt.Fprintf(&sb, "  values:  %s\n", strings.Join(d.Legal, ", "))
		}
		for _, line := range wrap(d.Description, wrapWidth-2) {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
