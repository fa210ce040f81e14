package output

import (
	"fmt"
	"strings"
)

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, title string) string {
	return strings.Repeat("#", level) + " " + title
}

// FormatKeyValue returns a "key: value" line, bolding the key for markdown.
func FormatKeyValue(key, value string, markdown bool) string {
	if markdown {
		return fmt.Sprintf("**%s:** %s", key, value)
	}
	return fmt.Sprintf("%s: %s", key, value)
}

// FormatList joins items for display, or returns "-" for none.
func FormatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
