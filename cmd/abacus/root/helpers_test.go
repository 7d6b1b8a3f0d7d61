package root

import "strings"

// cutEcho splits stdout into the text part and the structured document that
// follows the "<FORMAT> output:" header.
func cutEcho(stdout, format string) (text, doc string, ok bool) {
	return strings.Cut(stdout, "\n"+format+" output:\n")
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
