package acquire

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	lineEndings = regexp.MustCompile(`\r\n|\r`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes extracted document text: NUL bytes become spaces,
// runs of spaces and tabs collapse to one space, CR/CRLF become LF, runs of
// three or more newlines collapse to two, and the result is trimmed.
// Cleaning already-clean text is a no-op.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\x00", " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = lineEndings.ReplaceAllString(text, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
