package transcripts

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxTitleBytes = 200

var (
	// Characters invalid in file names on common filesystems
	invalidTitleChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// SanitizeTitle makes an episode title safe to use in a transcript file
// name. Path separators and other characters filesystems reject are dropped,
// whitespace runs become one space, and the result is capped at 200 bytes.
// An empty result becomes "Untitled".
func SanitizeTitle(title string) string {
	title = invalidTitleChars.ReplaceAllString(title, "")
	title = whitespaceRun.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)

	if len(title) > maxTitleBytes {
		cut := maxTitleBytes
		for cut > 0 && !utf8.RuneStart(title[cut]) {
			cut--
		}
		title = strings.TrimSpace(title[:cut])
	}

	if title == "" {
		title = "Untitled"
	}
	return title
}
