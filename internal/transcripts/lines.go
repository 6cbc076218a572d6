package transcripts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const speakerSeparator = ":"

// Line is one parsed transcript line.
type Line struct {
	Number  int    // 1-based position in the file, blank lines included
	Speaker string // empty when the line has no speaker prefix
	Content string
}

// HasSpeaker reports whether the line is attributed to a speaker.
func (l Line) HasSpeaker() bool {
	return l.Speaker != ""
}

// ParseLine splits a raw transcript line on its first colon. The trimmed left
// side is the speaker and the trimmed right side the content; any further
// colons belong to the content. Without a colon the whole trimmed line is
// content and the speaker is empty.
func ParseLine(raw string) (speaker, content string) {
	before, after, found := strings.Cut(raw, speakerSeparator)
	if !found {
		return "", strings.TrimSpace(raw)
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// ReadLines parses r line by line and calls fn for each line in file order.
// Lines may be of any length; a trailing "\r" is dropped and a final line
// without a newline still counts. Reading stops at the first error returned
// by fn.
func ReadLines(r io.Reader, fn func(Line) error) error {
	reader := bufio.NewReader(r)

	number := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading transcript at line %d: %w", number+1, err)
		}
		if raw == "" && err != nil {
			return nil
		}

		number++
		raw = strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		speaker, content := ParseLine(raw)
		if fnErr := fn(Line{Number: number, Speaker: speaker, Content: content}); fnErr != nil {
			return fnErr
		}

		if err != nil {
			return nil
		}
	}
}
