package transcripts

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	seasonMarker   = "S"
	episodeMarker  = "E"
	numberEnd      = "-"
	titleSeparator = " - "
	transcriptExt  = ".txt"
)

// FormatError reports a season directory or episode file name that does not
// follow the naming convention.
type FormatError struct {
	Kind   string // "season" or "episode"
	Name   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s name %q: %s", e.Kind, e.Name, e.Reason)
}

// ParseSeasonName extracts the season number from a directory name such as
// "S3". The number is the text between the first "S" marker and the next one
// (or the end of the name).
func ParseSeasonName(name string) (int, error) {
	parts := strings.Split(name, seasonMarker)
	if len(parts) < 2 {
		return 0, &FormatError{Kind: "season", Name: name, Reason: "missing \"S\" marker"}
	}

	number, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &FormatError{Kind: "season", Name: name, Reason: "no number after \"S\" marker"}
	}
	return number, nil
}

// ParseEpisodeName extracts the episode number and title from a file name
// such as "E4-04 - The Stake Out.txt". The number sits between the first "E"
// marker and the following "-"; the title is everything after the first
// " - " with the ".txt" suffix removed, so later " - " stay in the title.
func ParseEpisodeName(name string) (number int, title string, err error) {
	number, err = parseEpisodeNumber(name)
	if err != nil {
		return 0, "", err
	}

	base, ok := strings.CutSuffix(name, transcriptExt)
	if !ok {
		return 0, "", &FormatError{Kind: "episode", Name: name, Reason: "missing \".txt\" extension"}
	}

	_, title, found := strings.Cut(base, titleSeparator)
	if !found {
		return 0, "", &FormatError{Kind: "episode", Name: name, Reason: "missing \" - \" title separator"}
	}

	return number, title, nil
}

func parseEpisodeNumber(name string) (int, error) {
	parts := strings.Split(name, episodeMarker)
	if len(parts) < 2 {
		return 0, &FormatError{Kind: "episode", Name: name, Reason: "missing \"E\" marker"}
	}

	digits, _, _ := strings.Cut(parts[1], numberEnd)
	number, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil {
		return 0, &FormatError{Kind: "episode", Name: name, Reason: "no number between \"E\" marker and \"-\""}
	}
	return number, nil
}

// SeasonDirName is the directory name ParseSeasonName reads back as number.
func SeasonDirName(number int) string {
	return seasonMarker + strconv.Itoa(number)
}

// EpisodeFileName builds a file name ParseEpisodeName reads back as
// (number, SanitizeTitle(title)).
func EpisodeFileName(number int, title string) string {
	return fmt.Sprintf("%s%d%s%02d%s%s%s", episodeMarker, number, numberEnd, number, titleSeparator, SanitizeTitle(title), transcriptExt)
}
