package transcripts

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes invalid characters",
			input:    `The<>:"/\|?*Pen`,
			expected: "ThePen",
		},
		{
			name:     "replaces newlines and tabs with spaces",
			input:    "The\nChinese\tRestaurant",
			expected: "The Chinese Restaurant",
		},
		{
			name:     "collapses multiple spaces",
			input:    "The   Parking    Garage",
			expected: "The Parking Garage",
		},
		{
			name:     "keeps title separators",
			input:    "The Opposite - Director's Cut",
			expected: "The Opposite - Director's Cut",
		},
		{
			name:     "trims whitespace",
			input:    "  Pilot  ",
			expected: "Pilot",
		},
		{
			name:     "returns Untitled for empty",
			input:    "",
			expected: "Untitled",
		},
		{
			name:     "returns Untitled for only special chars",
			input:    "<>:?*",
			expected: "Untitled",
		},
		{
			name:     "truncates long titles",
			input:    strings.Repeat("a", 250),
			expected: strings.Repeat("a", 200),
		},
		{
			name:     "handles unicode",
			input:    "Épisode spécial",
			expected: "Épisode spécial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTitle(tt.input))
		})
	}
}

func TestSanitizeTitle_TruncatesOnRuneBoundary(t *testing.T) {
	result := SanitizeTitle(strings.Repeat("é", 150))

	assert.True(t, utf8.ValidString(result))
	assert.LessOrEqual(t, len(result), 200)
}

func TestEpisodeFileName_SanitizesTitle(t *testing.T) {
	name := EpisodeFileName(4, "The Pitch: Part 1/2")

	number, title, err := ParseEpisodeName(name)
	assert.NoError(t, err)
	assert.Equal(t, 4, number)
	assert.Equal(t, "The Pitch Part 12", title)
}
