// Command generate_demo writes a small sample Seasons directory that the
// load command can import.
// Usage: go run ./cmd/generate_demo [-dir path/to/Seasons] [-force]
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/transcripts/internal/config"
	"github.com/mrlokans/transcripts/internal/logging"
	"github.com/mrlokans/transcripts/internal/transcripts"
)

type demoEpisode struct {
	Season int
	Number int
	Title  string
	Lines  []string
}

func demoEpisodes() []demoEpisode {
	return []demoEpisode{
		{
			Season: 1, Number: 1, Title: "The Coffee Shop",
			Lines: []string{
				"[A booth by the window]",
				"MAYA: You ordered the soup again.",
				"OSCAR: It's a reliable soup. I respect a reliable soup.",
				"MAYA: Last week you said it tasted like a radiator.",
				"OSCAR: A reliable radiator.",
				"",
				"[The waiter walks past without stopping]",
			},
		},
		{
			Season: 1, Number: 2, Title: "The Parking Spot",
			Lines: []string{
				"OSCAR: Somebody took my spot.",
				"MAYA: It's a public street.",
				"OSCAR: I have been parking there for six years. There's a precedent: ask anyone.",
				"LEON: I'd like to know who \"anyone\" is.",
			},
		},
		{
			Season: 1, Number: 10, Title: "The Umbrella - Part One",
			Lines: []string{
				"LEON: I borrowed it, I didn't steal it.",
				"MAYA: You borrowed it in March.",
			},
		},
		{
			Season: 2, Number: 1, Title: "The Lease",
			Lines: []string{
				"[Oscar's apartment]",
				"OSCAR: The landlord wants me to sign for two more years.",
				"LEON: Two years is nothing.",
				"OSCAR: Two years is a commitment, Leon.",
			},
		},
	}
}

func main() {
	dir := flag.String("dir", config.DefaultSeasonsDir, "directory to write the season folders into")
	force := flag.Bool("force", false, "remove the directory first if it exists")
	flag.Parse()

	logger := logging.New(config.Logging{Level: "info"}, os.Stdout)

	if *force {
		if err := os.RemoveAll(*dir); err != nil {
			logger.Fatal().Err(err).Str("dir", *dir).Msg("Failed to remove existing directory")
		}
	}

	for _, ep := range demoEpisodes() {
		seasonDir := filepath.Join(*dir, transcripts.SeasonDirName(ep.Season))
		if err := os.MkdirAll(seasonDir, 0o755); err != nil {
			logger.Fatal().Err(err).Str("dir", seasonDir).Msg("Failed to create season directory")
		}

		path := filepath.Join(seasonDir, transcripts.EpisodeFileName(ep.Number, ep.Title))
		content := strings.Join(ep.Lines, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("Failed to write episode")
		}
		logger.Info().Str("path", path).Int("lines", len(ep.Lines)).Msg("Wrote episode")
	}

	logger.Info().Str("dir", *dir).Msg("Demo transcripts generated")
}
