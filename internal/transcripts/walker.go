package transcripts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Season is a season directory found under the transcripts root.
type Season struct {
	Number int
	Path   string
}

// Episode is an episode transcript file found in a season directory.
type Episode struct {
	Number int
	Title  string
	Path   string
}

// ListSeasons returns the season directories under root ordered by season
// number. Hidden entries are ignored. Every other entry must be a directory
// (symlinks are followed) carrying a season number.
func ListSeasons(root string) ([]Season, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons in %s: %w", root, err)
	}

	var seasons []Season
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}

		path := filepath.Join(root, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			return nil, &FormatError{Kind: "season", Name: entry.Name(), Reason: "not a directory"}
		}

		number, err := ParseSeasonName(entry.Name())
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, Season{Number: number, Path: path})
	}

	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].Number < seasons[j].Number
	})
	return seasons, nil
}

// ListEpisodes returns the transcript files of a season ordered by episode
// number. Hidden entries are ignored. Every other entry must be a regular
// file (symlinks are followed) named like an episode.
func ListEpisodes(season Season) ([]Episode, error) {
	entries, err := os.ReadDir(season.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes of season %d: %w", season.Number, err)
	}

	var episodes []Episode
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}

		path := filepath.Join(season.Path, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return nil, &FormatError{Kind: "episode", Name: entry.Name(), Reason: "not a regular file"}
		}

		number, title, err := ParseEpisodeName(entry.Name())
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, Episode{Number: number, Title: title, Path: path})
	}

	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].Number < episodes[j].Number
	})
	return episodes, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
