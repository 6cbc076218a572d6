package services

import (
	"context"

	"github.com/mrlokans/transcripts/internal/entities"
)

// TranscriptWriter is the storage capability the loader needs: insert rows,
// hand back generated identifiers, and commit groups of writes.
type TranscriptWriter interface {
	// Transaction runs fn against a transactional view of the store. The
	// writes are committed when fn returns nil and rolled back otherwise.
	Transaction(ctx context.Context, fn func(tx TranscriptWriter) error) error

	InsertSeason(ctx context.Context, number int) (uint, error)
	UpsertSeason(ctx context.Context, number int) (uint, error)
	InsertEpisode(ctx context.Context, seasonID uint, number int, title string) (uint, error)
	UpsertEpisode(ctx context.Context, seasonID uint, number int, title string) (uint, error)
	DeleteEpisodeLines(ctx context.Context, episodeID uint) error
	GetOrCreateSpeaker(ctx context.Context, name string) (uint, error)
	InsertLine(ctx context.Context, line *entities.Line) error
}

// TranscriptReader provides read-only access to loaded transcripts.
type TranscriptReader interface {
	GetSeasons(ctx context.Context) ([]entities.Season, error)
	GetSeasonByNumber(ctx context.Context, number int) (*entities.Season, error)
	GetEpisodesForSeason(ctx context.Context, seasonID uint) ([]entities.Episode, error)
	GetEpisode(ctx context.Context, seasonNumber, episodeNumber int) (*entities.Episode, error)
	GetLinesForEpisode(ctx context.Context, episodeID uint) ([]entities.Line, error)
	GetSpeakers(ctx context.Context) ([]entities.Speaker, error)
	GetRandomLine(ctx context.Context, filter LineFilter) (*entities.Line, error)
	GetStats(ctx context.Context) (Stats, error)
}

// LineFilter narrows a random line lookup. Zero values mean no filter.
type LineFilter struct {
	SeasonNumber  int
	EpisodeNumber int
	Speaker       string
}

// Stats holds row counts per table.
type Stats struct {
	Seasons  int64 `json:"seasons"`
	Episodes int64 `json:"episodes"`
	Speakers int64 `json:"speakers"`
	Lines    int64 `json:"lines"`
}

// LoadResult contains the outcome of a load run.
type LoadResult struct {
	SeasonsProcessed  int
	EpisodesProcessed int
	LinesProcessed    int
	SpeakersSeen      int
}
