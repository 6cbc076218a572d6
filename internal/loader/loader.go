// Package loader walks a transcripts directory and writes seasons, episodes,
// speakers and lines through a services.TranscriptWriter.
//
// The flow is strictly sequential:
//
//	season dirs → episode files → transcript lines → TranscriptWriter
//
// Each season row is committed before its episodes are read, and each
// episode is committed together with all of its lines. Any error aborts the
// whole run.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mrlokans/transcripts/internal/entities"
	"github.com/mrlokans/transcripts/internal/services"
	"github.com/mrlokans/transcripts/internal/transcripts"
)

type Options struct {
	// Upsert reuses existing seasons and episodes and replaces an episode's
	// lines, so a populated database can be loaded again.
	Upsert bool
	// DryRun parses everything and writes nothing.
	DryRun bool
}

type Loader struct {
	store  services.TranscriptWriter
	logger zerolog.Logger
	opts   Options
}

// New creates a loader. store may be nil when opts.DryRun is set.
func New(store services.TranscriptWriter, logger zerolog.Logger, opts Options) *Loader {
	return &Loader{
		store:  store,
		logger: logger,
		opts:   opts,
	}
}

// Load processes every season under root in numeric order.
func (l *Loader) Load(ctx context.Context, root string) (services.LoadResult, error) {
	var result services.LoadResult
	if l.store == nil && !l.opts.DryRun {
		return result, fmt.Errorf("loader has no store")
	}

	seasons, err := transcripts.ListSeasons(root)
	if err != nil {
		return result, err
	}
	l.logger.Info().Str("root", root).Int("seasons", len(seasons)).Msg("Found seasons")

	speakers := make(map[string]struct{})
	for _, season := range seasons {
		if err := l.loadSeason(ctx, season, speakers, &result); err != nil {
			return result, err
		}
	}

	result.SpeakersSeen = len(speakers)
	return result, nil
}

func (l *Loader) loadSeason(ctx context.Context, season transcripts.Season, speakers map[string]struct{}, result *services.LoadResult) error {
	episodes, err := transcripts.ListEpisodes(season)
	if err != nil {
		return err
	}

	l.logger.Info().Int("season", season.Number).Int("episodes", len(episodes)).Msg("Processing season")

	var seasonID uint
	if !l.opts.DryRun {
		if l.opts.Upsert {
			seasonID, err = l.store.UpsertSeason(ctx, season.Number)
		} else {
			seasonID, err = l.store.InsertSeason(ctx, season.Number)
		}
		if err != nil {
			return err
		}
	}

	for _, episode := range episodes {
		if err := l.loadEpisode(ctx, seasonID, season.Number, episode, speakers, result); err != nil {
			return fmt.Errorf("season %d episode %d (%s): %w", season.Number, episode.Number, episode.Title, err)
		}
	}

	result.SeasonsProcessed++
	return nil
}

func (l *Loader) loadEpisode(
	ctx context.Context,
	seasonID uint,
	seasonNumber int,
	episode transcripts.Episode,
	speakers map[string]struct{},
	result *services.LoadResult,
) error {
	file, err := os.Open(episode.Path)
	if err != nil {
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer file.Close()

	l.logger.Info().
		Int("season", seasonNumber).
		Int("episode", episode.Number).
		Str("title", episode.Title).
		Msg("Processing episode")

	var lines int
	load := func(tx services.TranscriptWriter) error {
		episodeID, err := l.writeEpisode(ctx, tx, seasonID, episode)
		if err != nil {
			return err
		}

		lines = 0
		return transcripts.ReadLines(file, func(line transcripts.Line) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			row := entities.Line{
				SeasonID:   seasonID,
				EpisodeID:  episodeID,
				LineNumber: line.Number,
				Content:    line.Content,
			}
			if line.HasSpeaker() {
				speakers[line.Speaker] = struct{}{}
				if tx != nil {
					speakerID, err := tx.GetOrCreateSpeaker(ctx, line.Speaker)
					if err != nil {
						return err
					}
					row.SpeakerID = &speakerID
				}
			}

			if tx != nil {
				if err := tx.InsertLine(ctx, &row); err != nil {
					return err
				}
			}

			lines++
			l.logger.Info().
				Int("season", seasonNumber).
				Int("episode", episode.Number).
				Int("line", line.Number).
				Str("speaker", line.Speaker).
				Str("content", line.Content).
				Msg("Line")
			return nil
		})
	}

	if l.opts.DryRun {
		err = load(nil)
	} else {
		err = l.store.Transaction(ctx, load)
	}
	if err != nil {
		return err
	}

	result.EpisodesProcessed++
	result.LinesProcessed += lines
	return nil
}

func (l *Loader) writeEpisode(ctx context.Context, tx services.TranscriptWriter, seasonID uint, episode transcripts.Episode) (uint, error) {
	if tx == nil {
		return 0, nil
	}

	if !l.opts.Upsert {
		return tx.InsertEpisode(ctx, seasonID, episode.Number, episode.Title)
	}

	episodeID, err := tx.UpsertEpisode(ctx, seasonID, episode.Number, episode.Title)
	if err != nil {
		return 0, err
	}
	if err := tx.DeleteEpisodeLines(ctx, episodeID); err != nil {
		return 0, err
	}
	return episodeID, nil
}
