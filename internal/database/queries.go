package database

import (
	"context"

	"github.com/mrlokans/transcripts/internal/entities"
	"github.com/mrlokans/transcripts/internal/services"
)

func (d *Database) GetSeasons(ctx context.Context) ([]entities.Season, error) {
	var seasons []entities.Season
	err := d.DB.WithContext(ctx).Order("number ASC").Find(&seasons).Error
	return seasons, err
}

func (d *Database) GetSeasonByNumber(ctx context.Context, number int) (*entities.Season, error) {
	var season entities.Season
	if err := d.DB.WithContext(ctx).Where("number = ?", number).First(&season).Error; err != nil {
		return nil, notFound(err)
	}
	return &season, nil
}

func (d *Database) GetEpisodesForSeason(ctx context.Context, seasonID uint) ([]entities.Episode, error) {
	var episodes []entities.Episode
	err := d.DB.WithContext(ctx).Where("season_id = ?", seasonID).Order("number ASC").Find(&episodes).Error
	return episodes, err
}

// GetEpisode finds an episode by season and episode number.
func (d *Database) GetEpisode(ctx context.Context, seasonNumber, episodeNumber int) (*entities.Episode, error) {
	season, err := d.GetSeasonByNumber(ctx, seasonNumber)
	if err != nil {
		return nil, err
	}

	var episode entities.Episode
	err = d.DB.WithContext(ctx).
		Where("season_id = ? AND number = ?", season.ID, episodeNumber).
		First(&episode).Error
	if err != nil {
		return nil, notFound(err)
	}
	episode.Season = *season
	return &episode, nil
}

// GetLinesForEpisode returns an episode's lines in transcript order with
// their speakers.
func (d *Database) GetLinesForEpisode(ctx context.Context, episodeID uint) ([]entities.Line, error) {
	var lines []entities.Line
	err := d.DB.WithContext(ctx).Preload("Speaker").
		Where("episode_id = ?", episodeID).
		Order("line_number ASC").
		Find(&lines).Error
	return lines, err
}

func (d *Database) GetSpeakers(ctx context.Context) ([]entities.Speaker, error) {
	var speakers []entities.Speaker
	err := d.DB.WithContext(ctx).Order("name ASC").Find(&speakers).Error
	return speakers, err
}

// GetRandomLine picks one non-empty line matching the filter, with its
// season, episode and speaker loaded.
func (d *Database) GetRandomLine(ctx context.Context, filter services.LineFilter) (*entities.Line, error) {
	db := d.DB.WithContext(ctx)
	query := db.Preload("Season").Preload("Episode").Preload("Speaker").Where("content <> ?", "")

	if filter.SeasonNumber > 0 {
		query = query.Where("season_id IN (?)",
			db.Model(&entities.Season{}).Select("id").Where("number = ?", filter.SeasonNumber))
	}
	if filter.EpisodeNumber > 0 {
		query = query.Where("episode_id IN (?)",
			db.Model(&entities.Episode{}).Select("id").Where("number = ?", filter.EpisodeNumber))
	}
	if filter.Speaker != "" {
		query = query.Where("speaker_id IN (?)",
			db.Model(&entities.Speaker{}).Select("id").Where("name = ?", filter.Speaker))
	}

	var line entities.Line
	// RANDOM() is understood by both SQLite and PostgreSQL.
	if err := query.Order("RANDOM()").Take(&line).Error; err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

func (d *Database) GetStats(ctx context.Context) (services.Stats, error) {
	var stats services.Stats
	db := d.DB.WithContext(ctx)

	counts := []struct {
		model any
		dest  *int64
	}{
		{&entities.Season{}, &stats.Seasons},
		{&entities.Episode{}, &stats.Episodes},
		{&entities.Speaker{}, &stats.Speakers},
		{&entities.Line{}, &stats.Lines},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return services.Stats{}, err
		}
	}
	return stats, nil
}
