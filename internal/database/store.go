package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/transcripts/internal/entities"
	"github.com/mrlokans/transcripts/internal/services"
)

var (
	_ services.TranscriptWriter = (*Database)(nil)
	_ services.TranscriptReader = (*Database)(nil)
)

// Transaction runs fn inside a database transaction. Nested calls use
// savepoints.
func (d *Database) Transaction(ctx context.Context, fn func(tx services.TranscriptWriter) error) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Database{DB: tx, Driver: d.Driver})
	})
}

// InsertSeason creates a season; an existing number is a constraint error.
func (d *Database) InsertSeason(ctx context.Context, number int) (uint, error) {
	season := entities.Season{Number: number}
	if err := d.DB.WithContext(ctx).Create(&season).Error; err != nil {
		return 0, fmt.Errorf("failed to insert season %d: %w", number, err)
	}
	return season.ID, nil
}

// UpsertSeason creates the season if absent and returns its id either way.
func (d *Database) UpsertSeason(ctx context.Context, number int) (uint, error) {
	db := d.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "number"}},
		DoNothing: true,
	}).Create(&entities.Season{Number: number}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert season %d: %w", number, err)
	}

	var season entities.Season
	if err := db.Where("number = ?", number).First(&season).Error; err != nil {
		return 0, fmt.Errorf("failed to look up season %d: %w", number, notFound(err))
	}
	return season.ID, nil
}

// InsertEpisode creates an episode of a season; an existing (season, number)
// pair is a constraint error.
func (d *Database) InsertEpisode(ctx context.Context, seasonID uint, number int, title string) (uint, error) {
	episode := entities.Episode{SeasonID: seasonID, Number: number, Title: title}
	if err := d.DB.WithContext(ctx).Omit(clause.Associations).Create(&episode).Error; err != nil {
		return 0, fmt.Errorf("failed to insert episode %d: %w", number, err)
	}
	return episode.ID, nil
}

// UpsertEpisode creates the episode if absent, otherwise refreshes its title,
// and returns its id.
func (d *Database) UpsertEpisode(ctx context.Context, seasonID uint, number int, title string) (uint, error) {
	db := d.DB.WithContext(ctx)
	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "season_id"}, {Name: "number"}},
		DoUpdates: clause.AssignmentColumns([]string{"title"}),
	}).Create(&entities.Episode{SeasonID: seasonID, Number: number, Title: title}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert episode %d: %w", number, err)
	}

	var episode entities.Episode
	if err := db.Where("season_id = ? AND number = ?", seasonID, number).First(&episode).Error; err != nil {
		return 0, fmt.Errorf("failed to look up episode %d: %w", number, notFound(err))
	}
	return episode.ID, nil
}

// DeleteEpisodeLines removes every line of an episode so it can be reloaded.
func (d *Database) DeleteEpisodeLines(ctx context.Context, episodeID uint) error {
	err := d.DB.WithContext(ctx).Where("episode_id = ?", episodeID).Delete(&entities.Line{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete lines of episode %d: %w", episodeID, err)
	}
	return nil
}

// GetOrCreateSpeaker inserts the speaker unless the name already exists and
// returns the id stored for that name.
func (d *Database) GetOrCreateSpeaker(ctx context.Context, name string) (uint, error) {
	db := d.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&entities.Speaker{Name: name}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert speaker %q: %w", name, err)
	}

	var speaker entities.Speaker
	if err := db.Where("name = ?", name).First(&speaker).Error; err != nil {
		return 0, fmt.Errorf("failed to look up speaker %q: %w", name, notFound(err))
	}
	return speaker.ID, nil
}

func (d *Database) InsertLine(ctx context.Context, line *entities.Line) error {
	if err := d.DB.WithContext(ctx).Omit(clause.Associations).Create(line).Error; err != nil {
		return fmt.Errorf("failed to insert line %d: %w", line.LineNumber, err)
	}
	return nil
}
