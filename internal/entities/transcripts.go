package entities

// Season is one season directory of transcripts.
type Season struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	Number int  `gorm:"uniqueIndex;not null" json:"number"`
}

type Episode struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	SeasonID uint   `gorm:"uniqueIndex:idx_episodes_season_number;not null" json:"season_id"`
	Number   int    `gorm:"uniqueIndex:idx_episodes_season_number;not null" json:"number"`
	Title    string `gorm:"size:512;not null" json:"title"`
	Season   Season `gorm:"foreignKey:SeasonID" json:"-"`
}

// Speaker names are global across the whole load, not scoped to an episode.
type Speaker struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}

type Line struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	SeasonID   uint     `gorm:"index;not null" json:"season_id"`
	EpisodeID  uint     `gorm:"uniqueIndex:idx_lines_episode_line;not null" json:"episode_id"`
	SpeakerID  *uint    `gorm:"index" json:"speaker_id"` // nil when the line has no speaker prefix
	LineNumber int      `gorm:"uniqueIndex:idx_lines_episode_line;not null" json:"line_number"`
	Content    string   `gorm:"type:text;not null" json:"content"`
	Season     Season   `gorm:"foreignKey:SeasonID" json:"-"`
	Episode    Episode  `gorm:"foreignKey:EpisodeID" json:"-"`
	Speaker    *Speaker `gorm:"foreignKey:SpeakerID" json:"speaker,omitempty"`
}

func (Season) TableName() string {
	return "seasons"
}

func (Episode) TableName() string {
	return "episodes"
}

func (Speaker) TableName() string {
	return "speakers"
}

func (Line) TableName() string {
	return "lines"
}

// All returns every transcript model in migration order.
func All() []any {
	return []any{
		&Season{},
		&Episode{},
		&Speaker{},
		&Line{},
	}
}
