package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/transcripts/internal/database"
	"github.com/mrlokans/transcripts/internal/entities"
	"github.com/mrlokans/transcripts/internal/services"
)

// LineResponse is a transcript line as served by the API. Speaker is null
// for lines without a speaker prefix.
type LineResponse struct {
	Number  int     `json:"number"`
	Speaker *string `json:"speaker"`
	Content string  `json:"content"`
}

type TranscriptResponse struct {
	Season  int            `json:"season"`
	Episode int            `json:"episode"`
	Title   string         `json:"title"`
	Lines   []LineResponse `json:"lines"`
	Count   int            `json:"count"`
}

type RandomLineResponse struct {
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Title   string `json:"title"`
	LineResponse
}

type TranscriptsController struct {
	reader services.TranscriptReader
	logger zerolog.Logger
}

func NewTranscriptsController(reader services.TranscriptReader, logger zerolog.Logger) *TranscriptsController {
	return &TranscriptsController{
		reader: reader,
		logger: logger,
	}
}

func toLineResponse(line entities.Line) LineResponse {
	resp := LineResponse{Number: line.LineNumber, Content: line.Content}
	if line.Speaker != nil {
		name := line.Speaker.Name
		resp.Speaker = &name
	}
	return resp
}

func (controller *TranscriptsController) GetSeasons(c *gin.Context) {
	seasons, err := controller.reader.GetSeasons(c.Request.Context())
	if err != nil {
		respondInternalError(c, controller.logger, err, "list seasons")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"seasons": seasons, "count": len(seasons)})
}

func (controller *TranscriptsController) GetEpisodes(c *gin.Context) {
	number, ok := parseNumberParam(c, "number")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	season, err := controller.reader.GetSeasonByNumber(ctx, number)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "season")
		return
	}
	if err != nil {
		respondInternalError(c, controller.logger, err, "get season")
		return
	}

	episodes, err := controller.reader.GetEpisodesForSeason(ctx, season.ID)
	if err != nil {
		respondInternalError(c, controller.logger, err, "list episodes")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"season": season.Number, "episodes": episodes, "count": len(episodes)})
}

func (controller *TranscriptsController) GetTranscript(c *gin.Context) {
	seasonNumber, ok := parseNumberParam(c, "season")
	if !ok {
		return
	}
	episodeNumber, ok := parseNumberParam(c, "episode")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	episode, err := controller.reader.GetEpisode(ctx, seasonNumber, episodeNumber)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "episode")
		return
	}
	if err != nil {
		respondInternalError(c, controller.logger, err, "get episode")
		return
	}

	lines, err := controller.reader.GetLinesForEpisode(ctx, episode.ID)
	if err != nil {
		respondInternalError(c, controller.logger, err, "list lines")
		return
	}

	resp := TranscriptResponse{
		Season:  seasonNumber,
		Episode: episode.Number,
		Title:   episode.Title,
		Lines:   make([]LineResponse, 0, len(lines)),
		Count:   len(lines),
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, toLineResponse(line))
	}
	c.IndentedJSON(http.StatusOK, resp)
}

func (controller *TranscriptsController) GetSpeakers(c *gin.Context) {
	speakers, err := controller.reader.GetSpeakers(c.Request.Context())
	if err != nil {
		respondInternalError(c, controller.logger, err, "list speakers")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"speakers": speakers, "count": len(speakers)})
}

func (controller *TranscriptsController) GetRandomLine(c *gin.Context) {
	var filter services.LineFilter
	var ok bool
	if filter.SeasonNumber, ok = parseOptionalNumberQuery(c, "season"); !ok {
		return
	}
	if filter.EpisodeNumber, ok = parseOptionalNumberQuery(c, "episode"); !ok {
		return
	}
	filter.Speaker = c.Query("speaker")

	line, err := controller.reader.GetRandomLine(c.Request.Context(), filter)
	if errors.Is(err, database.ErrNotFound) {
		respondNotFound(c, "line")
		return
	}
	if err != nil {
		respondInternalError(c, controller.logger, err, "random line")
		return
	}

	c.IndentedJSON(http.StatusOK, RandomLineResponse{
		Season:       line.Season.Number,
		Episode:      line.Episode.Number,
		Title:        line.Episode.Title,
		LineResponse: toLineResponse(*line),
	})
}

func (controller *TranscriptsController) GetStats(c *gin.Context) {
	stats, err := controller.reader.GetStats(c.Request.Context())
	if err != nil {
		respondInternalError(c, controller.logger, err, "stats")
		return
	}
	c.IndentedJSON(http.StatusOK, stats)
}
