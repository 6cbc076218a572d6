package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates the read-only transcripts API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// A nil *Database must stay a nil Pinger.
	var db Pinger
	if cfg.Database != nil {
		db = cfg.Database
	}
	health := NewHealthController(db, cfg.Version)

	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if cfg.Reader != nil {
		transcripts := NewTranscriptsController(cfg.Reader, cfg.Logger)

		api := router.Group("/api")
		api.GET("/seasons", transcripts.GetSeasons)
		api.GET("/seasons/:number/episodes", transcripts.GetEpisodes)
		api.GET("/transcripts/:season/:episode", transcripts.GetTranscript)
		api.GET("/speakers", transcripts.GetSpeakers)
		api.GET("/random-line", transcripts.GetRandomLine)
		api.GET("/stats", transcripts.GetStats)
	}

	return router
}
