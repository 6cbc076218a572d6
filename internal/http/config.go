package http

import (
	"github.com/rs/zerolog"

	"github.com/mrlokans/transcripts/internal/database"
	"github.com/mrlokans/transcripts/internal/services"
)

// RouterConfig contains the dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Database is used for the health check; nil reports "not configured".
	Database *database.Database
	Reader   services.TranscriptReader
	Logger   zerolog.Logger

	// Application info
	Version string
}
