package config

// Default locations for the loader inputs and the SQLite target
const (
	// DefaultDatabasePath is the default SQLite database file
	DefaultDatabasePath = "./transcripts.db"

	// DefaultSeasonsDir is the default root of the season directories
	DefaultSeasonsDir = "./Seasons"

	// DefaultEnvFile is loaded into the environment before configuration is read
	DefaultEnvFile = ".env"
)
