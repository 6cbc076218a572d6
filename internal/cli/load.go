package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrlokans/transcripts/internal/config"
	"github.com/mrlokans/transcripts/internal/database"
	"github.com/mrlokans/transcripts/internal/loader"
	"github.com/mrlokans/transcripts/internal/logging"
	"github.com/mrlokans/transcripts/internal/services"
)

// LoadCommand loads a seasons directory of transcripts into the database
type LoadCommand struct {
	SeasonsDir string
	Database   config.Database
	Migrate    bool
	Upsert     bool
	DryRun     bool

	logger zerolog.Logger
}

func NewLoadCommand(cfg *config.Config, logger zerolog.Logger) *LoadCommand {
	return &LoadCommand{
		SeasonsDir: cfg.Transcripts.SeasonsDir,
		Database:   cfg.Database,
		logger:     logger,
	}
}

func (cmd *LoadCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)

	var driver string
	fs.StringVar(&cmd.SeasonsDir, "dir", cmd.SeasonsDir, "Directory containing the season folders (S1, S2, ...)")
	fs.StringVar(&driver, "driver", string(cmd.Database.Driver), "Database driver: sqlite or postgres")
	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the SQLite database file")
	fs.BoolVar(&cmd.Migrate, "migrate", false, "Create or update the schema before loading")
	fs.BoolVar(&cmd.Upsert, "upsert", false, "Reuse existing seasons/episodes and replace their lines instead of failing")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse all transcripts without writing to the database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s load [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load episode transcripts into the seasons/episodes/speakers/lines tables.\n\n")
		fmt.Fprintf(os.Stderr, "The directory is expected to look like:\n")
		fmt.Fprintf(os.Stderr, "  Seasons/S1/E1-01 - Pilot.txt\n\n")
		fmt.Fprintf(os.Stderr, "PostgreSQL connection settings come from DATABASE_HOST, DATABASE_PORT,\n")
		fmt.Fprintf(os.Stderr, "DATABASE_NAME, DATABASE_USER and DATABASE_PASSWORD (a .env file is read too).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Load into a fresh SQLite file:\n")
		fmt.Fprintf(os.Stderr, "  %s load -dir ./Seasons -db ./transcripts.db -migrate\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Load into PostgreSQL, tolerating an earlier run:\n")
		fmt.Fprintf(os.Stderr, "  %s load -driver postgres -upsert\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Check the folder naming without touching the database:\n")
		fmt.Fprintf(os.Stderr, "  %s load -dir ./Seasons -dry-run\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Database.Driver = config.Driver(strings.ToLower(driver))

	if cmd.SeasonsDir == "" {
		return fmt.Errorf("required flag -dir not provided")
	}
	if cmd.DryRun {
		return nil
	}
	return cmd.Database.Validate()
}

func (cmd *LoadCommand) Run(ctx context.Context) (services.LoadResult, error) {
	info, err := os.Stat(cmd.SeasonsDir)
	if err != nil {
		return services.LoadResult{}, fmt.Errorf("seasons directory not found: %w", err)
	}
	if !info.IsDir() {
		return services.LoadResult{}, fmt.Errorf("seasons path %s is not a directory", cmd.SeasonsDir)
	}

	if cmd.DryRun {
		cmd.logger.Info().Msg("Dry run: nothing will be written")
		result, err := loader.New(nil, cmd.logger, loader.Options{DryRun: true}).Load(ctx, cmd.SeasonsDir)
		if err != nil {
			return result, err
		}
		cmd.logSummary(result)
		return result, nil
	}

	cmd.logger.Info().Str("database", cmd.Database.Target()).Msg("Connecting to database")

	db, err := database.Open(cmd.Database, logging.GormLevel(cmd.Database.LogLevel))
	if err != nil {
		return services.LoadResult{}, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			cmd.logger.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cmd.Migrate {
		if err := db.Migrate(); err != nil {
			return services.LoadResult{}, err
		}
	}

	l := loader.New(db, cmd.logger, loader.Options{Upsert: cmd.Upsert})
	result, err := l.Load(ctx, cmd.SeasonsDir)
	if err != nil {
		return result, err
	}

	cmd.logSummary(result)
	return result, nil
}

func (cmd *LoadCommand) logSummary(result services.LoadResult) {
	cmd.logger.Info().
		Int("seasons", result.SeasonsProcessed).
		Int("episodes", result.EpisodesProcessed).
		Int("lines", result.LinesProcessed).
		Int("speakers", result.SpeakersSeen).
		Msg("Finished processing all seasons and episodes")
}
