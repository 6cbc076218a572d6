package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrlokans/transcripts/internal/config"
	"github.com/mrlokans/transcripts/internal/database"
	"github.com/mrlokans/transcripts/internal/logging"
)

// SchemaCommand creates the transcript tables and prints the tables found
type SchemaCommand struct {
	Database config.Database

	logger zerolog.Logger
	out    io.Writer
}

func NewSchemaCommand(cfg *config.Config, logger zerolog.Logger) *SchemaCommand {
	return &SchemaCommand{
		Database: cfg.Database,
		logger:   logger,
		out:      os.Stdout,
	}
}

func (cmd *SchemaCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)

	var driver string
	fs.StringVar(&driver, "driver", string(cmd.Database.Driver), "Database driver: sqlite or postgres")
	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the SQLite database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s schema [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create or update the seasons, episodes, speakers and lines tables,\n")
		fmt.Fprintf(os.Stderr, "then list the tables present in the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Database.Driver = config.Driver(strings.ToLower(driver))
	return cmd.Database.Validate()
}

func (cmd *SchemaCommand) Run() error {
	cmd.logger.Info().Str("database", cmd.Database.Target()).Msg("Migrating schema")

	db, err := database.Open(cmd.Database, logging.GormLevel(cmd.Database.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	tables, err := db.Tables()
	if err != nil {
		return err
	}
	for _, table := range tables {
		fmt.Fprintln(cmd.out, table)
	}
	return nil
}
