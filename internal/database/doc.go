// Package database provides the data access layer for the transcript loader.
//
// A Database wraps a gorm connection to either SQLite (the default, through
// mattn/go-sqlite3) or PostgreSQL (through lib/pq):
//
//	db, err := database.Open(cfg.Database, logger.Warn)
//	defer db.Close()
//	err = db.Migrate()
//
// The same type implements both sides of the services package:
//
//   - services.TranscriptWriter: inserts and upserts used by the loader,
//     grouped with Transaction
//   - services.TranscriptReader: read queries used by the HTTP API
//
// Lookups that match nothing return ErrNotFound rather than gorm's
// ErrRecordNotFound so callers do not depend on gorm.
package database
