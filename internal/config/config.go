package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

var ErrUnknownDriver = errors.New("unknown database driver")

type (
	Config struct {
		HTTP
		Global
		Database
		Logging
		Transcripts
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   Driver
		Path     string // SQLite file
		Host     string
		Port     int
		Name     string
		User     string
		Password string
		SSLMode  string
		LogLevel string // gorm logger: silent, error, warn, info
	}
	Logging struct {
		Level  string
		Format string // console or json
	}
	Transcripts struct {
		SeasonsDir string
	}
)

// Validate reports configuration the loader cannot work with.
func (d Database) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.Path == "" {
			return errors.New("sqlite database path is empty")
		}
	case DriverPostgres:
		if d.Host == "" || d.Name == "" {
			return errors.New("postgres host and database name are required")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, d.Driver)
	}
	return nil
}

// SQLiteDSN returns the SQLite file DSN with foreign keys enforced.
func (d Database) SQLiteDSN() string {
	if strings.Contains(d.Path, "?") {
		return d.Path + "&_foreign_keys=on"
	}
	return d.Path + "?_foreign_keys=on"
}

// PostgresDSN renders a lib/pq key/value connection string.
func (d Database) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(d.Host),
		d.Port,
		quoteDSNValue(d.User),
		quoteDSNValue(d.Password),
		quoteDSNValue(d.Name),
		quoteDSNValue(d.SSLMode),
	)
}

// Target describes the database for log output without credentials.
func (d Database) Target() string {
	if d.Driver == DriverPostgres {
		u := url.URL{
			Scheme: "postgres",
			Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:   "/" + d.Name,
		}
		if d.User != "" {
			u.User = url.User(d.User)
		}
		return u.String()
	}
	return "sqlite://" + d.Path
}

// quoteDSNValue quotes empty values and values containing spaces or quotes,
// escaping backslashes and single quotes as lib/pq expects.
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// LoadEnvFile loads variables from an env file into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// firstNonEmpty returns the first key with a non-empty value, so the env var
// names used by older loader scripts still work.
func firstNonEmpty(v *viper.Viper, keys ...string) string {
	for _, key := range keys {
		if value := v.GetString(key); value != "" {
			return value
		}
	}
	return ""
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8081)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_port", 5432)
	v.SetDefault("database_sslmode", "disable")
	v.SetDefault("sql_log_level", "warn")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetDefault("seasons_dir", DefaultSeasonsDir)

	host := firstNonEmpty(v, "DATABASE_HOST", "DATABASE_URL")
	if host == "" {
		host = "localhost"
	}
	name := firstNonEmpty(v, "DATABASE_NAME")
	if name == "" {
		name = "transcripts"
	}
	user := firstNonEmpty(v, "DATABASE_USER", "USERNAME")
	if user == "" {
		user = "postgres"
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   Driver(strings.ToLower(v.GetString("DATABASE_DRIVER"))),
			Path:     v.GetString("DATABASE_PATH"),
			Host:     host,
			Port:     v.GetInt("DATABASE_PORT"),
			Name:     name,
			User:     user,
			Password: firstNonEmpty(v, "DATABASE_PASSWORD", "PASSWORD"),
			SSLMode:  v.GetString("DATABASE_SSLMODE"),
			LogLevel: v.GetString("SQL_LOG_LEVEL"),
		},
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Transcripts: Transcripts{
			SeasonsDir: v.GetString("SEASONS_DIR"),
		},
	}
}
