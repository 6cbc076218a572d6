package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_DRIVER", "DATABASE_PATH", "DATABASE_HOST", "DATABASE_URL",
		"DATABASE_NAME", "DATABASE_USER", "USERNAME", "DATABASE_PASSWORD",
		"PASSWORD", "SEASONS_DIR", "PORT", "HOST", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "transcripts", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, DefaultSeasonsDir, cfg.Transcripts.SeasonsDir)
	assert.Equal(t, int32(8081), cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_HOST", "")
	t.Setenv("DATABASE_URL", "db.internal")
	t.Setenv("DATABASE_NAME", "seinfeld")
	t.Setenv("DATABASE_USER", "")
	t.Setenv("USERNAME", "loader")
	t.Setenv("DATABASE_PASSWORD", "")
	t.Setenv("PASSWORD", "s3cret")
	t.Setenv("SEASONS_DIR", "/data/Seasons")

	cfg := NewConfig()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "seinfeld", cfg.Database.Name)
	assert.Equal(t, "loader", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "/data/Seasons", cfg.Transcripts.SeasonsDir)
}

func TestDatabase_Validate(t *testing.T) {
	assert.NoError(t, Database{Driver: DriverSQLite, Path: "x.db"}.Validate())
	assert.Error(t, Database{Driver: DriverSQLite}.Validate())
	assert.NoError(t, Database{Driver: DriverPostgres, Host: "localhost", Name: "t"}.Validate())
	assert.Error(t, Database{Driver: DriverPostgres}.Validate())
	assert.ErrorIs(t, Database{Driver: "mysql"}.Validate(), ErrUnknownDriver)
}

func TestDatabase_DSN(t *testing.T) {
	t.Run("sqlite enables foreign keys", func(t *testing.T) {
		assert.Equal(t, "t.db?_foreign_keys=on", Database{Path: "t.db"}.SQLiteDSN())
		assert.Equal(t, "t.db?cache=shared&_foreign_keys=on", Database{Path: "t.db?cache=shared"}.SQLiteDSN())
	})

	t.Run("postgres quotes empty and spaced values", func(t *testing.T) {
		db := Database{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     5432,
			Name:     "transcripts",
			User:     "postgres",
			Password: "",
			SSLMode:  "disable",
		}
		assert.Equal(t,
			"host=localhost port=5432 user=postgres password='' dbname=transcripts sslmode=disable",
			db.PostgresDSN())

		db.Password = `it's a pass`
		assert.Contains(t, db.PostgresDSN(), `password='it\'s a pass'`)
	})

	t.Run("target hides password", func(t *testing.T) {
		db := Database{Driver: DriverPostgres, Host: "h", Port: 5432, Name: "n", User: "u", Password: "secret"}
		assert.Equal(t, "postgres://u@h:5432/n", db.Target())
		assert.NotContains(t, db.Target(), "secret")
		assert.Equal(t, "sqlite://./t.db", Database{Driver: DriverSQLite, Path: "./t.db"}.Target())
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("loads variables without overriding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("TRANSCRIPTS_TEST_NEW=from-file\nTRANSCRIPTS_TEST_SET=from-file\n"), 0o644))

		t.Setenv("TRANSCRIPTS_TEST_SET", "from-env")
		t.Setenv("TRANSCRIPTS_TEST_NEW", "")
		require.NoError(t, os.Unsetenv("TRANSCRIPTS_TEST_NEW"))

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "from-file", os.Getenv("TRANSCRIPTS_TEST_NEW"))
		assert.Equal(t, "from-env", os.Getenv("TRANSCRIPTS_TEST_SET"))
	})
}
