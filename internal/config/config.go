// Package config loads process configuration from the environment
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Storage backends for saved characters
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the process configuration
type Config struct {
	DataDir    string `env:"QUEST_DATA_DIR"    envDefault:"data"`
	SaveDir    string `env:"QUEST_SAVE_DIR"    envDefault:"data/save_games"`
	Storage    string `env:"QUEST_STORAGE"     envDefault:"file"`
	RedisAddr  string `env:"QUEST_REDIS_ADDR"  envDefault:"localhost:6379"`
	SQLitePath string `env:"QUEST_SQLITE_PATH" envDefault:"data/saves.db"`
	LogLevel   string `env:"LOG_LEVEL"         envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT"        envDefault:"text"`
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an
// error; variables already set in the environment win over the file.
func LoadFile(dotenvPath string) (*Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read %s", dotenvPath)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enumerated settings and required paths
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("DataDir", c.DataDir, vb)
	errors.ValidateEnum("Storage", c.Storage, []string{StorageFile, StorageRedis, StorageSQLite}, vb)
	errors.ValidateEnum("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LogFormat", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)

	switch c.Storage {
	case StorageFile:
		errors.ValidateRequired("SaveDir", c.SaveDir, vb)
	case StorageRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case StorageSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}
