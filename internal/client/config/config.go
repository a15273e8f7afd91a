// internal/client/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	LogFile          string `env:"LOG_FILE,default=client.log" validate:"required"`
	LogLevel         string `env:"LOG_LEVEL,default=info" validate:"oneof=trace debug info warn warning error"`
	LogFormat        string `env:"LOG_FORMAT,default=json" validate:"oneof=json console"`
	HistoryFile      string `env:"HISTORY_FILE"`
	UserName         string `env:"USER_NAME,default=you" validate:"required"`
	ContentCharLimit int    `env:"CONTENT_CHAR_LIMIT,default=10000" validate:"gt=0"`
	TopicCharLimit   int    `env:"TOPIC_CHAR_LIMIT,default=60" validate:"gt=0"`
	ChannelCharLimit int    `env:"CHANNEL_CHAR_LIMIT,default=60" validate:"gt=0"`
}

// Load reads envFile (if present) into the process environment and decodes
// the configuration from it.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
