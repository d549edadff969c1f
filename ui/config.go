package ui

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config of the terminal client, read from TALKER_* variables.
type Config struct {
	ServerAddr    string        `envconfig:"SERVER_ADDR" default:"localhost:8080"`
	LogID         string        `envconfig:"LOG_ID" default:"messages"`
	UserID        string        `envconfig:"USER_ID" required:"true"`
	AvatarURL     string        `envconfig:"AVATAR_URL"`
	RetryInterval time.Duration `envconfig:"RETRY_INTERVAL" default:"2s"`
	// TALKER_COLOURS enables colorized output
	Colours  bool   `envconfig:"COLOURS" default:"true"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("talker", &cfg)
	return cfg, err
}
