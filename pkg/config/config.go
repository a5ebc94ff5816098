package config

import (
	"fmt"

	"github.com/cbodonnell/tictactoe/pkg/log"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	Debug     bool   `yaml:"debug" env:"TICTACTOE_DEBUG" env-default:"false"`
	Window    Window `yaml:"window"`
}

type Window struct {
	Width  int    `yaml:"width" env:"TICTACTOE_WINDOW_WIDTH" env-default:"800"`
	Height int    `yaml:"height" env:"TICTACTOE_WINDOW_HEIGHT" env-default:"800"`
	Title  string `yaml:"title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic-Tac-Toe"`
}

// Load reads the configuration from the YAML file at path, then applies environment
// overrides. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %v", err)
		}
	} else {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := log.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Usage returns a description of the supported environment variables.
func Usage() string {
	description, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return description
}
