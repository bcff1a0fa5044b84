package config

import (
	"fmt"

	"ctchen222/tictactoe-cli/internal/validator"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile    string    `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Difficulty string    `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY" env-default:"hard" validate:"oneof=easy medium hard"`
	Color      bool      `yaml:"color" env:"TICTACTOE_COLOR" env-default:"false"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Endpoint    string `yaml:"endpoint" env:"TICTACTOE_OTLP_ENDPOINT" validate:"omitempty,hostname_port"`
	TraceFile   string `yaml:"trace-file" env:"TICTACTOE_TRACE_FILE"`
	ServiceName string `yaml:"service-name" env:"TICTACTOE_SERVICE_NAME" env-default:"tictactoe-cli" validate:"required"`
}

// Load reads the YAML file at path, then applies environment overrides and defaults.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - like Load, but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Enabled reports whether any telemetry exporter is configured.
func (that Telemetry) Enabled() bool {
	return that.Endpoint != "" || that.TraceFile != ""
}
