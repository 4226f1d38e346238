package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Board    Board  `yaml:"board"`
	Render   Render `yaml:"render"`
}

// Board holds the inclusive range offered to players when choosing dimensions.
type Board struct {
	MinDimension int `yaml:"min-dimension" env:"BOARD_MIN_DIMENSION" env-default:"4"  validate:"min=4,max=16"`
	MaxDimension int `yaml:"max-dimension" env:"BOARD_MAX_DIMENSION" env-default:"15" validate:"min=4,max=16,gtefield=MinDimension"`
}

type Render struct {
	Padding int `yaml:"padding" env:"RENDER_PADDING" env-default:"5" validate:"min=0,max=40"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Default - configuration built from defaults and the environment only.
func Default() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Contains - reports whether n is an allowed number of rows or columns.
func (that *Board) Contains(n int) bool {
	return n >= that.MinDimension && n <= that.MaxDimension
}
