package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ericogr/pokemon-arena/internal/catalog"
	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/engine"
)

// Settings are the process settings read from the environment.
type Settings struct {
	Addr         string `env:"ARENA_ADDR" envDefault:":8080"`
	DB           string `env:"ARENA_DB" envDefault:"./data/arena.db"`
	Catalog      string `env:"ARENA_CATALOG"`
	LogLevel     string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	MaxRetries   int    `env:"ARENA_MAX_RETRIES" envDefault:"3"`
	TieBreak     string `env:"ARENA_TIE_BREAK" envDefault:"player_first"`
	SleepPolicy  string `env:"ARENA_SLEEP_POLICY" envDefault:"resolve_at_apply"`
	MaxAutoTurns int    `env:"ARENA_MAX_AUTO_TURNS" envDefault:"100"`
}

// LoadSettings reads an optional .env file from the working directory and
// then parses the environment. Variables already set win over the file.
func LoadSettings() (*Settings, error) {
	if err := godotenv.Load(constants.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", constants.EnvFile, err)
	}
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks value ranges and policy names.
func (s *Settings) Validate() error {
	if s.MaxRetries < 0 {
		return fmt.Errorf("%s must be >= 0, got %d", constants.EnvMaxRetries, s.MaxRetries)
	}
	if _, err := s.EngineOptions(); err != nil {
		return err
	}
	return nil
}

// EngineOptions maps the settings onto resolver options.
func (s *Settings) EngineOptions() (engine.Options, error) {
	o := engine.DefaultOptions()
	o.TieBreak = engine.TieBreak(strings.ToLower(s.TieBreak))
	o.SleepPolicy = engine.SleepPolicy(strings.ToLower(s.SleepPolicy))
	o.MaxAutoTurns = s.MaxAutoTurns
	if err := o.Validate(); err != nil {
		return o, fmt.Errorf("invalid engine settings: %w", err)
	}
	return o, nil
}

// LoadConfig reads the catalog file at path. An empty path selects the
// embedded default catalog.
func LoadConfig(path string) (*catalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	c, err := catalog.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
