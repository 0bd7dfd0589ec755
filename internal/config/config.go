package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInvalidPlayers = errors.New("players must be 0, 1 or 2")

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PlainOutput bool   `yaml:"plain-output" env:"PLAIN_OUTPUT"`
	Seed        int64  `yaml:"seed" env:"SEED" env-default:"0"`
	Game        Game   `yaml:"game"`
}

// Game - answers the console would otherwise ask for, zero values are asked.
type Game struct {
	Players    int    `yaml:"players" env:"PLAYERS" env-default:"0"`
	PlayerOne  string `yaml:"player-one" env:"PLAYER_ONE" env-default:""`
	PlayerTwo  string `yaml:"player-two" env:"PLAYER_TWO" env-default:""`
	Difficulty string `yaml:"difficulty" env:"DIFFICULTY" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path and the environment. A missing file leaves the environment
// and defaults only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Game.Players < 0 || that.Game.Players > 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidPlayers, that.Game.Players)
	}

	if that.Game.Difficulty != "" {
		if _, err := entity.ParseDifficulty(that.Game.Difficulty); err != nil {
			return fmt.Errorf("invalid difficulty: %w", err)
		}
	}

	return nil
}
