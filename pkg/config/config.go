// Package config parses environment variables and flags for the
// blockterm commands. Flags override the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

var (
	ErrInvalidTick      = errors.New("tick interval must be positive")
	ErrInvalidScale     = errors.New("scale must be between 0 and 3")
	ErrInvalidBlockSize = errors.New("block size must be positive")
)

// Config holds the settings shared by the terminal and window games.
type Config struct {
	TickInterval time.Duration `env:"BLOCKTERM_TICK" envDefault:"500ms"`
	Seed         int64         `env:"BLOCKTERM_SEED"`
	Matrix       string        `env:"BLOCKTERM_MATRIX"`
	Theme        string        `env:"BLOCKTERM_THEME" envDefault:"classic"`

	Scale     int `env:"BLOCKTERM_SCALE"`
	BlockSize int `env:"BLOCKTERM_BLOCK_SIZE" envDefault:"30"`

	Sound bool `env:"BLOCKTERM_SOUND"`

	LogPath      string `env:"BLOCKTERM_LOG"`
	Debug        bool   `env:"BLOCKTERM_DEBUG"`
	Verbose      bool   `env:"BLOCKTERM_VERBOSE"`
	DebugAddress string `env:"BLOCKTERM_DEBUG_ADDRESS"`
}

// Parse parses environment and flags into a Config.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "interval between automatic drops")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&cfg.Matrix, "matrix", cfg.Matrix, "prefill cells as x,y,x,y,...")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "UI scale (0 for automatic)")
	fs.IntVar(&cfg.BlockSize, "block-size", cfg.BlockSize, "block size in pixels (window only)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sounds")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "write log messages to file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug messages")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log verbose debug messages")
	fs.StringVar(&cfg.DebugAddress, "debug-address", cfg.DebugAddress, "address to serve debug info")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid tick %s: %w", c.TickInterval, ErrInvalidTick)
	} else if c.Scale < 0 || c.Scale > 3 {
		return fmt.Errorf("invalid scale %d: %w", c.Scale, ErrInvalidScale)
	} else if c.BlockSize <= 0 {
		return fmt.Errorf("invalid block size %d: %w", c.BlockSize, ErrInvalidBlockSize)
	}

	_, err := c.Cells()
	return err
}

// Cells returns the prefilled cells.
func (c Config) Cells() ([]mino.Point, error) {
	return mino.ParseCells(c.Matrix)
}

func (c Config) LogLevel() int {
	if c.Verbose {
		return game.LogVerbose
	} else if c.Debug {
		return game.LogDebug
	}

	return game.LogStandard
}

// GameOptions returns the options for a new game.
func (c Config) GameOptions() (game.Options, error) {
	cells, err := c.Cells()
	if err != nil {
		return game.Options{}, err
	}

	return game.Options{
		Width:        mino.DefaultWidth,
		Height:       mino.DefaultHeight,
		Seed:         c.Seed,
		TickInterval: c.TickInterval,
		Prefill:      cells,
		LogLevel:     c.LogLevel()}, nil
}
