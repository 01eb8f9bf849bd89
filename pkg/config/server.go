package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

const DefaultIdleTimeout = 5 * time.Minute

var ErrNoListenAddress = errors.New("no listen address")

// ServerConfig holds the SSH host settings.
type ServerConfig struct {
	ListenSSH   string        `env:"BLOCKTERM_LISTEN_SSH" envDefault:":2222"`
	Binary      string        `env:"BLOCKTERM_BINARY" envDefault:"blockterm"`
	HostKey     string        `env:"BLOCKTERM_HOST_KEY"`
	IdleTimeout time.Duration `env:"BLOCKTERM_IDLE_TIMEOUT" envDefault:"5m"`
	Tick        time.Duration `env:"BLOCKTERM_TICK"`

	LogPath      string `env:"BLOCKTERM_LOG"`
	Debug        bool   `env:"BLOCKTERM_DEBUG"`
	DebugAddress string `env:"BLOCKTERM_DEBUG_ADDRESS"`
}

// ParseServer parses environment and flags into a ServerConfig.
func ParseServer(fs *flag.FlagSet, args []string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}

	fs.StringVar(&cfg.ListenSSH, "listen-ssh", cfg.ListenSSH, "host SSH server on network address")
	fs.StringVar(&cfg.Binary, "binary", cfg.Binary, "path to the blockterm binary started for each session")
	fs.StringVar(&cfg.HostKey, "host-key", cfg.HostKey, "path to SSH host key, a temporary key is generated when empty")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "disconnect idle sessions after")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "tick interval passed to each session (0 keeps the game default)")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "write log messages to file")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug messages")
	fs.StringVar(&cfg.DebugAddress, "debug-address", cfg.DebugAddress, "address to serve debug info")

	if err := fs.Parse(args); err != nil {
		return ServerConfig{}, err
	}

	if cfg.ListenSSH == "" {
		return ServerConfig{}, fmt.Errorf("invalid server config: %w", ErrNoListenAddress)
	} else if cfg.IdleTimeout < 0 {
		return ServerConfig{}, fmt.Errorf("invalid idle timeout %s", cfg.IdleTimeout)
	}

	return cfg, nil
}

// SessionArgs returns the arguments passed to the game binary.
func (c ServerConfig) SessionArgs() []string {
	if c.Tick <= 0 {
		return nil
	}

	return []string{"-tick", c.Tick.String()}
}
