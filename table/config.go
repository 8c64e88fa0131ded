package table

import (
	"io"
	"os"

	"go.uber.org/zap"
)

type Config struct {
	Logger *zap.Logger

	// Stdin is read by ParseFile when the path is utils.StdinPath.
	Stdin io.Reader

	// Coalesce merges the ranges produced by each stage before feeding them to
	// the next one. It does not change any result.
	Coalesce bool
}

type Option func(*Config)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func WithCoalesce(enabled bool) Option {
	return func(c *Config) {
		c.Coalesce = enabled
	}
}

func WithStdin(r io.Reader) Option {
	return func(c *Config) {
		c.Stdin = r
	}
}

func newConfig(opts ...Option) *Config {
	config := &Config{
		Logger:   zap.NewNop(),
		Stdin:    os.Stdin,
		Coalesce: true,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Stdin == nil {
		config.Stdin = os.Stdin
	}
	return config
}
