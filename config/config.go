package config

import (
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type (
	NET struct {
		// ReadBufferSize is the size of the per-connection socket read
		// buffer in bytes.
		ReadBufferSize int `json:"read_buffer_size"`
		// WriteBufferSize is the initial capacity of the per-connection
		// response head buffer.
		WriteBufferSize int `json:"write_buffer_size"`
		// ReadTimeout limits how long a connection may stay silent while
		// the server waits for its request line.
		ReadTimeout time.Duration `json:"read_timeout"`
		// AcceptLoopInterruptPeriod controls how often a blocked Accept()
		// is interrupted to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration `json:"accept_loop_interrupt_period"`
	}

	FS struct {
		// Root is the directory the server is confined to. Canonicalized
		// once at startup, immutable afterwards.
		Root string `json:"root"`
	}
)

type Config struct {
	NET NET `json:"net"`
	FS  FS  `json:"fs"`
}

func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            1024,
			WriteBufferSize:           1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		FS: FS{
			Root: ".",
		},
	}
}

// Fill replaces zero values in cfg with defaults, leaving everything
// explicitly set untouched.
func Fill(cfg *Config) *Config {
	defaults := Default()

	cfg.NET.ReadBufferSize = either(cfg.NET.ReadBufferSize, defaults.NET.ReadBufferSize)
	cfg.NET.WriteBufferSize = either(cfg.NET.WriteBufferSize, defaults.NET.WriteBufferSize)
	cfg.NET.ReadTimeout = either(cfg.NET.ReadTimeout, defaults.NET.ReadTimeout)
	cfg.NET.AcceptLoopInterruptPeriod = either(
		cfg.NET.AcceptLoopInterruptPeriod, defaults.NET.AcceptLoopInterruptPeriod,
	)
	cfg.FS.Root = either(cfg.FS.Root, defaults.FS.Root)

	return cfg
}

// Load reads a JSON config file and fills the gaps with defaults.
// Durations are plain nanosecond numbers.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := new(Config)
	if err = jsoniter.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Fill(cfg), nil
}

func either[T comparable](custom, defaultVal T) T {
	var zero T
	if custom == zero {
		return defaultVal
	}

	return custom
}
