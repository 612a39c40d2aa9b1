package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MinPort is the minimum valid port number
	MinPort = 1
	// MaxPort is the maximum valid port number
	MaxPort = 65535
)

// Environment variable names
const (
	EnvToken = "TELEGRAM_BOT_TOKEN"
	EnvPort  = "PORT"
)

// Config represents the complete application configuration
type Config struct {
	Bot      BotConfig      `yaml:"bot"`
	Server   ServerConfig   `yaml:"server"`
	Download DownloadConfig `yaml:"download"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BotConfig holds Telegram transport configuration. The token comes
// exclusively from the environment, never from the file.
type BotConfig struct {
	Token         string `yaml:"-"`
	UpdateTimeout int    `yaml:"update_timeout"` // long-poll timeout in seconds
}

// ServerConfig holds the health endpoint server configuration
type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DownloadConfig holds fetch engine configuration
type DownloadConfig struct {
	Dir                 string        `yaml:"dir"`
	AudioFormat         string        `yaml:"audio_format"`
	AudioQuality        string        `yaml:"audio_quality"`
	ConcurrentFragments int           `yaml:"concurrent_fragments"`
	HTTPChunkSize       string        `yaml:"http_chunk_size"`
	Retries             int           `yaml:"retries"`
	FragmentRetries     int           `yaml:"fragment_retries"`
	ThumbnailTimeout    time.Duration `yaml:"thumbnail_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Bot: BotConfig{
			UpdateTimeout: 30,
		},
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Download: DownloadConfig{
			Dir:                 "temp_downloads",
			AudioFormat:         "mp3",
			AudioQuality:        "128K",
			ConcurrentFragments: 4,
			HTTPChunkSize:       "10M",
			Retries:             10,
			FragmentRetries:     10,
			ThumbnailTimeout:    10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, an optional yaml file, and
// environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Bot.Token = os.Getenv(EnvToken)
	if port := os.Getenv(EnvPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvPort, port, err)
		}
		cfg.Server.Port = p
	}

	return cfg, nil
}

// Validate checks the configuration before startup.
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("%s environment variable not set", EnvToken)
	}

	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		return fmt.Errorf("invalid server port: %d (must be between %d and %d)", c.Server.Port, MinPort, MaxPort)
	}

	if c.Download.Dir == "" {
		return fmt.Errorf("download dir is required")
	}

	if c.Download.AudioFormat == "" {
		return fmt.Errorf("audio format is required")
	}

	if c.Download.ConcurrentFragments <= 0 {
		return fmt.Errorf("concurrent_fragments must be greater than 0")
	}

	if c.Download.Retries <= 0 || c.Download.FragmentRetries <= 0 {
		return fmt.Errorf("retry counts must be greater than 0")
	}

	if c.Download.ThumbnailTimeout <= 0 {
		return fmt.Errorf("thumbnail_timeout must be greater than 0")
	}

	return nil
}
