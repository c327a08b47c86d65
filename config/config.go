//
// Date: 2026-10-16
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Configuration loading from TOML, .env files and environment
// variables.
//

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/cloudmanic/spotify-randomizer/randomize"
)

//go:embed config.example.toml
var exampleConf []byte

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Spotify   SpotifyConfig   `toml:"spotify"`
	Randomize RandomizeConfig `toml:"randomize"`
	Log       LogConfig       `toml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host                   string `toml:"host"`
	Port                   int    `toml:"port"`
	RequestTimeoutSeconds  int    `toml:"request_timeout_seconds"`
	ShutdownTimeoutSeconds int    `toml:"shutdown_timeout_seconds"`
}

// SpotifyConfig contains Spotify Web API settings and per-request limits.
type SpotifyConfig struct {
	APIBaseURL        string  `toml:"api_base_url"`
	PageSize          int     `toml:"page_size"`
	WriteBatchSize    int     `toml:"write_batch_size"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// RandomizeConfig contains randomizer behaviour switches.
type RandomizeConfig struct {
	SerializePerPlaylist bool `toml:"serialize_per_playlist"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RequestTimeout returns the per-request timeout, zero meaning none.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns how long graceful shutdown may take.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// DefaultConfig returns a Config with defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// LoadConfig reads a TOML file on top of the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Load builds the runtime configuration. It loads a .env file if one exists,
// reads path when it is non-empty and present, applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	config := DefaultConfig()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := LoadConfig(path)
			if err != nil {
				return nil, err
			}
			config = loaded
		}
	}

	if err := config.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides settings from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if host := getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if port := getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: PORT %q is not a number", ErrInvalidConfig, port)
		}
		c.Server.Port = p
	}

	if baseURL := getenv("SPOTIFY_API_BASE_URL"); baseURL != "" {
		c.Spotify.APIBaseURL = baseURL
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if format := getenv("LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}

	return nil
}

// Validate rejects values the service cannot run with and clamps the remote
// limits to the Spotify ceilings.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Server.Port)
	}

	if c.Server.RequestTimeoutSeconds < 0 || c.Server.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidConfig)
	}

	if c.Spotify.PageSize <= 0 || c.Spotify.PageSize > randomize.MaxPageSize {
		c.Spotify.PageSize = randomize.MaxPageSize
	}

	if c.Spotify.WriteBatchSize <= 0 || c.Spotify.WriteBatchSize > randomize.MaxWriteBatch {
		c.Spotify.WriteBatchSize = randomize.MaxWriteBatch
	}

	if c.Spotify.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests_per_second must not be negative", ErrInvalidConfig)
	}

	if c.Spotify.Burst <= 0 {
		c.Spotify.Burst = 1
	}

	// zmb3/spotify appends paths directly to the base URL.
	if c.Spotify.APIBaseURL != "" && !strings.HasSuffix(c.Spotify.APIBaseURL, "/") {
		c.Spotify.APIBaseURL += "/"
	}

	return nil
}
