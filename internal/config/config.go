package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds the demo application's configuration. Values come from
// FLIPSWITCH_* environment variables, optionally seeded from a .env file;
// command-line flags override both.
type Config struct {
	// Switch defaults
	TextOff  string  `envconfig:"TEXT_OFF" default:"Off"`
	TextOn   string  `envconfig:"TEXT_ON" default:"On"`
	ColorOff string  `envconfig:"COLOR_OFF" default:"#e63935"`
	ColorOn  string  `envconfig:"COLOR_ON" default:"#38a95e"`
	TextSize float64 `envconfig:"TEXT_SIZE" default:"14"`

	// Animation settings
	Duration time.Duration `envconfig:"DURATION" default:"600ms"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from a .env file and environment variables.
func Load() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected outside development)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process("flipswitch", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}

// Colors parses the configured hex colors into interpolation endpoints.
func (c *Config) Colors() (off, on colorful.Color, err error) {
	off, err = colorful.Hex(c.ColorOff)
	if err != nil {
		return off, on, fmt.Errorf("invalid off color %q: %w", c.ColorOff, err)
	}

	on, err = colorful.Hex(c.ColorOn)
	if err != nil {
		return off, on, fmt.Errorf("invalid on color %q: %w", c.ColorOn, err)
	}

	return off, on, nil
}
