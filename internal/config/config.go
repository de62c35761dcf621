package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the session parameters. It is assembled once at startup
// (defaults, config file, then flags) and treated as immutable after
// Validate.
type Config struct {
	DeviceIndex     int      `json:"device_index"` // -1 prompts for a device
	Keys            []string `json:"keys"`
	Frequency       float64  `json:"frequency"`
	Volume          float64  `json:"volume"`
	SampleRate      int      `json:"sample_rate"`
	Channels        int      `json:"channels"`
	FramesPerBuffer int      `json:"frames_per_buffer"`
	LogLevel        string   `json:"log_level"`
}

// Load returns the defaults overlaid with the config file, if one
// exists.
func Load() (*Config, error) {
	cfg := &Config{
		DeviceIndex:     -1,
		Keys:            []string{"shift_r"},
		Frequency:       440.0,
		Volume:          0.5,
		SampleRate:      44100,
		Channels:        2,
		FramesPerBuffer: 256,
		LogLevel:        "info",
	}

	if data, err := os.ReadFile(configPath()); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := configPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the parameters before the stream is opened.
func (c *Config) Validate() error {
	if c.Frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %g", c.Frequency)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if float64(c.SampleRate) < 2*c.Frequency {
		return fmt.Errorf("sample rate %d cannot represent %g Hz (need at least %g)",
			c.SampleRate, c.Frequency, 2*c.Frequency)
	}
	if c.Channels < 1 {
		return fmt.Errorf("channel count must be at least 1, got %d", c.Channels)
	}
	if c.FramesPerBuffer < 1 {
		return fmt.Errorf("frames per buffer must be at least 1, got %d", c.FramesPerBuffer)
	}
	if len(c.Keys) == 0 {
		return fmt.Errorf("at least one control key is required")
	}
	return nil
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "keytone", "config.json")
}
