package config

import (
	"strings"
	"testing"
)

func isolateConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)
}

func TestLoadDefaults(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DeviceIndex != -1 {
		t.Errorf("expected device index -1, got %d", cfg.DeviceIndex)
	}
	if len(cfg.Keys) != 1 || cfg.Keys[0] != "shift_r" {
		t.Errorf("expected default keys [shift_r], got %v", cfg.Keys)
	}
	if cfg.Frequency != 440.0 {
		t.Errorf("expected default frequency 440, got %g", cfg.Frequency)
	}
	if cfg.Volume != 0.5 {
		t.Errorf("expected default volume 0.5, got %g", cfg.Volume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.Channels != 2 {
		t.Errorf("expected default channel count 2, got %d", cfg.Channels)
	}
	if cfg.FramesPerBuffer != 256 {
		t.Errorf("expected default frames per buffer 256, got %d", cfg.FramesPerBuffer)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Frequency = 523.25
	cfg.Keys = []string{"ctrl", "space"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.Frequency != 523.25 {
		t.Errorf("expected saved frequency 523.25, got %g", loaded.Frequency)
	}
	if len(loaded.Keys) != 2 || loaded.Keys[0] != "ctrl" {
		t.Errorf("expected saved keys, got %v", loaded.Keys)
	}
	if loaded.SampleRate != 44100 {
		t.Errorf("unset fields should keep defaults, got sample rate %d", loaded.SampleRate)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		DeviceIndex:     -1,
		Keys:            []string{"shift_r"},
		Frequency:       440.0,
		Volume:          0.5,
		SampleRate:      44100,
		Channels:        2,
		FramesPerBuffer: 256,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero frequency", func(c *Config) { c.Frequency = 0 }, "frequency"},
		{"negative frequency", func(c *Config) { c.Frequency = -440 }, "frequency"},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, "sample rate"},
		{"frequency above nyquist", func(c *Config) { c.Frequency = 30000 }, "sample rate"},
		{"zero channels", func(c *Config) { c.Channels = 0 }, "channel"},
		{"zero buffer", func(c *Config) { c.FramesPerBuffer = 0 }, "frames per buffer"},
		{"no keys", func(c *Config) { c.Keys = nil }, "control key"},
	}
	for _, c := range cases {
		cfg := *valid
		cfg.Keys = append([]string(nil), valid.Keys...)
		c.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q should mention %q", c.name, err, c.want)
		}
	}
}
