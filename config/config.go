// Package config loads the editor configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"git.sr.ht/~gioverse/jsonui/nineslice"
	"gopkg.in/yaml.v3"
)

// Config holds all editor configuration values.
type Config struct {
	// UIScale is the global display scale applied to nine-slice borders.
	UIScale float64 `yaml:"ui_scale"`
	// Textures is the root directory of the resource pack textures.
	Textures string `yaml:"textures"`
	// Workers bounds concurrent texture decoding. Zero uses NumCPU.
	Workers int `yaml:"workers"`
	// Profile selects a profiler, see package profile.
	Profile string `yaml:"profile"`
	// Presets are named nine-slice descriptions, keyed by texture name.
	// They apply to textures that have no JSON description of their own.
	Presets map[string]nineslice.Preset `yaml:"presets"`
	Preview PreviewConfig               `yaml:"preview"`
}

// PreviewConfig holds the initial state of the preview application.
type PreviewConfig struct {
	Texture string `yaml:"texture"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	// MaxSize bounds the width and height sliders.
	MaxSize int `yaml:"max_size"`
}

// ErrInvalid reports a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		UIScale:  nineslice.DefaultUIScale,
		Textures: "textures",
		Profile:  "none",
		Preview: PreviewConfig{
			Width:   160,
			Height:  48,
			MaxSize: 600,
		},
	}
}

// Load reads filename on top of Default and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// MustLoad is Load that exits the process on failure.
func MustLoad(filename string) *Config {
	cfg, err := Load(filename)
	if err != nil {
		log.Fatalf("loading config %s: %v", filename, err)
	}
	return cfg
}

// Parse decodes YAML data on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if math.IsNaN(c.UIScale) || math.IsInf(c.UIScale, 0) || c.UIScale <= 0 {
		return fmt.Errorf("%w: ui_scale must be a positive number, got %v", ErrInvalid, c.UIScale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if c.Preview.Width < 1 || c.Preview.Height < 1 {
		return fmt.Errorf("%w: preview size must be at least 1x1, got %dx%d",
			ErrInvalid, c.Preview.Width, c.Preview.Height)
	}
	if c.Preview.MaxSize < c.Preview.Width || c.Preview.MaxSize < c.Preview.Height {
		return fmt.Errorf("%w: preview max_size %d is smaller than the preview size",
			ErrInvalid, c.Preview.MaxSize)
	}
	return nil
}
