package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration
type Config struct {
	Window WindowConfig `yaml:"window"`
	Board  BoardConfig  `yaml:"board"`
	Render RenderConfig `yaml:"render"`
	Game   GameConfig   `yaml:"game"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// BoardConfig holds board shape settings
type BoardConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	CornerCut *int `yaml:"corner_cut"` // nil means default; -1 keeps the full rectangle
}

// RenderConfig holds drawing settings
type RenderConfig struct {
	TileScale   float64 `yaml:"tile_scale"`   // pixels per tile radius
	TileSpacing float64 `yaml:"tile_spacing"` // >1 leaves gaps between tiles
	ShowPreview bool    `yaml:"show_preview"`
}

// GameConfig holds session settings
type GameConfig struct {
	Seed    int64 `yaml:"seed"` // 0 = seed from the clock
	Verbose bool  `yaml:"verbose"`
}

const (
	defaultTitle       = "Tangle"
	defaultWindowSize  = 640
	defaultBoardSize   = 9
	defaultCornerCut   = 3
	defaultTileScale   = 32
	defaultTileSpacing = 1.1
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Render.ShowPreview = true
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Render: RenderConfig{ShowPreview: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = defaultTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = defaultWindowSize
	}
	if c.Window.Height == 0 {
		c.Window.Height = defaultWindowSize
	}
	if c.Board.Width == 0 {
		c.Board.Width = defaultBoardSize
	}
	if c.Board.Height == 0 {
		c.Board.Height = defaultBoardSize
	}
	if c.Board.CornerCut == nil {
		cut := defaultCornerCut
		c.Board.CornerCut = &cut
	}
	if c.Render.TileScale == 0 {
		c.Render.TileScale = defaultTileScale
	}
	if c.Render.TileSpacing == 0 {
		c.Render.TileSpacing = defaultTileSpacing
	}
}

// Cut returns the corner cut with the default applied.
func (c *Config) Cut() int {
	if c.Board.CornerCut == nil {
		return defaultCornerCut
	}
	return *c.Board.CornerCut
}

// Validate reports settings no game can be built from.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d is negative", c.Window.Width, c.Window.Height))
	}
	if c.Board.Width < 0 || c.Board.Height < 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d is negative", c.Board.Width, c.Board.Height))
	}
	ci, cj := c.Board.Height/2, c.Board.Width/2
	if cut := c.Cut(); ci+cj <= cut || c.Board.Width+c.Board.Height-ci-cj-2 <= cut {
		errs = append(errs, fmt.Errorf("corner cut %d leaves no centre tile on a %dx%d board", cut, c.Board.Width, c.Board.Height))
	}
	if c.Render.TileScale < 0 {
		errs = append(errs, fmt.Errorf("tile scale %g is negative", c.Render.TileScale))
	}
	if c.Render.TileSpacing < 1 {
		errs = append(errs, fmt.Errorf("tile spacing %g must be at least 1", c.Render.TileSpacing))
	}
	return errors.Join(errs...)
}
