// Package config holds the settings of the blockfit binaries, read from a
// TOML file and overridden by flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/plus3/blockfit/shape"
	"github.com/rs/zerolog"
)

// Config is the on-disk configuration.
type Config struct {
	// TileSize is the on-screen edge length of a board cell in pixels.
	TileSize int `toml:"tile_size"`
	// Catalog is a TOML pattern file. Empty selects the built-in patterns.
	Catalog string `toml:"catalog"`
	// Colors restricts the colors pieces are drawn with.
	Colors []string `toml:"colors"`
	// DebugUI shows the Dear ImGui panel in the play window.
	DebugUI  bool   `toml:"debug_ui"`
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TileSize: 30,
		Colors:   []string{"red", "green", "blue"},
		LogLevel: "info",
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	_, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
	case optional && errors.Is(err, os.ErrNotExist):
		return cfg, nil
	default:
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	if c.TileSize < 4 || c.TileSize > 128 {
		errs = append(errs, fmt.Errorf("tile_size %d outside 4..128", c.TileSize))
	}
	if _, err := c.PieceColors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// PieceColors parses Colors.
func (c Config) PieceColors() ([]shape.Color, error) {
	if len(c.Colors) == 0 {
		return nil, errors.New("colors: at least one color is required")
	}

	out := make([]shape.Color, 0, len(c.Colors))
	for _, name := range c.Colors {
		var found bool
		for _, color := range shape.Playable {
			if strings.EqualFold(name, color.String()) {
				out = append(out, color)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("colors: %q is not a playable color", name)
		}
	}
	return out, nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
