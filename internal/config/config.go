// Package config loads the ggpd command configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggpd/bridge"
	"github.com/gogpu/ggpd/gfx"
)

// Config is the ggpd command configuration.
type Config struct {
	// Backend is the drawing backend name (tkcanvas or callback).
	Backend string `yaml:"backend"`

	// Zoom is the canvas zoom factor, 1 or 2.
	Zoom int `yaml:"zoom"`

	// BlockSize is the signal block size in samples.
	BlockSize int `yaml:"block_size"`

	// Width and Height size GUI objects whose script declares no size.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// FontSize overrides the text size of Tk text items. Zero keeps the
	// size the script asks for.
	FontSize int `yaml:"font_size"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Scripts are class files loaded at startup. Relative paths are
	// resolved against the configuration file.
	Scripts []string `yaml:"scripts,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Backend:   gfx.DefaultBackend,
		Zoom:      1,
		BlockSize: bridge.DefaultBlockSize,
		Width:     80,
		Height:    80,
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, s := range c.Scripts {
		if !filepath.IsAbs(s) {
			c.Scripts[i] = filepath.Join(dir, s)
		}
	}
	return c, nil
}

// Decode reads a YAML document from r over the defaults and validates it.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	if !gfx.IsRegistered(c.Backend) {
		errs = append(errs, fmt.Errorf("backend %q is not one of %v", c.Backend, gfx.Backends()))
	}
	if c.Zoom != 1 && c.Zoom != 2 {
		errs = append(errs, fmt.Errorf("zoom must be 1 or 2, got %d", c.Zoom))
	}
	if c.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block_size must be positive, got %d", c.BlockSize))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("negative size %dx%d", c.Width, c.Height))
	}
	if c.FontSize < 0 {
		errs = append(errs, fmt.Errorf("font_size must not be negative, got %d", c.FontSize))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
