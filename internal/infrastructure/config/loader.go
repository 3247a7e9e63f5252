// Package config loads the game configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name inside a config directory
const DefaultFile = "game.yaml"

// ErrInvalid is returned by Validate
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads name over the defaults, applies environment overrides and validates.
// Keys missing from the file keep their default values.
func (l *Loader) Load(name string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(l.basePath, name), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return cfg, nil
}

// LoadFile loads a configuration file by path
func LoadFile(path string) (*Config, error) {
	return NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
}

// Parse decodes YAML over DefaultConfig
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// YAML encodes the configuration
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies ARCADE_* environment variables
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ARCADE_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
	if v := os.Getenv("ARCADE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ARCADE_ASSETS"); v != "" {
		c.Assets.Dir = v
	}
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Loop.FPS <= 0 || c.Loop.FPS > 1000:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Loop.FPS)
	case c.Loop.ReportInterval <= 0:
		return fmt.Errorf("%w: report interval %s", ErrInvalid, c.Loop.ReportInterval)
	case c.Ship.FrameWidth <= 0 || c.Ship.FrameHeight <= 0 || c.Ship.Cols <= 0 || c.Ship.Rows <= 0:
		return fmt.Errorf("%w: ship sheet %dx%d of %vx%v", ErrInvalid,
			c.Ship.Cols, c.Ship.Rows, c.Ship.FrameWidth, c.Ship.FrameHeight)
	case c.Ship.Cols*c.Ship.Rows < 9:
		return fmt.Errorf("%w: ship sheet needs 9 frames, has %d", ErrInvalid, c.Ship.Cols*c.Ship.Rows)
	case c.Ship.Speed < 0:
		return fmt.Errorf("%w: ship speed %v", ErrInvalid, c.Ship.Speed)
	case c.Ship.MovableFraction <= 0 || c.Ship.MovableFraction > 1:
		return fmt.Errorf("%w: movable fraction %v", ErrInvalid, c.Ship.MovableFraction)
	case c.Menu.IdleSize <= 0 || c.Menu.HoverSize <= 0:
		return fmt.Errorf("%w: menu font sizes %v/%v", ErrInvalid, c.Menu.IdleSize, c.Menu.HoverSize)
	case c.Menu.BoxWidth <= 0 || c.Menu.LabelHeight <= 0:
		return fmt.Errorf("%w: menu box %vx%v", ErrInvalid, c.Menu.BoxWidth, c.Menu.LabelHeight)
	case c.Menu.Margin < 0 || c.Menu.BorderWidth < 0:
		return fmt.Errorf("%w: menu margin %v, border %v", ErrInvalid, c.Menu.Margin, c.Menu.BorderWidth)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return nil
}
