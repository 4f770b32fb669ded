package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hanoisim/internal/bridge"
	"github.com/san-kum/hanoisim/internal/layout"
)

const (
	DefaultDiskCount    = 7
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultMoveDelay    = 100 * time.Millisecond
	DefaultFontPath     = "resources/DejaVuSans.ttf"
	DefaultFontSize     = 24
	DefaultTargetFPS    = 60
	DefaultTitle        = "Towers of Hanoi"
	DefaultDisplay      = "gui"

	// MaxDiskCount keeps 2^n - 1 and the rod height sane.
	MaxDiskCount = 20
)

var (
	ErrInvalidDiskCount = errors.New("config: disk_count out of range")
	ErrInvalidWindow    = errors.New("config: window dimensions must be positive")
	ErrInvalidDelay     = errors.New("config: move_delay and event_tick must not be negative")
	ErrInvalidDisplay   = errors.New("config: unknown display")
	ErrInvalidFPS       = errors.New("config: target_fps must be positive")
	ErrInvalidFontSize  = errors.New("config: font_size must be positive")
)

// Displays lists the accepted values of the display key.
var Displays = []string{"gui", "tui", "text"}

type Config struct {
	DiskCount    int           `yaml:"disk_count"`
	WindowWidth  int           `yaml:"window_width"`
	WindowHeight int           `yaml:"window_height"`
	MoveDelay    time.Duration `yaml:"move_delay"`
	FontPath     string        `yaml:"font_path"`
	FontSize     int           `yaml:"font_size"`
	TargetFPS    int           `yaml:"target_fps"`
	Title        string        `yaml:"title"`
	Handoff      string        `yaml:"handoff"`
	EventTick    time.Duration `yaml:"event_tick"`
	Display      string        `yaml:"display"`
}

func DefaultConfig() *Config {
	return &Config{
		DiskCount:    DefaultDiskCount,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		MoveDelay:    DefaultMoveDelay,
		FontPath:     DefaultFontPath,
		FontSize:     DefaultFontSize,
		TargetFPS:    DefaultTargetFPS,
		Title:        DefaultTitle,
		Handoff:      bridge.ModeSleep.String(),
		Display:      DefaultDisplay,
	}
}

// Load reads a yaml file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and that the towers fit the window.
func (c *Config) Validate() error {
	if c.DiskCount < 1 || c.DiskCount > MaxDiskCount {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDiskCount, c.DiskCount, MaxDiskCount)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.WindowWidth, c.WindowHeight)
	}
	if c.MoveDelay < 0 || c.EventTick < 0 {
		return ErrInvalidDelay
	}
	if c.TargetFPS < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.TargetFPS)
	}
	if c.FontSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidFontSize, c.FontSize)
	}
	if _, err := c.HandoffMode(); err != nil {
		return err
	}
	if !validDisplay(c.Display) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrInvalidDisplay, c.Display, Displays)
	}
	return c.Geometry().Validate()
}

func (c *Config) HandoffMode() (bridge.Mode, error) {
	return bridge.ParseMode(c.Handoff)
}

func (c *Config) Geometry() layout.Geometry {
	return layout.New(c.DiskCount, c.WindowWidth, c.WindowHeight)
}

func validDisplay(name string) bool {
	for _, d := range Displays {
		if d == name {
			return true
		}
	}
	return false
}
