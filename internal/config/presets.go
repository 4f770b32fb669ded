package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"tiny": with(func(c *Config) {
		c.DiskCount = 3
		c.MoveDelay = 400 * time.Millisecond
	}),
	"single": with(func(c *Config) {
		c.DiskCount = 1
		c.MoveDelay = time.Second
	}),
	"tall": with(func(c *Config) {
		c.DiskCount = 12
		c.WindowHeight = 720
		c.MoveDelay = 20 * time.Millisecond
		c.Handoff = "handshake"
	}),
	"responsive": with(func(c *Config) {
		c.MoveDelay = 250 * time.Millisecond
		c.EventTick = 16 * time.Millisecond
	}),
}

func with(edit func(*Config)) *Config {
	c := DefaultConfig()
	edit(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
