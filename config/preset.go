package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Xephorium/Halo3LoadingScreen/parameter/visual"
)

var ErrUnknownPreset = errors.New("unknown preset")

// preset mutates a config in place
type preset func(c *Config)

var presets = map[string]preset{
	"installation08": func(c *Config) {
		c.Layout.Damage = true
		c.Display.Palette = visual.PaletteDamage.Name
	},
	"vergil":           func(c *Config) { c.Display.Palette = visual.PaletteVergil.Name },
	"destiny":          func(c *Config) { c.Display.Palette = visual.PaletteDestiny.Name },
	"vintage":          func(c *Config) { c.Display.Palette = visual.PaletteVintage.Name },
	"classicparticles": func(c *Config) { c.Display.ParticleSize = 2.5 },
	"noblocks":         func(c *Config) { c.Display.Blocks = false },
	"nolines":          func(c *Config) { c.Display.Lines = false },
	"sd":               func(c *Config) { c.Display.ResolutionScale = 0.67 },
	"2k": func(c *Config) {
		c.Display.ResolutionScale = 1.34
		c.Display.LineAlpha *= 1.34
	},
	"4k": func(c *Config) {
		c.Display.ResolutionScale = 2.0
		c.Display.LineAlpha *= 2.0
	},
	"halfspeed":    func(c *Config) { c.Timing.Speed *= 0.5 },
	"quarterspeed": func(c *Config) { c.Timing.Speed *= 0.25 },
	"triplespeed":  func(c *Config) { c.Timing.Speed *= 3.0 },
}

// PresetNames lists the recognized preset names
func PresetNames() []string {
	return []string{
		"installation08", "vergil", "destiny", "vintage", "classicparticles",
		"noblocks", "nolines", "sd", "2k", "4k", "halfspeed", "quarterspeed", "triplespeed",
	}
}

// ApplyPresets applies a comma separated preset list in order
// Unknown names are collected and returned joined; known ones still apply
func (c *Config) ApplyPresets(list string) error {
	var errs []error
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		p, ok := presets[name]
		if !ok {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset))
			continue
		}
		p(c)
	}
	return errors.Join(errs...)
}
