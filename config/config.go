// Package config holds the immutable run configuration for ring layout and
// preview. Values start from the parameter defaults, then a TOML file, then
// environment overrides, then presets and CLI flags in the caller.
package config

import (
	"math"

	"github.com/Xephorium/Halo3LoadingScreen/geometry"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/parameter/visual"
)

// RingConfig controls slice count and cross-section shape
type RingConfig struct {
	Slices         int     `toml:"slices"`
	SliceParticles int     `toml:"slice_particles"`
	Radius         float64 `toml:"radius"`
	SliceSize      float64 `toml:"slice_size"`
	SliceWidth     int     `toml:"slice_width"`
}

// AmbientConfig controls the free-drifting background particles
type AmbientConfig struct {
	Count  int     `toml:"count"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Drift  float64 `toml:"drift"`
}

// TimingConfig holds animation lengths in animation milliseconds
type TimingConfig struct {
	Speed                 float64 `toml:"speed"`
	LengthLoop            float64 `toml:"length_loop"`
	LengthStartDelay      float64 `toml:"length_start_delay"`
	LengthAssemblyDelay   float64 `toml:"length_assembly_delay"`
	LengthRingAssembly    float64 `toml:"length_ring_assembly"`
	LengthSliceAssembly   float64 `toml:"length_slice_assembly"`
	LengthParticleFade    float64 `toml:"length_particle_fade"`
	LengthBlockFade       float64 `toml:"length_block_fade"`
	LengthBlockHighlight  float64 `toml:"length_block_highlight"`
	LengthSceneFade       float64 `toml:"length_scene_fade"`
	LengthCanvasFade      float64 `toml:"length_canvas_fade"`
	ParticleWaitVariation float64 `toml:"particle_wait_variation"`
}

// CameraConfig controls distance falloff of particle alpha
// DistMax is the farthest a particle is expected to sit from the camera
type CameraConfig struct {
	DistMax      float64 `toml:"dist_max"`
	DistFactor   float64 `toml:"dist_factor"`
	AlphaScaling bool    `toml:"alpha_scaling"`
}

// DisplayConfig holds sprite sizing, the palette name and which ring
// overlays the preview draws
type DisplayConfig struct {
	ResolutionScale float64 `toml:"resolution_scale"`
	ParticleSize    float64 `toml:"particle_size"`
	Palette         string  `toml:"palette"`
	Lines           bool    `toml:"lines"`
	LineAlpha       float64 `toml:"line_alpha"`
	Blocks          bool    `toml:"blocks"`
}

// LayoutConfig controls generation mode
// Workers 0 or 1 runs the single shared stream; more runs per-slice sub-streams
type LayoutConfig struct {
	Seed    uint64   `toml:"seed"`
	Workers int      `toml:"workers"`
	Damage  bool     `toml:"damage"`
	Outline [][2]int `toml:"outline,omitempty"`
}

// Config is the full run configuration, treated as read-only once built
type Config struct {
	Ring    RingConfig    `toml:"ring"`
	Ambient AmbientConfig `toml:"ambient"`
	Timing  TimingConfig  `toml:"timing"`
	Camera  CameraConfig  `toml:"camera"`
	Display DisplayConfig `toml:"display"`
	Layout  LayoutConfig  `toml:"layout"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Ring: RingConfig{
			Slices:         parameter.RingSlices,
			SliceParticles: parameter.SliceParticles,
			Radius:         parameter.RingRadius,
			SliceSize:      parameter.SliceSize,
			SliceWidth:     parameter.SliceWidth,
		},
		Ambient: AmbientConfig{
			Count:  parameter.AmbientParticles,
			Width:  parameter.AmbientWidth,
			Height: parameter.AmbientHeight,
			Drift:  parameter.AmbientDrift,
		},
		Timing: TimingConfig{
			Speed:                 parameter.Speed,
			LengthLoop:            parameter.LengthLoop,
			LengthStartDelay:      parameter.LengthStartDelay,
			LengthAssemblyDelay:   parameter.LengthAssemblyDelay,
			LengthRingAssembly:    parameter.LengthRingAssembly,
			LengthSliceAssembly:   parameter.LengthSliceAssembly,
			LengthParticleFade:    parameter.LengthParticleFade,
			LengthBlockFade:       parameter.LengthBlockFade,
			LengthBlockHighlight:  parameter.LengthBlockHighlight,
			LengthSceneFade:       parameter.LengthSceneFade,
			LengthCanvasFade:      parameter.LengthCanvasFade,
			ParticleWaitVariation: parameter.ParticleWaitVariation,
		},
		Camera: CameraConfig{
			DistMax:      parameter.CameraDistMax,
			DistFactor:   parameter.CameraDistFactor,
			AlphaScaling: true,
		},
		Display: DisplayConfig{
			ResolutionScale: parameter.ResolutionScale,
			ParticleSize:    parameter.ParticleSize,
			Palette:         visual.PaletteBlue.Name,
			Lines:           true,
			LineAlpha:       parameter.LineAlpha,
			Blocks:          true,
		},
		Layout: LayoutConfig{
			Workers: 1,
		},
	}
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	cp := *c
	if c.Layout.Outline != nil {
		cp.Layout.Outline = append([][2]int(nil), c.Layout.Outline...)
	}
	return &cp
}

// OutlineTable returns the configured outline, or the built-in silhouette
func (c *Config) OutlineTable() geometry.Outline {
	if len(c.Layout.Outline) > 0 {
		return geometry.Outline(c.Layout.Outline)
	}
	return geometry.DefaultOutline
}

// SliceHeight is the particle count on the inner and outer walls, corners included
func (c *Config) SliceHeight() int {
	switch {
	case c.Ring.SliceWidth == c.Ring.SliceParticles:
		return 1
	case c.Ring.SliceWidth == c.Ring.SliceParticles/2:
		return 2
	default:
		return c.Ring.SliceParticles/2 - c.Ring.SliceWidth + 2
	}
}

// RingParticleCount is the number of slice particles around the full ring
func (c *Config) RingParticleCount() int {
	return c.Ring.Slices * c.Ring.SliceParticles
}

// TextureSize is the edge of the smallest square holding ring and ambient particles
func (c *Config) TextureSize() int {
	return int(math.Ceil(math.Sqrt(float64(c.RingParticleCount() + c.Ambient.Count))))
}

// StorageSize is the total particle slot count
func (c *Config) StorageSize() int {
	n := c.TextureSize()
	return n * n
}

// AmbientSlots is the number of slots filled with ambient particles
// At least Ambient.Count; texture rounding adds the remainder
func (c *Config) AmbientSlots() int {
	return c.StorageSize() - c.RingParticleCount()
}

// Palette resolves the configured palette name, falling back to blue
func (c *Config) Palette() visual.Palette {
	if p, ok := visual.Palettes[c.Display.Palette]; ok {
		return p
	}
	return visual.PaletteBlue
}
