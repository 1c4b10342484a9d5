package config

import (
	"errors"
	"fmt"

	"github.com/Xephorium/Halo3LoadingScreen/parameter/visual"
)

var (
	ErrOddSlices         = errors.New("ring slice count must be even and at least 2")
	ErrOddSliceParticles = errors.New("slice particle count must be even and positive")
	ErrOutlineTooShort   = errors.New("outline table shorter than half a slice")
	ErrStorage           = errors.New("particle storage smaller than ring plus ambient")
	ErrNonPositive       = errors.New("value must be positive")
	ErrAssemblyTooShort  = errors.New("ring assembly must outlast slice assembly")
	ErrUnknownPalette    = errors.New("unknown palette")
	ErrNegativeParameter = errors.New("value must not be negative")
)

// Validate reports every violated invariant, joined; nil when the config is usable
func (c *Config) Validate() error {
	var errs []error

	if c.Ring.Slices < 2 || c.Ring.Slices%2 != 0 {
		errs = append(errs, fmt.Errorf("ring.slices=%d: %w", c.Ring.Slices, ErrOddSlices))
	}
	if c.Ring.SliceParticles <= 0 || c.Ring.SliceParticles%2 != 0 {
		errs = append(errs, fmt.Errorf("ring.slice_particles=%d: %w", c.Ring.SliceParticles, ErrOddSliceParticles))
	} else if outline := c.OutlineTable(); !outline.Supports(c.Ring.SliceParticles) {
		errs = append(errs, fmt.Errorf("ring.slice_particles=%d needs %d entries, have %d: %w",
			c.Ring.SliceParticles, c.Ring.SliceParticles/2, len(outline), ErrOutlineTooShort))
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"ring.radius", c.Ring.Radius},
		{"ring.slice_size", c.Ring.SliceSize},
		{"timing.speed", c.Timing.Speed},
		{"timing.length_loop", c.Timing.LengthLoop},
		{"timing.length_ring_assembly", c.Timing.LengthRingAssembly},
		{"timing.length_slice_assembly", c.Timing.LengthSliceAssembly},
		{"timing.length_particle_fade", c.Timing.LengthParticleFade},
		{"timing.length_block_fade", c.Timing.LengthBlockFade},
		{"timing.length_block_highlight", c.Timing.LengthBlockHighlight},
		{"timing.length_scene_fade", c.Timing.LengthSceneFade},
		{"camera.dist_max", c.Camera.DistMax},
		{"display.resolution_scale", c.Display.ResolutionScale},
		{"display.particle_size", c.Display.ParticleSize},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			errs = append(errs, fmt.Errorf("%s=%v: %w", p.name, p.value, ErrNonPositive))
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"ambient.count", float64(c.Ambient.Count)},
		{"ambient.width", c.Ambient.Width},
		{"ambient.height", c.Ambient.Height},
		{"ambient.drift", c.Ambient.Drift},
		{"timing.length_start_delay", c.Timing.LengthStartDelay},
		{"timing.length_assembly_delay", c.Timing.LengthAssemblyDelay},
		{"timing.length_canvas_fade", c.Timing.LengthCanvasFade},
		{"timing.particle_wait_variation", c.Timing.ParticleWaitVariation},
		{"display.line_alpha", c.Display.LineAlpha},
		{"layout.workers", float64(c.Layout.Workers)},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			errs = append(errs, fmt.Errorf("%s=%v: %w", p.name, p.value, ErrNegativeParameter))
		}
	}

	if c.Timing.LengthRingAssembly <= c.Timing.LengthSliceAssembly {
		errs = append(errs, fmt.Errorf("timing.length_ring_assembly=%v, timing.length_slice_assembly=%v: %w",
			c.Timing.LengthRingAssembly, c.Timing.LengthSliceAssembly, ErrAssemblyTooShort))
	}

	if c.Display.Palette != "" {
		if _, ok := visual.Palettes[c.Display.Palette]; !ok {
			errs = append(errs, fmt.Errorf("display.palette=%q: %w", c.Display.Palette, ErrUnknownPalette))
		}
	}

	if c.Ring.Slices > 0 && c.Ring.SliceParticles > 0 && c.Ambient.Count >= 0 {
		if c.StorageSize() < c.RingParticleCount()+c.Ambient.Count {
			errs = append(errs, fmt.Errorf("storage %d < %d: %w",
				c.StorageSize(), c.RingParticleCount()+c.Ambient.Count, ErrStorage))
		}
	}

	return errors.Join(errs...)
}
