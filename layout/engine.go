// Package layout builds the particle buffer for one animation run.
//
// Unique slices cover half the ring plus the opposite slice; the other half
// is mirrored across the XY plane. Slots left after the ring are filled with
// ambient particles. Generation is a one-shot batch: it either completes or
// returns an error with no particles.
//
// Buffer order, P particles per slice, N slices:
//
//	block 0            slice 0
//	block 2s-1, 2s     slice s, then its mirror (ring slice N-s)   1 <= s < N/2
//	block N-1          slice N/2
//	remainder          ambient
package layout

import (
	"context"
	"fmt"
	"log"

	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/geometry"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/random"
	"github.com/shopspring/decimal"
)

// Stats summarizes a generated buffer
type Stats struct {
	Ring        int // directly generated ring particles
	Mirrored    int
	Ambient     int
	Damaged     int
	OutlineGaps int
}

// Result is the immutable output of a layout run
type Result struct {
	Particles   []particle.Particle
	TextureSize int
	Stats       Stats
}

// Engine generates particles for a single validated config
type Engine struct {
	cfg     *config.Config
	outline geometry.Outline
	waitWin decimal.Decimal // wait window divided by half the slice count
}

// NewEngine validates cfg and prepares an engine
func NewEngine(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return &Engine{
		cfg:     cfg,
		outline: cfg.OutlineTable(),
		waitWin: waitStep(cfg),
	}, nil
}

// Generate runs a full layout with a background context
func Generate(cfg *config.Config) (*Result, error) {
	return GenerateContext(context.Background(), cfg)
}

// GenerateContext runs a full layout; ctx only matters in parallel mode
func GenerateContext(ctx context.Context, cfg *config.Config) (*Result, error) {
	e, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

// Run generates the particle buffer
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	particles := make([]particle.Particle, e.cfg.StorageSize())

	var gaps int
	var err error
	if e.cfg.Layout.Workers > 1 {
		gaps, err = e.runParallel(ctx, particles)
	} else {
		gaps = e.runSequential(particles)
	}
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	if gaps > 0 {
		log.Printf("layout: %d particles had no outline entry for %d particles per slice, placed at slice center",
			gaps, e.cfg.Ring.SliceParticles)
	}

	var damaged int
	if e.cfg.Layout.Damage {
		damaged = ApplyDamage(particles, e.cfg)
	}

	n := e.cfg.Ring.Slices
	p := e.cfg.Ring.SliceParticles
	return &Result{
		Particles:   particles,
		TextureSize: e.cfg.TextureSize(),
		Stats: Stats{
			Ring:        (n/2 + 1) * p,
			Mirrored:    (n/2 - 1) * p,
			Ambient:     e.cfg.AmbientSlots(),
			Damaged:     damaged,
			OutlineGaps: gaps,
		},
	}, nil
}

// runSequential draws every value from one stream in buffer order
func (e *Engine) runSequential(particles []particle.Particle) int {
	src := random.New(e.cfg.Layout.Seed)
	n := e.cfg.Ring.Slices
	p := e.cfg.Ring.SliceParticles

	gaps := e.fillSlice(particles[0:p], 0, src)
	for s := 1; s < n/2; s++ {
		block := particles[(2*s-1)*p : 2*s*p]
		gaps += e.fillSlice(block, s, src)
		mirrorSlice(particles[2*s*p:(2*s+1)*p], block, src)
	}
	gaps += e.fillSlice(particles[(n-1)*p:n*p], n/2, src)

	e.fillAmbient(particles[n*p:], src)
	return gaps
}

// fillSlice generates the particles of one unique slice into dst
func (e *Engine) fillSlice(dst []particle.Particle, slice int, src *random.Source) int {
	n := e.cfg.Ring.Slices
	fx, fz := geometry.AngularFactors(slice, n)
	center := geometry.SliceCenter(slice, n, e.cfg.Ring.Radius)
	angle := geometry.SliceAngle(slice, n)
	base := e.waitWin.Mul(decimal.NewFromInt(int64(slice)))

	gaps := 0
	for i := range dst {
		off, ok := e.outline.Offset(i, e.cfg.Ring.SliceParticles)
		if !ok {
			gaps++
		}
		dst[i] = e.activeParticle(src, geometry.ParticleFinal(center, off, e.cfg.Ring.SliceSize, fx, fz), fx, fz, base)
		dst[i].SliceAngle = angle
	}
	return gaps
}

// mirrorSlice reflects src into dst, re-rolling each seed
func mirrorSlice(dst, src []particle.Particle, rng *random.Source) {
	for i := range src {
		dst[i] = src[i].Mirror(seedValue(rng))
	}
}
