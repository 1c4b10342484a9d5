package layout

import (
	"context"

	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/random"
	"golang.org/x/sync/errgroup"
)

// ambientChunk is the ambient particle count per parallel task
// Fixed so the output does not depend on the worker count
const ambientChunk = 4096

// runParallel generates every unique slice from its own sub-stream
// Each task writes a disjoint block range; a mirror runs in the same task as its source slice
func (e *Engine) runParallel(ctx context.Context, particles []particle.Particle) (int, error) {
	seed := e.cfg.Layout.Seed
	n := e.cfg.Ring.Slices
	p := e.cfg.Ring.SliceParticles

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Layout.Workers)

	gaps := make([]int, n/2+1)
	for s := 0; s <= n/2; s++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := random.New(random.SubSeed(seed, uint64(s)))
			block := particles[BlockIndex(n, s)*p:][:p]
			gaps[s] = e.fillSlice(block, s, src)
			if s > 0 && s < n/2 {
				mirrorSlice(particles[BlockIndex(n, n-s)*p:][:p], block, src)
			}
			return nil
		})
	}

	ambient := particles[n*p:]
	for c := 0; c*ambientChunk < len(ambient); c++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			end := min((c+1)*ambientChunk, len(ambient))
			src := random.New(random.SubSeed(seed, uint64(n+c)))
			e.fillAmbient(ambient[c*ambientChunk:end], src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	// A cancel between scheduling and Wait can leave tasks unscheduled with no error
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	total := 0
	for _, v := range gaps {
		total += v
	}
	return total, nil
}

// BlockIndex returns the buffer block holding ring slice of slices
func BlockIndex(slices, slice int) int {
	switch {
	case slice == 0:
		return 0
	case slice <= slices/2:
		return 2*slice - 1
	default:
		return 2 * (slices - slice)
	}
}

// BlockSlice is the inverse of BlockIndex
func BlockSlice(slices, block int) int {
	switch {
	case block == 0:
		return 0
	case block%2 == 1:
		return (block + 1) / 2
	default:
		return slices - block/2
	}
}
