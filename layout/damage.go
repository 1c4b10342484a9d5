package layout

import (
	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/random"
)

// damageStream indexes the sub-stream reserved for damage marking
const damageStream = 1 << 62

// ApplyDamage knocks out runs of adjacent ring slices and scattered single particles
// Runs walk the ring in slice order, so a run may cross the mirror seam
// Positions and waits are left untouched; downstream stages hide damaged particles
// Returns the number of particles marked
func ApplyDamage(particles []particle.Particle, cfg *config.Config) int {
	src := random.New(random.SubSeed(cfg.Layout.Seed, damageStream))
	n := cfg.Ring.Slices
	p := cfg.Ring.SliceParticles

	marked := 0
	run := 0
	for slice := 0; slice < n; slice++ {
		if run == 0 && src.Uniform() < parameter.DamageRunChance {
			run = 1 + src.Intn(parameter.DamageRunMax)
		}
		if run == 0 {
			continue
		}
		run--
		block := particles[BlockIndex(n, slice)*p:][:p]
		for i := range block {
			if !block[i].Damaged {
				block[i].Damaged = true
				marked++
			}
		}
	}

	ring := particles[:n*p]
	for i := range ring {
		if src.Uniform() < parameter.DamageScatterChance && !ring[i].Damaged {
			ring[i].Damaged = true
			marked++
		}
	}
	return marked
}
