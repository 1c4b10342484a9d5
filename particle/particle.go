// Package particle defines the per-particle record shared by layout, texture
// packing and the frame reference shaders.
package particle

import (
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// Particle is one slot of the particle buffer
// For ambient particles PositionFinal holds the per-loop drift vector
type Particle struct {
	PositionInitial vmath.Vec3F
	PositionSwerve  vmath.Vec3F
	PositionFinal   vmath.Vec3F
	Position        vmath.Vec3F

	Alpha      float64
	Wait       float64
	Brightness float64
	Seed       float64
	SliceAngle float64

	Ambient bool
	Damaged bool
}

// New returns a particle at full brightness with every other field zero
func New() Particle {
	return Particle{Brightness: 1}
}

// Mirror reflects p across the XY plane
// Wait, alpha, brightness and flags carry over; the caller supplies a fresh seed
func (p Particle) Mirror(seed float64) Particle {
	m := p
	m.PositionInitial = vmath.V3FMirrorZ(p.PositionInitial)
	m.PositionSwerve = vmath.V3FMirrorZ(p.PositionSwerve)
	m.PositionFinal = vmath.V3FMirrorZ(p.PositionFinal)
	m.Position = vmath.V3FMirrorZ(p.Position)
	m.SliceAngle = -p.SliceAngle
	m.Seed = seed
	return m
}

// Flag converts a boolean to the 1/0 float stored in data textures
func Flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
