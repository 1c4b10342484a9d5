// Package texture lays particles out as the RGBA float data textures, UV
// coordinates and block meshes consumed by the GPU stage, and serializes
// them for external renderers.
package texture

import (
	"fmt"

	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// Channels per texel
const Channels = 4

// PlaneCount is the number of data textures
const PlaneCount = 6

// Plane indices, also the export order
const (
	PlaneInitial = iota
	PlaneSwerve
	PlaneFinal
	PlanePosition
	PlaneDynamic // alpha, brightness, 1, 1
	PlaneStatic  // wait, seed, ambient, damaged
)

var planeNames = [PlaneCount]string{"initial", "swerve", "final", "position", "dynamic", "static"}

// PlaneName returns a plane label for logs
func PlaneName(i int) string {
	if i < 0 || i >= PlaneCount {
		return fmt.Sprintf("plane(%d)", i)
	}
	return planeNames[i]
}

// DataTextures holds one square RGBA float32 texture per plane, row-major in particle order
// UVs holds the texel center lookups the particle vertex stage samples with
type DataTextures struct {
	Size   int
	Planes [PlaneCount][]float32
	UVs    []float32
}

// Pack converts particles into data textures of size x size texels
func Pack(particles []particle.Particle, size int) (*DataTextures, error) {
	if size <= 0 || len(particles) != size*size {
		return nil, fmt.Errorf("texture: %d particles do not fill a %dx%d texture", len(particles), size, size)
	}

	dt := &DataTextures{Size: size, UVs: UVCoords(size)}
	for i := range dt.Planes {
		dt.Planes[i] = make([]float32, len(particles)*Channels)
	}

	for i := range particles {
		p := &particles[i]
		o := i * Channels
		putPosition(dt.Planes[PlaneInitial][o:], p.PositionInitial)
		putPosition(dt.Planes[PlaneSwerve][o:], p.PositionSwerve)
		putPosition(dt.Planes[PlaneFinal][o:], p.PositionFinal)
		putPosition(dt.Planes[PlanePosition][o:], p.Position)
		put(dt.Planes[PlaneDynamic][o:], p.Alpha, p.Brightness, 1, 1)
		put(dt.Planes[PlaneStatic][o:], p.Wait, p.Seed, particle.Flag(p.Ambient), particle.Flag(p.Damaged))
	}
	return dt, nil
}

// Texel returns the four channels of plane at particle index i
func (dt *DataTextures) Texel(plane, i int) [Channels]float32 {
	var t [Channels]float32
	copy(t[:], dt.Planes[plane][i*Channels:])
	return t
}

func putPosition(dst []float32, v vmath.Vec3F) {
	put(dst, v.X, v.Y, v.Z, 1)
}

func put(dst []float32, r, g, b, a float64) {
	dst[0] = float32(r)
	dst[1] = float32(g)
	dst[2] = float32(b)
	dst[3] = float32(a)
}
