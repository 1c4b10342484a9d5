package geometry

import (
	"math"

	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// AngularFactors returns the x and z direction factors for slice of slices
// The x factor is phase shifted a quarter turn so slice 0 sits at (-1, 0, 0)
func AngularFactors(slice, slices int) (fx, fz float64) {
	turn := 2 * math.Pi * (float64(slice) / float64(slices))
	return math.Sin(turn - math.Pi/2), math.Sin(turn)
}

// SliceCenter places slice on a circle of radius in the XZ plane
func SliceCenter(slice, slices int, radius float64) vmath.Vec3F {
	fx, fz := AngularFactors(slice, slices)
	return vmath.Vec3F{X: fx * radius, Y: 0, Z: fz * radius}
}

// ParticleFinal projects a cross-section offset onto the slice plane
// The radial offset follows the same angular factors as the center
func ParticleFinal(center vmath.Vec3F, off Offset, size, fx, fz float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: center.X + size*off.X*fx,
		Y: center.Y + size*off.Y,
		Z: center.Z + size*off.X*fz,
	}
}

// SliceAngle returns the slice orientation in degrees, 180 at slice 0
func SliceAngle(slice, slices int) float64 {
	return 180 - (float64(slice)/float64(slices))*360
}
