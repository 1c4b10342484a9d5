// Package curve evaluates smooth curves through ordered control points using
// repeated linear blending (De Casteljau). Every blend is computed in decimal
// arithmetic and rounded to BlendDigits significant digits, so sub-millimetre
// offsets survive deep blend chains without float64 drift.
package curve

import (
	"errors"

	"github.com/Xephorium/Halo3LoadingScreen/vmath"
	"github.com/shopspring/decimal"
)

// ErrNoPoints is returned when an interpolator is built without control points
var ErrNoPoints = errors.New("curve: at least one control point required")

// Interpolator holds per-axis control values and a reusable scratch triangle
// Not safe for concurrent use
type Interpolator struct {
	axes   [3][]decimal.Decimal
	matrix [][]decimal.Decimal
}

// New creates a 3D interpolator over points
func New(points []vmath.Vec3F) (*Interpolator, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	ip := &Interpolator{}
	for axis := range ip.axes {
		ip.axes[axis] = make([]decimal.Decimal, len(points))
	}
	for i, p := range points {
		ip.axes[0][i] = decimal.NewFromFloat(p.X)
		ip.axes[1][i] = decimal.NewFromFloat(p.Y)
		ip.axes[2][i] = decimal.NewFromFloat(p.Z)
	}
	ip.allocate(len(points))
	return ip, nil
}

// NewScalar creates a 1D interpolator; Y and Z axes stay zero
func NewScalar(values []float64) (*Interpolator, error) {
	points := make([]vmath.Vec3F, len(values))
	for i, v := range values {
		points[i].X = v
	}
	return New(points)
}

func (ip *Interpolator) allocate(n int) {
	ip.matrix = make([][]decimal.Decimal, n)
	for j := range ip.matrix {
		ip.matrix[j] = make([]decimal.Decimal, n-j)
	}
}

// Len returns the control point count
func (ip *Interpolator) Len() int {
	return len(ip.axes[0])
}

// Value returns the first-axis curve value at factor t
func (ip *Interpolator) Value(t float64) float64 {
	return ip.evaluate(ip.axes[0], t).InexactFloat64()
}

// Point returns the curve point at factor t, each axis blended with the same t
func (ip *Interpolator) Point(t float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: ip.evaluate(ip.axes[0], t).InexactFloat64(),
		Y: ip.evaluate(ip.axes[1], t).InexactFloat64(),
		Z: ip.evaluate(ip.axes[2], t).InexactFloat64(),
	}
}

// evaluate fills the triangle for one axis
// Row j entry i blends row j-1 entries i+1 (weight t) and i (weight 1-t)
func (ip *Interpolator) evaluate(values []decimal.Decimal, t float64) decimal.Decimal {
	n := len(values)
	copy(ip.matrix[0], values)

	for j := 1; j < n; j++ {
		prev, row := ip.matrix[j-1], ip.matrix[j]
		for i := 0; i < n-j; i++ {
			row[i] = blend(prev[i+1], prev[i], t)
		}
	}

	return ip.matrix[n-1][0]
}

// Midpoint returns the point halfway between a and b using the blend policy
func Midpoint(a, b vmath.Vec3F) vmath.Vec3F {
	return vmath.Vec3F{
		X: Lerp(a.X, b.X, 0.5),
		Y: Lerp(a.Y, b.Y, 0.5),
		Z: Lerp(a.Z, b.Z, 0.5),
	}
}
