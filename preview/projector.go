package preview

import (
	"math"

	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// Projector maps world points to terminal cells through a pinhole camera
// Camera-space math runs in Q32.32, the basis is built in float once per frame
type Projector struct {
	eye     vmath.Vec3
	right   vmath.Vec3
	up      vmath.Vec3
	forward vmath.Vec3

	near  int64
	focal int64 // cells per unit at depth 1, vertical

	halfW int64
	halfH int64
}

var worldUp = vmath.Vec3F{X: 0, Y: 1, Z: 0}

// NewProjector builds a projector looking from eye toward focus
// fovDeg is the vertical field of view
func NewProjector(eye, focus vmath.Vec3F, width, height int, fovDeg float64) *Projector {
	fwd := vmath.V3FNormalize(vmath.V3FSub(focus, eye))
	if vmath.V3FMagSq(fwd) == 0 {
		fwd = vmath.Vec3F{X: 0, Y: 0, Z: -1}
	}

	right := vmath.V3FNormalize(vmath.V3FCross(fwd, worldUp))
	if vmath.V3FMagSq(right) == 0 {
		right = vmath.Vec3F{X: 1, Y: 0, Z: 0}
	}

	p := &Projector{
		eye:     vmath.V3FToQ32(eye),
		right:   vmath.V3FToQ32(right),
		forward: vmath.V3FToQ32(fwd),
		near:    vmath.FromFloat(parameter.CameraClipNear),
		halfW:   vmath.FromInt(width) / 2,
		halfH:   vmath.FromInt(height) / 2,
	}
	p.up = vmath.V3Cross(p.right, p.forward)

	tanHalf := math.Tan(vmath.Radians(fovDeg) / 2)
	if tanHalf <= 0 {
		tanHalf = 1
	}
	p.focal = vmath.FromFloat(float64(height) / 2 / tanHalf)
	return p
}

// Project returns the cell for pt and its camera depth
// ok is false behind the near plane
func (p *Projector) Project(pt vmath.Vec3F) (x, y int, depth float64, ok bool) {
	d := vmath.V3Sub(vmath.V3FToQ32(pt), p.eye)

	z := vmath.V3Dot(d, p.forward)
	if z < p.near {
		return 0, 0, 0, false
	}

	sx := vmath.Mul(vmath.Div(vmath.V3Dot(d, p.right), z), p.focal)
	sy := vmath.Mul(vmath.Div(vmath.V3Dot(d, p.up), z), p.focal)

	// 2x for terminal cell aspect 1:2
	cx := p.halfW + sx*2
	cy := p.halfH - sy

	return vmath.ToInt(cx), vmath.ToInt(cy), vmath.ToFloat(z), true
}
