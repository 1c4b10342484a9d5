package frame

import (
	"math"

	"github.com/Xephorium/Halo3LoadingScreen/curve"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// lineLead is how many start delays the guide lines wait before sweeping
const lineLead = 3

// Line is one ring guide line
type Line struct {
	Height float64
	Radius float64
	Factor float64 // sweep multiplier, above 1 leads the assembly
}

// Lines returns the stock guide lines
func Lines() []Line {
	lines := make([]Line, len(parameter.LineHeights))
	for i := range lines {
		lines[i] = Line{
			Height: parameter.LineHeights[i],
			Radius: parameter.LineRadii[i],
			Factor: parameter.LineFactors[i],
		}
	}
	return lines
}

// LineProgress eases raw line completion through the progress curve
// Not safe for concurrent use
type LineProgress struct {
	curve *curve.Interpolator
}

func NewLineProgress() (*LineProgress, error) {
	ip, err := curve.NewScalar(parameter.LineProgressPoints)
	if err != nil {
		return nil, err
	}
	return &LineProgress{curve: ip}, nil
}

// At returns the eased sweep for the frame
func (lp *LineProgress) At(u *Uniforms) float64 {
	return lp.curve.Value(LineCompletion(u))
}

// LineCompletion is the raw sweep progress: zero until three start delays
// pass, then linear over the ring assembly
// Not clamped above; LinePoint clamps the final angle
func LineCompletion(u *Uniforms) float64 {
	return math.Max((u.DelayTime-lineLead*u.LengthStartDelay)/u.LengthRingAssembly, 0)
}

// LinePoint places the vertex at angleDeg in [-180, 180] on line l for an eased
// completion. The sweep grows out of -X in both directions and closes at +X
func LinePoint(l Line, angleDeg, completion float64) vmath.Vec3F {
	s := max(min(angleDeg/180*completion*l.Factor, 1), -1)
	return vmath.Vec3F{
		X: l.Radius * -math.Cos(math.Pi*s),
		Y: l.Height,
		Z: l.Radius * math.Sin(math.Pi*s),
	}
}

// LineAlpha is the guide line opacity for the frame
func LineAlpha(alpha float64, u *Uniforms) float64 {
	return alpha * u.SceneFadeOut
}
