package layout

import (
	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/curve"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/random"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
	"github.com/shopspring/decimal"
)

// waitStep is the base wait added per slice
// The half-ring slice lands on ring assembly minus slice assembly
func waitStep(cfg *config.Config) decimal.Decimal {
	window := decimal.NewFromFloat(cfg.Timing.LengthRingAssembly).
		Sub(decimal.NewFromFloat(cfg.Timing.LengthSliceAssembly))
	half := decimal.NewFromInt(int64(cfg.Ring.Slices)).Div(decimal.NewFromInt(2))
	return window.Div(half)
}

// BaseWait returns the jitter-free wait of slice
func BaseWait(cfg *config.Config, slice int) decimal.Decimal {
	return waitStep(cfg).Mul(decimal.NewFromInt(int64(slice)))
}

func seedValue(src *random.Source) float64 {
	return src.Clamped(parameter.SeedFloor)
}

// activeParticle builds a ring particle flying in to final
// Draw order: initial x, y, z; swerve x, y, z; wait; seed
func (e *Engine) activeParticle(src *random.Source, final vmath.Vec3F, fx, fz float64, base decimal.Decimal) particle.Particle {
	p := particle.New()
	p.PositionFinal = final

	p.PositionInitial = vmath.Vec3F{
		X: final.X + src.MinMagnitude()*parameter.JitterTangent*fx,
		Y: final.Y + src.Signed()*parameter.JitterVertical,
		Z: final.Z + src.MinMagnitude()*parameter.JitterTangent*fz,
	}

	mid := curve.Midpoint(final, p.PositionInitial)
	p.PositionSwerve = vmath.Vec3F{
		X: mid.X - src.Signed()*parameter.SwerveTangent,
		Y: mid.Y - src.Signed()*parameter.SwerveVertical,
		Z: mid.Z - src.Signed()*parameter.SwerveTangent,
	}

	p.Position = p.PositionInitial

	jitter := decimal.NewFromFloat(src.Signed()).Mul(decimal.NewFromFloat(e.cfg.Timing.ParticleWaitVariation))
	p.Wait = curve.RoundSignificant(base.Add(jitter), parameter.WaitDigits).InexactFloat64()

	p.Seed = seedValue(src)
	return p
}

// ambientParticle builds a free-drifting background particle
// PositionFinal is a drift vector applied over one loop
func (e *Engine) ambientParticle(src *random.Source) particle.Particle {
	a := e.cfg.Ambient
	p := particle.New()

	p.PositionInitial = vmath.Vec3F{
		X: src.Signed()*a.Width + parameter.AmbientOffsetX,
		Y: src.Signed() * a.Height,
		Z: src.Signed()*(a.Width*parameter.AmbientDepthRatio) + parameter.AmbientOffsetZ,
	}
	p.PositionFinal = vmath.Vec3F{
		X: (src.Signed() - parameter.AmbientDriftBias) * a.Drift,
		Y: src.Signed() * a.Drift,
		Z: src.Signed() * a.Drift,
	}
	p.Position = p.PositionInitial
	p.Ambient = true
	return p
}

func (e *Engine) fillAmbient(dst []particle.Particle, src *random.Source) {
	for i := range dst {
		dst[i] = e.ambientParticle(src)
	}
}
