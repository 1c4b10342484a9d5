package frame

import (
	"math"

	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// Uniforms are the per-frame inputs shared by every particle
type Uniforms struct {
	DelayTime float64

	LengthLoop           float64
	LengthStartDelay     float64
	LengthAssemblyDelay  float64
	LengthRingAssembly   float64
	LengthSliceAssembly  float64
	LengthParticleFade   float64
	LengthBlockFade      float64
	LengthBlockHighlight float64
	LengthSceneFade      float64

	CameraDistMax    float64
	CameraDistFactor float64
	AlphaFade        bool
	Camera           vmath.Vec3F

	SceneFadeIn  float64
	SceneFadeOut float64
}

// NewUniforms fills uniforms for delay with camera at camera
func NewUniforms(cfg *config.Config, delay float64, camera vmath.Vec3F) Uniforms {
	in, out := NewClock(cfg).SceneFades(delay)
	return Uniforms{
		DelayTime:            delay,
		LengthLoop:           cfg.Timing.LengthLoop,
		LengthStartDelay:     cfg.Timing.LengthStartDelay,
		LengthAssemblyDelay:  cfg.Timing.LengthAssemblyDelay,
		LengthRingAssembly:   cfg.Timing.LengthRingAssembly,
		LengthSliceAssembly:  cfg.Timing.LengthSliceAssembly,
		LengthParticleFade:   cfg.Timing.LengthParticleFade,
		LengthBlockFade:      cfg.Timing.LengthBlockFade,
		LengthBlockHighlight: cfg.Timing.LengthBlockHighlight,
		LengthSceneFade:      cfg.Timing.LengthSceneFade,
		CameraDistMax:        cfg.Camera.DistMax,
		CameraDistFactor:     cfg.Camera.DistFactor,
		AlphaFade:            cfg.Camera.AlphaScaling,
		Camera:               camera,
		SceneFadeIn:          in,
		SceneFadeOut:         out,
	}
}

// InterpolateLocation moves along a three point curve: the straight path
// from v1 to v3 is pulled toward v2 most strongly at t = 0.5
func InterpolateLocation(v1, v2, v3 vmath.Vec3F, t float64) vmath.Vec3F {
	path := vmath.V3FAdd(vmath.V3FScale(v1, 1-t), vmath.V3FScale(v3, t))
	m := (0.5 - math.Abs(0.5-t)) * 2
	return vmath.V3FAdd(vmath.V3FScale(path, 1-m), vmath.V3FScale(v2, m))
}

// AssemblyFactor is the flight progress of a ring particle
// Zero until delay passes wait; negative while the assembly delay runs
func AssemblyFactor(p *particle.Particle, u *Uniforms) float64 {
	if u.DelayTime <= p.Wait {
		return 0
	}
	return math.Min((u.DelayTime-p.Wait-u.LengthAssemblyDelay)/u.LengthSliceAssembly, 1)
}

// Position returns the particle position for the frame
func Position(p *particle.Particle, u *Uniforms) vmath.Vec3F {
	if p.Ambient {
		f := math.Min(u.DelayTime/u.LengthLoop, 1)
		return vmath.V3FAdd(p.PositionInitial, vmath.V3FScale(p.PositionFinal, f))
	}
	return InterpolateLocation(p.PositionInitial, p.PositionSwerve, p.PositionFinal, AssemblyFactor(p, u))
}

// AlphaScale combines camera distance falloff with the near clip ramp
func AlphaScale(pos vmath.Vec3F, u *Uniforms) float64 {
	dist := vmath.V3FDistance(pos, u.Camera)
	scale := 1.0
	if u.AlphaFade {
		scale = 1 - dist*u.CameraDistFactor/u.CameraDistMax
	}
	clip := (dist - parameter.CameraClipNear) / (parameter.CameraClipFade - parameter.CameraClipNear)
	return scale * vmath.Clamp01(clip)
}

// Alpha returns the particle alpha for the frame at position pos
func Alpha(p *particle.Particle, pos vmath.Vec3F, u *Uniforms) float64 {
	scale := AlphaScale(pos, u)
	switch {
	case u.DelayTime <= 0:
		return 0
	case u.DelayTime > u.LengthLoop-u.LengthSceneFade:
		// Ring particles are already faded; only ambient ones follow the scene
		return particle.Flag(p.Ambient) * u.SceneFadeOut * scale
	case p.Ambient:
		return u.SceneFadeIn * scale
	case u.DelayTime > p.Wait:
		fadeIn := math.Min((u.DelayTime-p.Wait)/u.LengthParticleFade, 1)
		complete := p.Wait + u.LengthSceneFade + u.LengthStartDelay + u.LengthSliceAssembly
		fadeOut := 1.0
		if u.DelayTime > complete {
			fadeOut = math.Max(1-(u.DelayTime-complete)/u.LengthParticleFade, 0)
		}
		return fadeIn * fadeOut * scale
	default:
		return 0
	}
}

// Step runs the position pass then the alpha pass over particles in place
func Step(particles []particle.Particle, u *Uniforms) {
	for i := range particles {
		p := &particles[i]
		p.Position = Position(p, u)
		p.Alpha = Alpha(p, p.Position, u)
	}
}

// Sprite shading
const (
	spriteCenterFalloff = 3.5
	ringAlphaBoost      = 6.0
	ringAlphaScale      = 0.42
	ambientAlphaBoost   = 1.3
	ambientAlphaMax     = 0.5
	ambientAlphaScale   = 0.95
	verticalFloor       = 0.66
	verticalSpan        = 0.04
	verticalBoost       = 1.1
	ringPointScale      = 1.07
	ambientPointScale   = 2.75
)

// VerticalFactor dims ring particles near the ring's equator
func VerticalFactor(y float64) float64 {
	return math.Min(math.Max(math.Abs(y/verticalSpan), verticalFloor)*verticalBoost, 1)
}

// FragmentAlpha is the displayed alpha at the center of a particle sprite
// Damaged particles are never drawn
func FragmentAlpha(p *particle.Particle, alpha float64) float64 {
	if p.Damaged {
		return 0
	}
	a := alpha / spriteCenterFalloff
	if p.Ambient {
		return math.Min(a*ambientAlphaBoost, ambientAlphaMax) * ambientAlphaScale
	}
	return math.Min(a*ringAlphaBoost, 1) * ringAlphaScale * VerticalFactor(p.Position.Y)
}

// PointSize is the sprite size in pixels with distance scaling
func PointSize(p *particle.Particle, camera vmath.Vec3F, size, resolution float64) float64 {
	dist := vmath.V3FDistance(p.Position, camera)
	s := size
	if dist > 0 {
		s = size / dist
	}
	if p.Ambient {
		s += s * ambientPointScale
	} else {
		s += s * ringPointScale
	}
	return s * resolution
}
