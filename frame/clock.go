// Package frame is the CPU reference of the per-frame particle update: the
// clock that turns wall time into loop delay, the camera path, and the
// position and alpha formulas the GPU stage evaluates for every particle.
package frame

import (
	"math"
	"time"

	"github.com/Xephorium/Halo3LoadingScreen/config"
)

// Clock maps elapsed wall time onto the repeating animation loop
type Clock struct {
	Speed      float64
	StartDelay float64
	Loop       float64
	SceneFade  float64
	CanvasFade float64
}

// NewClock takes the loop timing from cfg
func NewClock(cfg *config.Config) Clock {
	return Clock{
		Speed:      cfg.Timing.Speed,
		StartDelay: cfg.Timing.LengthStartDelay,
		Loop:       cfg.Timing.LengthLoop,
		SceneFade:  cfg.Timing.LengthSceneFade,
		CanvasFade: cfg.Timing.LengthCanvasFade,
	}
}

// Delay returns the animation delay time for elapsed wall time
// Zero during the start delay of every loop
func (c Clock) Delay(elapsed time.Duration) float64 {
	t := float64(elapsed.Microseconds()) / 1000 * c.Speed
	base := math.Mod(t, c.StartDelay+c.Loop)
	return math.Max(base-c.StartDelay, 0)
}

// LoopFactor is loop progress in [0, 1], driving the camera path
func (c Clock) LoopFactor(delay float64) float64 {
	return math.Min(delay/c.Loop, 1)
}

// SceneFades returns the scene fade in and fade out factors
func (c Clock) SceneFades(delay float64) (in, out float64) {
	in = math.Min(delay/c.SceneFade, 1)
	out = 1
	if delay > c.Loop-c.SceneFade {
		out = math.Max((c.Loop-delay)/c.SceneFade, 0)
	}
	return in, out
}

// Cycle is the wall time of one loop including its start delay
func (c Clock) Cycle() time.Duration {
	if c.Speed <= 0 {
		return 0
	}
	ms := (c.StartDelay + c.Loop) / c.Speed
	return time.Duration(ms * float64(time.Millisecond))
}

// Canvas is the one-time fade in of the whole canvas after elapsed wall time
// It runs once at startup, not per loop
func (c Clock) Canvas(elapsed time.Duration) float64 {
	if c.CanvasFade <= 0 {
		return 1
	}
	ms := float64(elapsed.Microseconds()) / 1000
	return math.Min(math.Max(ms/c.CanvasFade, 0), 1)
}
