package frame

import "math"

// Block shading
const (
	blockAppearancePad  = 50
	blockAlphaBase      = 0.05
	blockVerticalMax    = 1.1
	blockHighlightSpan  = 0.5
	blockHighlightDecay = 33.5
	blockHighlightGain  = 8.5
)

// BlockAppearance is the delay at which the block of a ring particle with
// wait starts to fade in, just after the particle has landed
func BlockAppearance(wait float64, u *Uniforms) float64 {
	return wait + u.LengthSceneFade + u.LengthStartDelay + u.LengthSliceAssembly + blockAppearancePad
}

// BlockFactors returns the fade in and highlight progress of a block, both
// in [0, 1] and zero before the block appears
// The highlight stretches by up to half its length as the loop runs
func BlockFactors(wait float64, u *Uniforms) (fade, highlight float64) {
	since := u.DelayTime - BlockAppearance(wait, u)
	if since <= 0 {
		return 0, 0
	}
	fade = math.Min(since/u.LengthBlockFade, 1)
	loop := math.Mod(u.DelayTime, u.LengthLoop) / u.LengthLoop
	length := u.LengthBlockHighlight + loop*u.LengthBlockHighlight*blockHighlightSpan
	highlight = math.Min(since/length, 1)
	return fade, highlight
}

// BlockVerticalFactor dims blocks near the ring's equator
// Unlike particles, blocks at the edges go slightly above full strength
func BlockVerticalFactor(y float64) float64 {
	return math.Min(math.Max(math.Abs(y/verticalSpan), verticalFloor)*verticalBoost, blockVerticalMax)
}

// BlockAlpha is the face alpha of the block at height y around a particle with wait
// texel is the highlight texture sample in [0, 1]; the flash fades as highlight completes
func BlockAlpha(wait, y, texel float64, u *Uniforms) float64 {
	fade, highlight := BlockFactors(wait, u)
	if fade == 0 {
		return 0
	}
	base := fade * blockAlphaBase * BlockVerticalFactor(y) * u.SceneFadeOut
	flash := (1 - highlight) / blockHighlightDecay * fade * texel * blockHighlightGain
	return base + flash
}
