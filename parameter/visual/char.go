package visual

// ParticleChars are ordered from faintest to densest cell
var ParticleChars = [5]rune{
	'·', // U+00B7 single faint particle
	'∙', // U+2219
	'•', // U+2022
	'●', // U+25CF
	'█', // U+2588 fully packed cell
}

// ParticleChar picks a glyph for a cell with normalized intensity in [0, 1]
func ParticleChar(intensity float64) rune {
	if intensity <= 0 {
		return ' '
	}
	i := int(intensity * float64(len(ParticleChars)))
	if i >= len(ParticleChars) {
		i = len(ParticleChars) - 1
	}
	return ParticleChars[i]
}

// LineChar marks guide line cells not covered by particles
const LineChar = '.'
