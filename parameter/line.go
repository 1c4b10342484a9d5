package parameter

// Ring guide lines
const (
	// LineResolution is the vertex count along each guide line (must be odd)
	LineResolution = 1951

	// LineOffset spaces the duplicate strokes that thicken each line
	LineOffset = 0.0002

	// LineAlpha is the guide line opacity before the scene fade
	LineAlpha = 0.13

	// LineDigits is the significant digit count kept for vertex angles
	LineDigits = 10
)

// Guide line placement, one entry per line: three above the ring plane, three below
var (
	LineHeights = [...]float64{0.0842, 0.0721, 0.06, -0.0842, -0.0721, -0.06}
	LineRadii   = [...]float64{2.9855, 3.009, 3.0149, 2.9855, 3.009, 3.0149}

	// LineFactors scale each line's sweep so the lines lead and trail the assembly
	LineFactors = [...]float64{1.012, 0.973, 0.946, 1.03, 1.054, 0.982}

	// LineProgressPoints shape the sweep over the ring assembly
	LineProgressPoints = []float64{0, 0.2, 0.42, 0.59, 0.8, 1}
)
