package parameter

// Animation timing, in animation milliseconds
const (
	// Speed multiplies wall time into animation time
	Speed = 1.1

	// LengthLoop is the full animation length
	LengthLoop = 80000

	// LengthStartDelay is the time between full canvas visibility and animation start
	LengthStartDelay = 600

	// LengthAssemblyDelay is the time between animation start and ring assembly start
	LengthAssemblyDelay = 2000

	// LengthRingAssembly is the time for every slice to appear
	LengthRingAssembly = 71000

	// LengthSliceAssembly is the flight time of a single particle
	LengthSliceAssembly = 20

	// LengthParticleFade is the fade in (and out) time of each particle
	LengthParticleFade = 1000

	// LengthBlockFade is the fade in time of each ring block
	LengthBlockFade = 70

	// LengthBlockHighlight is the base length of the highlight flash as a block appears
	LengthBlockHighlight = 1000

	// LengthSceneFade is the scene fade out at the end of the loop
	LengthSceneFade = 1500

	// LengthCanvasFade is the canvas fade in before the loop starts
	LengthCanvasFade = 2000

	// ParticleWaitVariation bounds the random flux added to each particle wait
	ParticleWaitVariation = 500
)

// Display
const (
	ResolutionScale = 1.0
	ParticleSize    = 2.2
)
