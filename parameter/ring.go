package parameter

// Ring geometry
const (
	// RingSlices is the number of cross-sectional slices around the full ring (must be even)
	RingSlices = 1950

	// RingRadius is the distance from ring center to each slice center
	RingRadius = 3.0

	// SliceParticles is the particle count per slice (must be even and fit the outline table)
	SliceParticles = 62

	// SliceSize is the spacing between neighbouring slice particles
	SliceSize = 0.006

	// SliceWidth is the number of particles on the top and bottom edges of the ring
	SliceWidth = 4
)

// Ambient particles
const (
	// AmbientParticles is the minimum number of free-drifting background particles
	// Storage rounding to a square texture adds more
	AmbientParticles = 50000

	// AmbientWidth is the horizontal extent of the ambient volume
	AmbientWidth = 5.0

	// AmbientHeight is the vertical extent of the ambient volume
	AmbientHeight = 1.2

	// AmbientDrift scales the per-loop drift vector of ambient particles
	AmbientDrift = 0.8

	// AmbientOffsetX and AmbientOffsetZ shift the ambient volume toward the visible arc
	AmbientOffsetX = 0.7
	AmbientOffsetZ = -0.5

	// AmbientDepthRatio narrows the ambient volume depth relative to its width
	AmbientDepthRatio = 0.8

	// AmbientDriftBias pushes ambient drift toward -X
	AmbientDriftBias = 1.5
)

// Particle jitter
const (
	// JitterTangent scales the initial displacement along the ring plane
	JitterTangent = 0.006

	// JitterVertical scales the initial vertical displacement
	JitterVertical = 0.0005

	// SwerveTangent and SwerveVertical perturb the curve midpoint
	SwerveTangent  = 0.00005
	SwerveVertical = 0.000005

	// SeedFloor clamps per-particle seeds away from near-zero values
	SeedFloor = 0.2

	// WaitDigits is the significant digit count kept for particle wait values
	WaitDigits = 5
)

// Damage easter egg
const (
	// DamageRunChance is the chance that a unique slice starts a damaged run
	DamageRunChance = 0.004

	// DamageRunMax is the longest damaged run in slices
	DamageRunMax = 24

	// DamageScatterChance is the chance a single undamaged ring particle is knocked out
	DamageScatterChance = 0.01
)
