package parameter

// Camera falloff
const (
	// CameraDistMax is the farthest distance particles are expected to be from the camera
	CameraDistMax = 14.0

	// CameraDistFactor multiplies camera-distance dependent alpha falloff
	CameraDistFactor = 1.65

	// CameraClipNear and CameraClipFade bound the near-plane alpha ramp
	CameraClipNear = 0.05
	CameraClipFade = 0.5

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 50.0
)

// CameraPositionPath is the camera flight path control points, evaluated over the loop
var CameraPositionPath = [][3]float64{
	{-2.5, -0.2, 1.3},
	{-2.5, 0.11, 2.9},
	{1.2, 0.175, 5.4},
	{2.2, 0.19, 1.8},
	{2.5, 0.175, 1.1},
}

// CameraFocusPath is the look-at target control points
var CameraFocusPath = [][3]float64{
	{-3, 0, 0},
	{-2.1, -0.045, 3.3},
	{2.88, -0.02, 3.3},
	{2.9, -0.15, -0.5},
}
