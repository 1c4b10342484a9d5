package frame

import (
	"fmt"

	"github.com/Xephorium/Halo3LoadingScreen/curve"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// CameraPath flies the camera and its look-at target over one loop
// Not safe for concurrent use
type CameraPath struct {
	position *curve.Interpolator
	focus    *curve.Interpolator
}

// NewCameraPath builds the stock camera flight
func NewCameraPath() (*CameraPath, error) {
	return NewCameraPathFrom(toVectors(parameter.CameraPositionPath), toVectors(parameter.CameraFocusPath))
}

// NewCameraPathFrom builds a camera flight from explicit control points
func NewCameraPathFrom(position, focus []vmath.Vec3F) (*CameraPath, error) {
	pos, err := curve.New(position)
	if err != nil {
		return nil, fmt.Errorf("camera position: %w", err)
	}
	foc, err := curve.New(focus)
	if err != nil {
		return nil, fmt.Errorf("camera focus: %w", err)
	}
	return &CameraPath{position: pos, focus: foc}, nil
}

// At returns camera position and focus for loop progress in [0, 1]
func (c *CameraPath) At(progress float64) (position, focus vmath.Vec3F) {
	return c.position.Point(progress), c.focus.Point(progress)
}

func toVectors(points [][3]float64) []vmath.Vec3F {
	out := make([]vmath.Vec3F, len(points))
	for i, p := range points {
		out[i] = vmath.Vec3F{X: p[0], Y: p[1], Z: p[2]}
	}
	return out
}
