package vmath

// Vec3 is a 3D vector in Q32.32 fixed-point
// Used by the preview projector for camera-space math
type Vec3 struct {
	X, Y, Z int64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s int64) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

func V3Dot(a, b Vec3) int64 {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y) + Mul(a.Z, b.Z)
}

// V3Cross returns a x b
func V3Cross(a, b Vec3) Vec3 {
	return Vec3{
		Mul(a.Y, b.Z) - Mul(a.Z, b.Y),
		Mul(a.Z, b.X) - Mul(a.X, b.Z),
		Mul(a.X, b.Y) - Mul(a.Y, b.X),
	}
}
