package texture

import (
	"github.com/Xephorium/Halo3LoadingScreen/curve"
	"github.com/Xephorium/Halo3LoadingScreen/parameter"
	"github.com/shopspring/decimal"
)

// LineVertices returns the vertex angles in degrees of one guide line strip,
// running from -180 through 0 to 180
// resolution must be odd so the middle vertex lands on 0; anything below 3 yields nil
func LineVertices(resolution int) []float32 {
	if resolution < 3 || resolution%2 == 0 {
		return nil
	}
	half := decimal.NewFromInt(int64(resolution-1) / 2)
	full := decimal.NewFromInt(-180)

	angles := make([]float32, resolution)
	for x := range angles {
		a := half.Sub(decimal.NewFromInt(int64(x))).DivRound(half, 20).Mul(full)
		angles[x] = float32(curve.RoundSignificant(a, parameter.LineDigits).InexactFloat64())
	}
	return angles
}
