package texture

import (
	"github.com/Xephorium/Halo3LoadingScreen/curve"
	"github.com/shopspring/decimal"
)

// UVDigits is the significant digit count of each texel coordinate
const UVDigits = 10

// UVCoords returns the texel center of every texel as (u, v) pairs
// Columns are the outer loop, so entry k samples column k/size, row k%size
// Centers are computed in decimal; float division drifts at large sizes
func UVCoords(size int) []float32 {
	if size <= 0 {
		return nil
	}
	pixel := decimal.NewFromInt(1).DivRound(decimal.NewFromInt(int64(size)), 20)
	half := decimal.NewFromFloat(0.5)

	centers := make([]float32, size)
	for i := range centers {
		c := pixel.Mul(decimal.NewFromInt(int64(i)).Add(half))
		centers[i] = float32(curve.RoundSignificant(c, UVDigits).InexactFloat64())
	}

	uv := make([]float32, 0, size*size*2)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			uv = append(uv, centers[x], centers[y])
		}
	}
	return uv
}
