// Package geometry maps slice and particle indices onto the ring: slice
// centers on a circle, and per-particle cross-section offsets taken from a
// hand-authored outline table.
package geometry

// Outline lists (col, row) cell offsets from the slice center for one half
// of a slice. The second half reuses the table with the row sign flipped.
// The table is data, not a formula: a different particle count needs a new table.
type Outline [][2]int

// DefaultOutline is the ring cross-section
//
//	        7 8 9
//	        6 . 0
//	    3 4 5 . 1
//	    2 . . . 2
//	9 0 1 . . . 3
//	8 . . . . . 4
//	7 . . . . . 5
//	6 . . . . . 6
//	5 . . . . . 7
//	4 . . . . . 8
//	3 . . . . . 9
//	2 . . . . . 0
//	1 . . . . . 1
//	0 . . . . . 2
//	------x------
var DefaultOutline = Outline{
	{-3, 1}, {-3, 2}, {-3, 3}, {-3, 4}, {-3, 5},
	{-3, 6}, {-3, 7}, {-3, 8}, {-3, 9}, {-3, 10},
	{-2, 10}, {-1, 10}, {-1, 11}, {-1, 12}, {0, 12},
	{1, 12}, {1, 13}, {1, 14}, {2, 14}, {3, 14},
	{3, 13}, {3, 12}, {3, 11}, {3, 10}, {3, 9},
	{3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4},
	{3, 3}, {3, 2}, {3, 1},
}

// Offset is a cross-section offset in outline units
// X runs along the ring's radial direction, Y is vertical
type Offset struct {
	X, Y float64
}

// Supports reports whether the table covers sliceParticles particles
func (o Outline) Supports(sliceParticles int) bool {
	return sliceParticles > 0 && sliceParticles%2 == 0 && sliceParticles/2 <= len(o)
}

// Offset returns the offset of particle p within a slice of sliceParticles
// Indices without a table entry yield the neutral offset and false
func (o Outline) Offset(p, sliceParticles int) (Offset, bool) {
	half := sliceParticles / 2
	if half <= 0 || p < 0 || p >= sliceParticles {
		return Offset{}, false
	}

	i := p % half
	sign := 1.0
	if p >= half {
		sign = -1
	}
	if i >= len(o) {
		return Offset{}, false
	}

	cell := o[i]
	return Offset{
		X: float64(-cell[0]),
		Y: (float64(cell[1]) - 0.5) * sign,
	}, true
}

// Bound returns the largest absolute offset per axis over the whole table
func (o Outline) Bound() Offset {
	var b Offset
	for _, cell := range o {
		x := float64(cell[0])
		if x < 0 {
			x = -x
		}
		y := float64(cell[1]) - 0.5
		if y < 0 {
			y = -y
		}
		b.X = max(b.X, x)
		b.Y = max(b.Y, y)
	}
	return b
}
