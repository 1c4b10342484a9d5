package visual

// RGBA is a normalized color, components in [0, 1]
type RGBA [4]float64

// Palette groups the colors of one scene theme
type Palette struct {
	Name       string
	Background RGBA
	Vignette   RGBA
	Particle   RGBA
	Block      RGBA
	Logo       RGBA
	Line       RGBA
	Grid       RGBA
}

var (
	PaletteBlue = Palette{
		Name:       "blue",
		Background: RGBA{0.06, 0.07, 0.1, 1.0},
		Vignette:   RGBA{0.02, 0.025, 0.04, 1.0},
		Particle:   RGBA{0.5, 0.9, 1.0, 1.0},
		Block:      RGBA{0.28, 0.678, 0.86, 1.0},
		Logo:       RGBA{0.45, 0.82, 1.0, 1.0},
		Line:       RGBA{0.45, 0.8, 1.0, 1.0},
		Grid:       RGBA{0.45, 0.8, 1.0, 1.0},
	}

	// PaletteDamage tints blocks and guide lines red for the damaged ring
	PaletteDamage = Palette{
		Name:       "damage",
		Background: RGBA{0.06, 0.07, 0.1, 1.0},
		Vignette:   RGBA{0.02, 0.025, 0.04, 1.0},
		Particle:   RGBA{0.5, 0.9, 1.0, 1.0},
		Block:      RGBA{0.95, 0.35, 0.35, 1.0},
		Logo:       RGBA{0.45, 0.82, 1.0, 1.0},
		Line:       RGBA{1.0, 0.45, 0.45, 1.0},
		Grid:       RGBA{0.45, 0.8, 1.0, 1.0},
	}

	PaletteVergil = Palette{
		Name:       "vergil",
		Background: RGBA{0.07, 0.07, 0.07, 1.0},
		Vignette:   RGBA{0.02, 0.02, 0.02, 1.0},
		Particle:   RGBA{1.0, 1.0, 1.0, 1.0},
		Block:      RGBA{0.5, 0.7, 0.5, 1.0},
		Logo:       RGBA{0.5, 0.7, 0.5, 1.0},
		Line:       RGBA{0.5, 0.7, 0.5, 1.0},
		Grid:       RGBA{1.0, 1.0, 1.0, 1.0},
	}

	// PaletteDestiny is the light background theme
	PaletteDestiny = Palette{
		Name:       "destiny",
		Background: RGBA{0.8, 0.8, 0.78, 1.0},
		Vignette:   RGBA{0.02, 0.02, 0.02, 1.0},
		Particle:   RGBA{0.1, 0.1, 0.1, 1.0},
		Block:      RGBA{0.1, 0.1, 0.1, 1.0},
		Logo:       RGBA{0.1, 0.1, 0.1, 1.0},
		Line:       RGBA{0.1, 0.1, 0.1, 1.0},
		Grid:       RGBA{0.0, 0.0, 0.0, 1.0},
	}

	PaletteVintage = Palette{
		Name:       "vintage",
		Background: RGBA{0.07, 0.07, 0.07, 1.0},
		Vignette:   RGBA{0.1, 0.1, 0.1, 1.0},
		Particle:   RGBA{1.0, 1.0, 1.0, 1.0},
		Block:      RGBA{0.6, 0.6, 0.6, 1.0},
		Logo:       RGBA{1.0, 1.0, 1.0, 1.0},
		Line:       RGBA{1.0, 1.0, 1.0, 1.0},
		Grid:       RGBA{1.0, 1.0, 1.0, 1.0},
	}
)

// Palettes indexes every theme by name
var Palettes = map[string]Palette{
	PaletteBlue.Name:    PaletteBlue,
	PaletteDamage.Name:  PaletteDamage,
	PaletteVergil.Name:  PaletteVergil,
	PaletteDestiny.Name: PaletteDestiny,
	PaletteVintage.Name: PaletteVintage,
}

// Scale255 converts a normalized component to a byte value
func Scale255(c float64) int32 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return int32(c*255 + 0.5)
}
