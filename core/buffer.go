// Package core holds the terminal-independent frame buffer the preview
// projects particles into, plus crash handling for goroutines that own the
// terminal.
package core

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Cell accumulates particle light landing in one terminal cell
type Cell struct {
	Light float64 // summed particle alpha
	Count int     // particles that landed here
	Depth float64 // nearest particle distance, 0 when empty
}

// Buffer is a 2D grid of cells, reused across frames
type Buffer struct {
	width  int
	height int
	cells  []Cell
	dirty  map[Point]bool // cells touched since the last ClearDirty
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, max(width*height, 0)),
		dirty:  make(map[Point]bool),
	}
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// Resize discards content and reallocates for the new dimensions
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, max(width*height, 0))
	b.dirty = make(map[Point]bool)
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Accumulate adds a particle of alpha at depth to the cell
// Returns false when the position is off-buffer
func (b *Buffer) Accumulate(x, y int, alpha, depth float64) bool {
	if !b.inBounds(x, y) || alpha <= 0 {
		return false
	}
	c := &b.cells[y*b.width+x]
	c.Light += alpha
	c.Count++
	if c.Depth == 0 || depth < c.Depth {
		c.Depth = depth
	}
	b.dirty[Point{X: x, Y: y}] = true
	return true
}

// Clear empties every cell
func (b *Buffer) Clear() {
	clear(b.cells)
	b.dirty = make(map[Point]bool)
}

// DirtyRegions returns all positions touched since the last ClearDirty
func (b *Buffer) DirtyRegions() []Point {
	regions := make([]Point, 0, len(b.dirty))
	for p := range b.dirty {
		regions = append(regions, p)
	}
	return regions
}

func (b *Buffer) ClearDirty() {
	b.dirty = make(map[Point]bool)
}

// Occludes reports whether the cell at x, y already holds a particle nearer than depth
func (b *Buffer) Occludes(x, y int, depth float64) bool {
	if !b.inBounds(x, y) {
		return false
	}
	c := &b.cells[y*b.width+x]
	return c.Count > 0 && c.Depth < depth
}
