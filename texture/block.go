package texture

import (
	"github.com/Xephorium/Halo3LoadingScreen/config"
	"github.com/Xephorium/Halo3LoadingScreen/particle"
	"github.com/Xephorium/Halo3LoadingScreen/vmath"
)

// Block mesh layout
const (
	BlockVertexCount = 36
	VertexStride     = 4 // x, y, z, wait
	UVStride         = 2
)

// BlockScale stretches the unit cube into a ring block
var BlockScale = vmath.Vec3F{X: 0.029, Y: 0.0305235, Z: 0.04845}

// blockVertices is a cube of edge 0.2, two triangles per face, no shared vertices
//
//	  v6----- v5
//	 /|      /|
//	v1------v0|
//	| |     | |
//	| |v7---|-|v4
//	|/      |/
//	v2------v3
var blockVertices = [BlockVertexCount * 3]float64{
	// front
	.1, .1, .1, -.1, .1, .1, -.1, -.1, .1, .1, .1, .1, -.1, -.1, .1, .1, -.1, .1,
	// right
	.1, .1, .1, .1, -.1, .1, .1, -.1, -.1, .1, .1, .1, .1, -.1, -.1, .1, .1, -.1,
	// up
	.1, .1, .1, .1, .1, -.1, -.1, .1, -.1, .1, .1, .1, -.1, .1, -.1, -.1, .1, .1,
	// left
	-.1, .1, .1, -.1, .1, -.1, -.1, -.1, -.1, -.1, .1, .1, -.1, -.1, -.1, -.1, -.1, .1,
	// down
	-.1, -.1, -.1, .1, -.1, -.1, .1, -.1, .1, -.1, -.1, -.1, .1, -.1, .1, -.1, -.1, .1,
	// back
	.1, -.1, -.1, -.1, -.1, -.1, -.1, .1, -.1, .1, -.1, -.1, -.1, .1, -.1, .1, .1, -.1,
}

// blockUVs matches blockVertices one pair per vertex
var blockUVs = [BlockVertexCount * UVStride]float32{
	1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, // front
	0, 1, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, // right
	1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, // up
	1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, // left
	0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, // down
	0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, // back
}

// BlockMesh is the flat vertex, UV and index data of every ring block
type BlockMesh struct {
	Vertices []float32 // VertexStride per vertex
	UVs      []float32 // UVStride per vertex
	Indices  []uint32
}

// Blocks builds one block per ring particle, in buffer order
// W carries the particle wait; damaged blocks wait a full loop and never appear
func Blocks(particles []particle.Particle, cfg *config.Config) *BlockMesh {
	ring := cfg.RingParticleCount()
	if ring > len(particles) {
		ring = len(particles)
	}
	vertices := ring * BlockVertexCount

	m := &BlockMesh{
		Vertices: make([]float32, 0, vertices*VertexStride),
		UVs:      make([]float32, 0, vertices*UVStride),
		Indices:  make([]uint32, vertices),
	}

	var unit [BlockVertexCount]vmath.Vec3F
	for v := range unit {
		unit[v] = vmath.Vec3F{
			X: blockVertices[v*3] * BlockScale.X,
			Y: blockVertices[v*3+1] * BlockScale.Y,
			Z: blockVertices[v*3+2] * BlockScale.Z,
		}
	}

	for i := 0; i < ring; i++ {
		p := &particles[i]
		wait := p.Wait
		if p.Damaged {
			wait = cfg.Timing.LengthLoop
		}
		for v := range unit {
			r := vmath.V3FAdd(p.PositionFinal, vmath.V3FRotateY(unit[v], p.SliceAngle))
			m.Vertices = append(m.Vertices, float32(r.X), float32(r.Y), float32(r.Z), float32(wait))
		}
		m.UVs = append(m.UVs, blockUVs[:]...)
	}

	for i := range m.Indices {
		m.Indices[i] = uint32(i)
	}
	return m
}

// BlockCount returns the number of blocks in the mesh
func (m *BlockMesh) BlockCount() int {
	return len(m.Indices) / BlockVertexCount
}
