package texture

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Export header, 16 bytes little-endian: [Magic:4][Version:2][Planes:2][Size:4][Channels:4]
// Version 2 appends the UV section after the planes
const (
	HeaderSize        = 16
	FormatVersion     = 2
	MeshFormatVersion = 1
)

var (
	magic     = [4]byte{'H', '3', 'P', 'T'}
	meshMagic = [4]byte{'H', '3', 'B', 'M'}
)

var (
	ErrBadMagic   = errors.New("texture: not a particle texture export")
	ErrBadVersion = errors.New("texture: unsupported export version")
	ErrBadHeader  = errors.New("texture: inconsistent header")
)

// WriteTo writes the header, every plane in plane order, then Size*Size*UVStride UV values
func (dt *DataTextures) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	header := make([]byte, HeaderSize)
	copy(header[0:4], magic[:])
	binary.LittleEndian.PutUint16(header[4:6], FormatVersion)
	binary.LittleEndian.PutUint16(header[6:8], PlaneCount)
	binary.LittleEndian.PutUint32(header[8:12], uint32(dt.Size))
	binary.LittleEndian.PutUint32(header[12:16], Channels)
	if _, err := cw.Write(header); err != nil {
		return cw.n, err
	}

	buf := make([]byte, 4)
	for i, plane := range dt.Planes {
		for _, v := range plane {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
			if _, err := cw.Write(buf); err != nil {
				return cw.n, fmt.Errorf("texture: write %s: %w", PlaneName(i), err)
			}
		}
	}

	uvs := dt.UVs
	if len(uvs) != dt.Size*dt.Size*UVStride {
		uvs = UVCoords(dt.Size)
	}
	for _, v := range uvs {
		binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
		if _, err := cw.Write(buf); err != nil {
			return cw.n, fmt.Errorf("texture: write uv: %w", err)
		}
	}
	return cw.n, bw.Flush()
}

// Read decodes an export written by WriteTo
func Read(r io.Reader) (*DataTextures, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if [4]byte(header[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint16(header[4:6]); v != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, v)
	}
	planes := binary.LittleEndian.Uint16(header[6:8])
	size := binary.LittleEndian.Uint32(header[8:12])
	channels := binary.LittleEndian.Uint32(header[12:16])
	if planes != PlaneCount || channels != Channels || size == 0 {
		return nil, fmt.Errorf("%w: planes=%d channels=%d size=%d", ErrBadHeader, planes, channels, size)
	}

	dt := &DataTextures{Size: int(size)}
	texels := int(size) * int(size)
	for i := range dt.Planes {
		plane, err := readFloats(r, texels*Channels)
		if err != nil {
			return nil, fmt.Errorf("texture: read %s: %w", PlaneName(i), err)
		}
		dt.Planes[i] = plane
	}
	uvs, err := readFloats(r, texels*UVStride)
	if err != nil {
		return nil, fmt.Errorf("texture: read uv: %w", err)
	}
	dt.UVs = uvs
	return dt, nil
}

func readFloats(r io.Reader, n int) ([]float32, error) {
	raw := make([]byte, n*4)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for j := range out {
		out[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[j*4:]))
	}
	return out, nil
}

// WriteTo writes the block mesh: a 16 byte header [Magic:4][Version:2][Stride:2][Vertices:4][UVStride:4]
// then vertices, UVs and indices
func (m *BlockMesh) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	header := make([]byte, HeaderSize)
	copy(header[0:4], meshMagic[:])
	binary.LittleEndian.PutUint16(header[4:6], MeshFormatVersion)
	binary.LittleEndian.PutUint16(header[6:8], VertexStride)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(m.Indices)))
	binary.LittleEndian.PutUint32(header[12:16], UVStride)
	if _, err := cw.Write(header); err != nil {
		return cw.n, err
	}

	buf := make([]byte, 4)
	for _, section := range [][]float32{m.Vertices, m.UVs} {
		for _, v := range section {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
			if _, err := cw.Write(buf); err != nil {
				return cw.n, fmt.Errorf("texture: write mesh: %w", err)
			}
		}
	}
	for _, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf, idx)
		if _, err := cw.Write(buf); err != nil {
			return cw.n, fmt.Errorf("texture: write mesh: %w", err)
		}
	}
	return cw.n, bw.Flush()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
