package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/polycubes/voxel"
)

const (
	magic = "PCUB"
	// formatVersion changes whenever the byte layout below changes.
	formatVersion = 1
	// maxExtent bounds a decoded dimension so corrupt input cannot force a
	// huge allocation.
	maxExtent = 1 << 12
)

// Encode serialises shapes into one record.
func Encode(shapes []*voxel.Grid) []byte {
	buf := make([]byte, 0, len(magic)+8+len(shapes)*8)
	buf = append(buf, magic...)
	buf = binary.AppendUvarint(buf, formatVersion)
	buf = binary.AppendUvarint(buf, uint64(len(shapes)))
	for _, g := range shapes {
		for _, d := range g.Dims() {
			buf = binary.AppendUvarint(buf, uint64(d))
		}
		packed := make([]byte, (g.Len()+7)/8)
		for i := 0; i < g.Len(); i++ {
			if g.Cell(i) != 0 {
				packed[i/8] |= 1 << (i % 8)
			}
		}
		buf = append(buf, packed...)
	}
	return buf
}

// Decode parses a record produced by Encode. Any structural problem, including
// a grid that is empty or not tight, yields an error wrapping ErrCorrupt and no
// shapes.
func Decode(data []byte) ([]*voxel.Grid, error) {
	if len(data) < len(magic) || string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	r := reader{buf: data[len(magic):]}
	version, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrCorrupt, version)
	}
	count, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	// every grid takes at least four bytes: three extents and one cell byte
	if count > uint64(len(r.buf))/4 {
		return nil, fmt.Errorf("%w: %d shapes cannot fit in %d bytes", ErrCorrupt, count, len(r.buf))
	}
	shapes := make([]*voxel.Grid, 0, count)
	for i := uint64(0); i < count; i++ {
		g, err := r.grid()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, g)
	}
	if len(r.buf) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(r.buf))
	}
	return shapes, nil
}

// reader consumes a record front to back.
type reader struct {
	buf []byte
}

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf)
	if n <= 0 {
		return 0, fmt.Errorf("%w: truncated integer", ErrCorrupt)
	}
	r.buf = r.buf[n:]
	return v, nil
}

func (r *reader) grid() (*voxel.Grid, error) {
	var dims [3]int
	for a := range dims {
		d, err := r.uvarint()
		if err != nil {
			return nil, err
		}
		if d < 1 || d > maxExtent {
			return nil, fmt.Errorf("%w: extent %d out of range", ErrCorrupt, d)
		}
		dims[a] = int(d)
	}
	cells := dims[0] * dims[1] * dims[2]
	size := (cells + 7) / 8
	if size > len(r.buf) {
		return nil, fmt.Errorf("%w: truncated cells", ErrCorrupt)
	}
	packed := r.buf[:size]
	r.buf = r.buf[size:]

	raw := make([]byte, cells)
	for i := range raw {
		raw[i] = (packed[i/8] >> (i % 8)) & 1
	}
	if tail := cells % 8; tail != 0 && packed[size-1]>>tail != 0 {
		return nil, fmt.Errorf("%w: padding bits set", ErrCorrupt)
	}
	g, err := voxel.FromCells(dims[0], dims[1], dims[2], raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !g.IsTight() {
		return nil, fmt.Errorf("%w: grid %v is not tight", ErrCorrupt, dims)
	}
	return g, nil
}
