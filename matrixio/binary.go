// SPDX-License-Identifier: MIT

package matrixio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/gauss/matrix"
)

const (
	headerSize    = 16
	formatVersion = 1
)

var magic = [4]byte{'G', 'A', 'U', 'S'}

// header is the decoded form of the 16-byte file header.
type header struct {
	version    uint16
	bits       uint16
	rows, cols uint32
}

func (h header) dataSize() int64 {
	return int64(h.rows) * int64(h.cols) * int64(h.bits/8)
}

// fits reports whether avail data bytes hold rows*cols elements. The count
// is compared against avail/width so a forged header cannot overflow it.
func (h header) fits(avail int) bool {
	return uint64(h.rows)*uint64(h.cols) <= uint64(avail)/uint64(h.bits/8)
}

func (h header) put(b []byte) {
	copy(b[0:4], magic[:])
	binary.LittleEndian.PutUint16(b[4:6], h.version)
	binary.LittleEndian.PutUint16(b[6:8], h.bits)
	binary.LittleEndian.PutUint32(b[8:12], h.rows)
	binary.LittleEndian.PutUint32(b[12:16], h.cols)
}

func readHeader(b []byte) (header, error) {
	if len(b) < headerSize {
		return header{}, ErrTruncated
	}
	if [4]byte(b[0:4]) != magic {
		return header{}, fmt.Errorf("magic %q: %w", b[0:4], ErrBadHeader)
	}
	h := header{
		version: binary.LittleEndian.Uint16(b[4:6]),
		bits:    binary.LittleEndian.Uint16(b[6:8]),
		rows:    binary.LittleEndian.Uint32(b[8:12]),
		cols:    binary.LittleEndian.Uint32(b[12:16]),
	}
	if h.version != formatVersion {
		return header{}, fmt.Errorf("version %d: %w", h.version, ErrBadHeader)
	}
	if h.bits != 32 && h.bits != 64 {
		return header{}, fmt.Errorf("element width %d: %w", h.bits, ErrBadHeader)
	}

	return h, nil
}

// Save writes m to path in the binary format, creating or truncating the
// file. The file is sized up front and filled through a read-write mapping.
func Save[T matrix.Real](path string, m *matrix.Dense[T]) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opSave, err)
	}
	h := header{
		version: formatVersion,
		bits:    uint16(bitsOf[T]()),
		rows:    uint32(m.Rows()),
		cols:    uint32(m.Cols()),
	}

	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(opSave, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(opSave, cerr)
		}
	}()
	if err = f.Truncate(headerSize + h.dataSize()); err != nil {
		return ioErrorf(opSave, err)
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return ioErrorf(opSave, err)
	}
	h.put(data[:headerSize])
	encode(data[headerSize:], m, h.bits)
	if err = data.Flush(); err != nil {
		_ = data.Unmap()
		return ioErrorf(opSave, err)
	}
	if err = data.Unmap(); err != nil {
		return ioErrorf(opSave, err)
	}

	return nil
}

// Open reads a matrix saved by Save. The file is mapped read-only, decoded
// into a fresh Dense and unmapped before returning, so the result does not
// reference the file.
func Open[T matrix.Real](path string) (*matrix.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opOpen, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErrorf(opOpen, err)
	}
	if info.Size() < headerSize {
		return nil, ioErrorf(opOpen, fmt.Errorf("%d bytes: %w", info.Size(), ErrTruncated))
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioErrorf(opOpen, err)
	}
	defer data.Unmap()

	h, err := readHeader(data)
	if err != nil {
		return nil, ioErrorf(opOpen, err)
	}
	if want := bitsOf[T](); int(h.bits) != want {
		return nil, ioErrorf(opOpen, fmt.Errorf("file has %d-bit elements, want %d: %w", h.bits, want, ErrElemWidth))
	}
	if !h.fits(len(data) - headerSize) {
		return nil, ioErrorf(opOpen, fmt.Errorf("%dx%d of %d-bit elements, have %d data bytes: %w",
			h.rows, h.cols, h.bits, len(data)-headerSize, ErrTruncated))
	}

	m, err := matrix.New[T](int(h.rows), int(h.cols))
	if err != nil {
		return nil, ioErrorf(opOpen, err)
	}
	decode(m, data[headerSize:], h.bits)

	return m, nil
}

// encode writes m's elements row-major into dst as little-endian IEEE-754.
func encode[T matrix.Real](dst []byte, m *matrix.Dense[T], bits uint16) {
	off := 0
	for i := 0; i < m.Rows(); i++ {
		for _, v := range m.Row(i) {
			if bits == 32 {
				binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(float32(v)))
				off += 4
			} else {
				binary.LittleEndian.PutUint64(dst[off:], math.Float64bits(float64(v)))
				off += 8
			}
		}
	}
}

// decode is the inverse of encode.
func decode[T matrix.Real](m *matrix.Dense[T], src []byte, bits uint16) {
	off := 0
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)
		for j := range row {
			if bits == 32 {
				row[j] = T(math.Float32frombits(binary.LittleEndian.Uint32(src[off:])))
				off += 4
			} else {
				row[j] = T(math.Float64frombits(binary.LittleEndian.Uint64(src[off:])))
				off += 8
			}
		}
	}
}
