package stegoqr

import (
	"fmt"

	"github.com/yyyoichi/stegoqr/internal/qrgrid"
)

// Matrix is a square grid of QR modules. Matrices are immutable once
// returned by the API; the encoder clones before flipping.
type Matrix struct {
	size    int
	version int
	level   Level
	mask    int
	modules []bool
}

// NewMatrix builds a Matrix from row-major module values, dark=true.
// The side length must be that of a QR version: 17+4·version.
func NewMatrix(modules [][]bool) (*Matrix, error) {
	size := len(modules)
	version, ok := qrgrid.VersionForSize(size)
	if !ok {
		return nil, fmt.Errorf("%w: side %d", ErrInvalidMatrix, size)
	}
	m := newMatrix(size, version, H)
	for y, row := range modules {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d modules, want %d", ErrInvalidMatrix, y, len(row), size)
		}
		for x, v := range row {
			if v {
				m.modules[y*size+x] = true
			}
		}
	}
	return m, nil
}

func newMatrix(size, version int, level Level) *Matrix {
	return &Matrix{
		size:    size,
		version: version,
		level:   level,
		mask:    -1,
		modules: make([]bool, size*size),
	}
}

// Size returns the side length in modules.
func (m *Matrix) Size() int { return m.size }

// Version returns the QR version, 1 to 40.
func (m *Matrix) Version() int { return m.version }

// Level returns the error correction level the matrix was built at.
func (m *Matrix) Level() Level { return m.level }

// MaskPattern returns the mask pattern in [0,7], or -1 when the
// engine does not report it.
func (m *Matrix) MaskPattern() int { return m.mask }

// At reports whether the module at (x, y) is dark. Out-of-range
// coordinates are light.
func (m *Matrix) At(x, y int) bool {
	return 0 <= x && x < m.size && 0 <= y && y < m.size && m.modules[y*m.size+x]
}

// Modules returns the module values as row-major rows, dark=true.
// The returned slices are a copy.
func (m *Matrix) Modules() [][]bool {
	rows := make([][]bool, m.size)
	for y := range rows {
		rows[y] = make([]bool, m.size)
		copy(rows[y], m.modules[y*m.size:(y+1)*m.size])
	}
	return rows
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := *m
	out.modules = make([]bool, len(m.modules))
	copy(out.modules, m.modules)
	return &out
}

func (m *Matrix) set(x, y int, v bool) {
	m.modules[y*m.size+x] = v
}

func (m *Matrix) flip(x, y int) {
	m.modules[y*m.size+x] = !m.modules[y*m.size+x]
}
