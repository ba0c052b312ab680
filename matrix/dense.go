// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the index formula i*cols + j.
//   - Expose each row as a live slice (Row) for elimination kernels.
//   - Keep At/Set safe: they return errors instead of panicking.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a row-major matrix of T values with a shape fixed at construction.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[T Real] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows >= 0 and cols >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer; make() zero-fills it.
//
// Behavior highlights:
//   - A 0×0 matrix is legal and models an empty literal.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//
// Returns:
//   - *Dense[T]: newly allocated zero matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Real](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewColumn creates a size×1 zero column matrix. Shorthand for New(size, 1).
func NewColumn[T Real](size int) (*Dense[T], error) {
	return New[T](size, 1)
}

// FromRows builds a Dense from row-major literal values.
// MAIN DESCRIPTION:
//   - Literal constructor; the shape is inferred as len(values)×len(values[0]).
//
// Implementation:
//   - Stage 1: empty input yields a 0×0 matrix.
//   - Stage 2: allocate via New.
//   - Stage 3: copy row by row, rejecting any row whose length differs
//     from the first.
//
// Inputs:
//   - values: row-major literal; copied, the caller keeps ownership.
//
// Returns:
//   - *Dense[T]: matrix holding a copy of values.
//
// Errors:
//   - ErrRaggedRows wrapped with the offending row index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Values are stored as given; NaN and ±Inf pass through. Use
//     ValidateFinite where finite input is required.
func FromRows[T Real](values [][]T) (*Dense[T], error) {
	if len(values) == 0 {
		return New[T](0, 0)
	}
	rows, cols := len(values), len(values[0])
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on error.
// Intended for literal matrices in tests, examples and program setup.
func MustFromRows[T Real](values [][]T) *Dense[T] {
	m, err := FromRows(values)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Row returns row i as a live slice of length Cols(); writes through the
// slice mutate the matrix. The slice capacity is clipped to the row, so
// append never spills into row i+1.
// Panics if i is out of range (programmer error); use At/Set for checked access.
func (m *Dense[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method name.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and other have the same shape and exactly equal
// elements. Two nil matrices are equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox is like Equal but accepts |a-b| <= tol per element.
// A negative tol is treated as |tol|.
func (m *Dense[T]) EqualApprox(other *Dense[T], tol T) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	tol = abs(tol)
	for i := range m.data {
		if abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}

	return true
}

// String renders one row per line as "[v0, v1, ...]\n" using %g.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	return m.format(_fmtSep)
}

// Concat renders rows like String but with no separator between values,
// e.g. "[12]\n[34]\n". It reproduces the legacy console format for
// byte-exact output comparisons; values are ambiguous to read back.
func (m *Dense[T]) Concat() string {
	return m.format("")
}

func (m *Dense[T]) format(sep string) string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(sep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
