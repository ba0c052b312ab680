// Package matrix_test contains unit tests for the generic Dense matrix.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects negative dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[float64](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New[float32](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewZeroFilled verifies shape accessors and zero initialization.
func TestNewZeroFilled(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.New[float64](rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	for i := 0; i < rows; i++ {
		require.Equal(t, []float64{0, 0, 0, 0}, m.Row(i))
	}
}

// TestNewColumn verifies the size×1 shorthand.
func TestNewColumn(t *testing.T) {
	c, err := matrix.NewColumn[float32](5)
	require.NoError(t, err)
	require.Equal(t, 5, c.Rows())
	require.Equal(t, 1, c.Cols())
}

// TestEmptyMatrix checks that 0×0 is a legal shape.
func TestEmptyMatrix(t *testing.T) {
	m, err := matrix.FromRows[float64](nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, "", m.String())
	require.Equal(t, float64(0), m.MaxAbs())
}

func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	// the literal is copied, not aliased
	src[0][0] = 100
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestFromRowsRagged ensures rows of unequal length are rejected.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	require.Panics(t, func() {
		matrix.MustFromRows([][]float32{{1}, {2, 3}})
	})
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustNew[float64](t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowIsLive verifies that writes through Row are visible via At and
// that a row slice cannot grow into its neighbour.
func TestRowIsLive(t *testing.T) {
	m := mustNew[float64](t, 2, 3)

	row := m.Row(0)
	row[2] = 7.5
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	require.Equal(t, 3, cap(row))
	_ = append(row, 99)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestRowOutOfRangePanics(t *testing.T) {
	m := mustNew[float32](t, 2, 2)
	require.Panics(t, func() { m.Row(2) })
	require.Panics(t, func() { m.Row(-1) })
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.True(t, clone.Equal(m))

	clone.Row(0)[0] = 3.0
	require.False(t, clone.Equal(m))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

func TestEqual(t *testing.T) {
	a := matrix.MustFromRows([][]float32{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]float32{{1, 2}, {3, 4}})
	require.True(t, a.Equal(b))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			c := b.Clone()
			c.Row(i)[j] += 1
			require.False(t, a.Equal(c), "element (%d,%d) changed", i, j)
		}
	}

	// same element count, different shape
	flat := matrix.MustFromRows([][]float32{{1, 2, 3, 4}})
	require.False(t, a.Equal(flat))

	var nilM *matrix.Dense[float32]
	require.False(t, a.Equal(nilM))
	require.True(t, nilM.Equal(nil))
}

func TestEqualApprox(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}})
	b := matrix.MustFromRows([][]float64{{1 + 1e-10, 2 - 1e-10}})
	require.False(t, a.Equal(b))
	require.True(t, a.EqualApprox(b, 1e-9))
	require.True(t, a.EqualApprox(b, -1e-9))
	require.False(t, a.EqualApprox(b, 1e-11))
}

// TestStringOutput checks the delimited rendering and the legacy concatenated form.
func TestStringOutput(t *testing.T) {
	m := matrix.MustFromRows([][]float64{{1, 2}, {3, 4.5}})

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
	require.Equal(t, "[12]\n[34.5]\n", m.Concat())
}

func TestStringFloat32ShortestForm(t *testing.T) {
	m := matrix.MustFromRows([][]float32{{-264.05893}, {0.1}})
	require.Equal(t, "[-264.05893]\n[0.1]\n", m.String())
}
