package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/matrixio"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run[float64](config{}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	require.Equal(t, "Roots:", lines[0])
	require.Equal(t, "Residual:", lines[4])
	require.True(t, strings.HasPrefix(lines[8], "max |eps| = "))
}

func TestRunTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.txt")
	require.NoError(t, os.WriteFile(path, []byte("# 2x+y=5, x+3y=10\n2 1 5\n1 3 10\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run[float64](config{in: path}, &out))
	require.Equal(t, "Roots:\n[1]\n[3]\nResidual:\n[0]\n[0]\nmax |eps| = 0\n", out.String())
}

func TestRunBinaryFileLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.gaus")
	require.NoError(t, matrixio.Save(path, matrix.MustFromRows([][]float32{
		{2, 0, 4},
		{0, 4, 2},
	})))

	var out bytes.Buffer
	require.NoError(t, run[float32](config{in: path, legacy: true}, &out))
	require.True(t, strings.HasPrefix(out.String(), "Roots:\n[2]\n[0.5]\n"), out.String())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	square := filepath.Join(dir, "square.txt")
	require.NoError(t, os.WriteFile(square, []byte("1 2\n3 4\n# square system, not augmented\n"), 0o600))

	var out bytes.Buffer
	err := run[float64](config{in: square}, &out)
	require.ErrorIs(t, err, gauss.ErrIncorrectSize)

	err = run[float64](config{in: square, format: "yaml"}, &out)
	require.ErrorContains(t, err, `unknown format "yaml"`)

	err = run[float64](config{in: filepath.Join(dir, "missing.txt")}, &out)
	require.ErrorIs(t, err, os.ErrNotExist)

	// a text file forced through the binary reader
	err = run[float64](config{in: square, format: "bin"}, &out)
	require.ErrorIs(t, err, matrixio.ErrBadHeader)
	require.Empty(t, out.String())

	// binary files may carry NaN; the solver never sees it
	nan := filepath.Join(dir, "nan.gaus")
	require.NoError(t, matrixio.Save(nan, matrix.MustFromRows([][]float64{{1, math.NaN()}})))
	err = run[float64](config{in: nan}, &out)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Empty(t, out.String())

	// a forged header declaring 2^31×2^31 elements with no data
	forged := filepath.Join(dir, "forged.gaus")
	require.NoError(t, os.WriteFile(forged, []byte{'G', 'A', 'U', 'S', 1, 0, 32, 0, 0, 0, 0, 0x80, 0, 0, 0, 0x80}, 0o600))
	err = run[float32](config{in: forged}, &out)
	require.ErrorIs(t, err, matrixio.ErrTruncated)
}
