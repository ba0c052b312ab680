// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/katalvlaran/gauss/matrix"
)

// maxLineBytes caps a single input line; bufio's 64 KiB default runs out
// at a few thousand columns.
const maxLineBytes = 64 << 20

// bitsOf returns the width of T in bits (32 or 64).
func bitsOf[T matrix.Real]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}

// isFieldSep reports whether r separates values within a row.
func isFieldSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\r'
}

// ReadText parses a matrix in text form from r.
// Rows are separated by newlines or ';'; blank rows are skipped.
// The shape is inferred from the first row; rows of a different length
// yield matrix.ErrRaggedRows, non-numeric tokens ErrSyntax and NaN or
// ±Inf values matrix.ErrNaNInf (all wrapped with the line number).
// A line may hold up to 64 MiB; longer lines fail with bufio.ErrTooLong.
func ReadText[T matrix.Real](r io.Reader) (*matrix.Dense[T], error) {
	bits := bitsOf[T]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	var (
		values [][]T
		line   int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, chunk := range strings.Split(text, ";") {
			fields := strings.FieldsFunc(chunk, isFieldSep)
			if len(fields) == 0 {
				continue
			}
			row := make([]T, len(fields))
			for j, f := range fields {
				v, err := strconv.ParseFloat(f, bits)
				if err != nil {
					return nil, ioErrorf(opReadText, fmt.Errorf("line %d: %q: %w", line, f, ErrSyntax))
				}
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, ioErrorf(opReadText, fmt.Errorf("line %d: %q: %w", line, f, matrix.ErrNaNInf))
				}
				row[j] = T(v)
			}
			if len(values) > 0 && len(row) != len(values[0]) {
				return nil, ioErrorf(opReadText, fmt.Errorf("line %d: %d values, want %d: %w", line, len(row), len(values[0]), matrix.ErrRaggedRows))
			}
			values = append(values, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, ioErrorf(opReadText, err)
	}

	m, err := matrix.FromRows(values)
	if err != nil {
		return nil, ioErrorf(opReadText, err)
	}

	return m, nil
}

// WriteText writes m to w, one row per line, values separated by a single
// space in shortest round-trip form. ReadText reads the output back into
// an equal matrix.
func WriteText[T matrix.Real](w io.Writer, m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opWriteText, err)
	}
	bits := bitsOf[T]()
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.Row(i) {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(float64(v), 'g', -1, bits))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return ioErrorf(opWriteText, err)
	}

	return nil
}
