// SPDX-License-Identifier: MIT
// Package matrix - augmented-system helpers and elementwise kernels.
//
// Determinism:
//   - Fixed loop orders (row ascending, then column ascending); no maps.
//   - Products are rounded to T before accumulation so float32 results do
//     not depend on the compiler fusing multiply-add.

package matrix

import "fmt"

// SubAssign performs m -= other elementwise, in place.
// Both operands must have identical shapes; a mismatch is a programmer
// error and panics. Use Sub for the error-returning variant.
// Complexity: O(r*c).
func (m *Dense[T]) SubAssign(other *Dense[T]) {
	if m.c != other.c {
		panic(fmt.Sprintf("matrix: SubAssign: cols %d != %d: %v", m.c, other.c, ErrDimensionMismatch))
	}
	if m.r != other.r {
		panic(fmt.Sprintf("matrix: SubAssign: rows %d != %d: %v", m.r, other.r, ErrDimensionMismatch))
	}
	for i := range m.data {
		m.data[i] -= other.data[i]
	}
}

// Sub returns a fresh a − b. Operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T Real](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := a.Clone()
	out.SubAssign(b)

	return out, nil
}

// RHS extracts the last column (index Cols()-1) as a Rows()×1 column:
// the right-hand side b of an augmented matrix [A | b].
// A matrix with zero columns yields a Rows()×1 zero column.
func (m *Dense[T]) RHS() *Dense[T] {
	out := &Dense[T]{r: m.r, c: 1, data: make([]T, m.r)}
	if m.c == 0 {
		return out
	}
	last := m.c - 1
	for i := 0; i < m.r; i++ {
		out.data[i] = m.data[i*m.c+last]
	}

	return out
}

// CalculateRight multiplies the leading columns of m by a root column.
// MAIN DESCRIPTION:
//   - For each row i: out[i] = Σ_k roots[k][0] * m[i][k], k = 0..roots.Rows()-1.
//   - For an augmented [A | b] and a solution x this is A·x; the trailing
//     b column is ignored.
//
// Implementation:
//   - Stage 1: check roots.Rows() <= Cols(); else panic (programmer error).
//   - Stage 2: for each row, accumulate products in ascending k, rounding
//     every product to T before it is added.
//
// Inputs:
//   - roots: k×1 column with k <= Cols().
//
// Returns:
//   - *Dense[T]: fresh Rows()×1 column; m and roots are not mutated.
//
// Determinism:
//   - Fixed summation order, so float32 results are reproducible.
//
// Complexity:
//   - Time O(r*k), Space O(r).
func (m *Dense[T]) CalculateRight(roots *Dense[T]) *Dense[T] {
	k := roots.r
	if k > m.c {
		panic(fmt.Sprintf("matrix: CalculateRight: %d roots for %d columns: %v", k, m.c, ErrDimensionMismatch))
	}
	out := &Dense[T]{r: m.r, c: 1, data: make([]T, m.r)}
	var (
		acc  T
		base int
	)
	for i := 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j := 0; j < k; j++ {
			acc += T(roots.data[j*roots.c] * m.data[base+j])
		}
		out.data[i] = acc
	}

	return out
}

// Apply replaces every element v with fn(v), in place, row by row.
func (m *Dense[T]) Apply(fn func(T) T) {
	for i := range m.data {
		m.data[i] = fn(m.data[i])
	}
}

// Abs replaces every element with its absolute value, in place.
func (m *Dense[T]) Abs() {
	m.Apply(abs[T])
}

// MaxAbs returns max |m[i][j]|, or 0 for an empty matrix.
func (m *Dense[T]) MaxAbs() T {
	var best T
	for _, v := range m.data {
		if a := abs(v); a > best {
			best = a
		}
	}

	return best
}
