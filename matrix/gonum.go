// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense (float64).
// gonum rejects empty shapes, so a matrix with zero rows or columns
// returns nil.
func (m *Dense[T]) ToGonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum matrix into a new Dense[T], converting each
// element to T. A nil src returns ErrNilMatrix.
func FromGonum[T Real](src mat.Matrix) (*Dense[T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGo, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := New[T](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGo, err)
	}
	for i := 0; i < r; i++ {
		row := out.Row(i)
		for j := range row {
			row[j] = T(src.At(i, j))
		}
	}

	return out, nil
}
