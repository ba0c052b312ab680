package gauss

import (
	"fmt"

	"github.com/katalvlaran/gauss/matrix"
)

// Solve solves the square system encoded by the augmented matrix m = [A | b]
// with naive Gaussian elimination and returns the solution and residual.
//
// Steps:
//  1. Validate: m non-nil and n×(n+1), n >= 1 (else ErrIncorrectSize).
//  2. Clone m; all elimination happens on the clone.
//  3. Forward elimination to row-echelon form.
//  4. Backward elimination to diagonal form.
//  5. Extract x[i] = w[i][n] / w[i][i].
//  6. Residual ε = |RHS(m) − m.CalculateRight(x)|.
//
// Any zero pivot returns ErrUnableToCalculate (wrapped with the phase and
// pivot coordinates). m is never mutated, on success or failure.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve[T matrix.Real](m *matrix.Dense[T], opts ...Option) (*Result[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, solveErrorf(err)
	}
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, solveErrorf(fmt.Errorf("%w: %w", ErrIncorrectSize, err))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &eliminator[T]{w: m.Clone(), n: m.Rows(), opts: o}
	if err := e.forward(); err != nil {
		return nil, solveErrorf(err)
	}
	if err := e.backward(); err != nil {
		return nil, solveErrorf(err)
	}
	roots, err := e.extract()
	if err != nil {
		return nil, solveErrorf(err)
	}

	return &Result[T]{Roots: roots, Epsilon: Residual(m, roots)}, nil
}

// Residual returns |RHS(aug) − aug.CalculateRight(roots)| elementwise: how
// far substituting roots into the augmented system misses its right-hand
// side. roots must have Rows() == aug.Rows().
func Residual[T matrix.Real](aug, roots *matrix.Dense[T]) *matrix.Dense[T] {
	eps := aug.RHS()
	eps.SubAssign(aug.CalculateRight(roots))
	eps.Abs()

	return eps
}

func solveErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}

// eliminator owns the working copy for one Solve call.
type eliminator[T matrix.Real] struct {
	w    *matrix.Dense[T] // working clone, n×(n+1)
	n    int              // number of equations
	opts Options
}

// pivot returns w[i][i] after notifying OnPivot, or ErrUnableToCalculate
// when it is exactly zero.
func (e *eliminator[T]) pivot(phase Phase, i int) (T, error) {
	p := e.w.Row(i)[i]
	e.opts.OnPivot(phase, i, float64(p))
	if p == 0 {
		return 0, fmt.Errorf("%s: pivot (%d,%d): %w", phase, i, i, ErrUnableToCalculate)
	}

	return p, nil
}

// forward reduces the first n columns to upper-triangular form.
// For pivot row i, every row below it loses factor*row(i) over columns
// i..n (the augmented column included).
func (e *eliminator[T]) forward() error {
	cols := e.w.Cols()
	for i := 0; i < e.n-1; i++ {
		p, err := e.pivot(Forward, i)
		if err != nil {
			return err
		}
		src := e.w.Row(i)
		for j := i; j < e.n-1; j++ {
			dst := e.w.Row(j + 1)
			factor := dst[i] / p
			for c := i; c < cols; c++ {
				dst[c] -= T(factor * src[c])
			}
			e.opts.OnRow(Forward, i, j+1)
		}
	}

	return nil
}

// backward clears entries above the diagonal, walking pivots from the
// bottom row up and, for each pivot, the rows above it from nearest to
// farthest. Columns are updated right to left.
func (e *eliminator[T]) backward() error {
	cols := e.w.Cols()
	for i := e.n - 1; i >= 1; i-- {
		p, err := e.pivot(Backward, i)
		if err != nil {
			return err
		}
		src := e.w.Row(i)
		for j := i; j >= 1; j-- {
			dst := e.w.Row(j - 1)
			factor := dst[i] / p
			for k := cols - 1; k >= 0; k-- {
				dst[k] -= T(factor * src[k])
			}
			e.opts.OnRow(Backward, i, j-1)
		}
	}

	return nil
}

// extract reads the solution off the diagonal system: x[i] = w[i][n]/w[i][i].
// Elimination never changes the diagonal of rows it reduces against a lower
// pivot, so the only unchecked diagonal is w[0][0] of a 1×2 system.
func (e *eliminator[T]) extract() (*matrix.Dense[T], error) {
	roots, err := matrix.NewColumn[T](e.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e.n; i++ {
		row := e.w.Row(i)
		if row[i] == 0 {
			return nil, fmt.Errorf("extract: pivot (%d,%d): %w", i, i, ErrUnableToCalculate)
		}
		roots.Row(i)[0] = row[e.n] / row[i]
	}

	return roots, nil
}
