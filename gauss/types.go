// Package gauss provides tunable options and error definitions
// for Gaussian elimination over a matrix.Dense.
package gauss

import (
	"errors"

	"github.com/katalvlaran/gauss/matrix"
)

// Sentinel errors for Solve.
var (
	// ErrIncorrectSize is returned when the augmented matrix is not n×(n+1)
	// with n >= 1. It is detected before any elimination step.
	ErrIncorrectSize = errors.New("gauss: augmented matrix must have n rows and n+1 columns")

	// ErrUnableToCalculate is returned when a zero pivot is met during
	// forward or backward elimination; no partial result is produced.
	ErrUnableToCalculate = errors.New("gauss: zero pivot, system cannot be solved without reordering rows")
)

// Operation tags for error wrapping.
const (
	opSolve    = "Solve"
	opForward  = "forward"
	opBackward = "backward"
)

// Phase identifies an elimination phase in hook callbacks.
type Phase int

const (
	// Forward is the reduction to row-echelon form.
	Forward Phase = iota
	// Backward clears entries above the diagonal.
	Backward
)

// String returns "forward" or "backward".
func (p Phase) String() string {
	switch p {
	case Forward:
		return opForward
	case Backward:
		return opBackward
	default:
		return "unknown"
	}
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds callbacks observing elimination. Hooks never alter the
// computation.
type Options struct {
	// OnPivot is called before pivot row `row` is used in the given phase,
	// with the pivot value widened to float64. It is also called for the
	// pivot that turns out to be zero, right before the failure.
	OnPivot func(phase Phase, row int, pivot float64)

	// OnRow is called after targetRow has been reduced by pivotRow.
	OnRow func(phase Phase, pivotRow, targetRow int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnPivot: func(Phase, int, float64) {},
		OnRow:   func(Phase, int, int) {},
	}
}

// WithOnPivot registers a callback invoked before each pivot is used.
func WithOnPivot(fn func(phase Phase, row int, pivot float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

// WithOnRow registers a callback invoked after each row reduction.
func WithOnRow(fn func(phase Phase, pivotRow, targetRow int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRow = fn
		}
	}
}

// Result holds the outcome of a successful Solve:
//   - Roots: the solution x as an n×1 column.
//   - Epsilon: the residual |b − A·x| as an n×1 column, computed against
//     the caller's original matrix.
type Result[T matrix.Real] struct {
	Roots   *matrix.Dense[T]
	Epsilon *matrix.Dense[T]
}

// MaxEpsilon returns the largest residual component.
func (r *Result[T]) MaxEpsilon() T {
	return r.Epsilon.MaxAbs()
}
