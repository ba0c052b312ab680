// Package gauss is a small, self-contained dense linear solver: it solves
// square systems A·x = b by Gaussian elimination and reports how far the
// computed solution misses b.
//
// 🚀 What is in the module?
//
//	matrix/    generic dense matrix (float32/float64), augmented-system helpers
//	gauss/     two-phase elimination, solution extraction, residual
//	matrixio/  text and memory-mapped binary formats for [A | b]
//	cmd/gauss/ command-line solver
//	examples/  runnable scenarios
//
// ✨ Design choices:
//
//   - No pivoting: a zero on the diagonal is reported, never worked around.
//   - Inputs are never mutated; each solve owns a private working copy.
//   - Deterministic arithmetic order, so float32 results reproduce exactly.
//
// Quick example:
//
//	aug := matrix.MustFromRows([][]float64{
//		{2, 1, 5},
//		{1, 3, 10},
//	})
//	res, err := gauss.Solve(aug) // res.Roots = [1; 3], res.Epsilon = [0; 0]
//
//	go get github.com/katalvlaran/gauss
package gauss
