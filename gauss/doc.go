// Package gauss solves square linear systems A·x = b by naive Gaussian
// elimination with back-substitution, and measures the residual of the
// computed solution.
//
// 🚀 What does it do?
//
//	Given an augmented matrix [A | b] of shape n×(n+1), Solve:
//	  1. forward elimination: reduces A to upper-triangular form,
//	  2. backward elimination: clears the entries above the diagonal,
//	  3. extraction: x[i] = b'[i] / a'[i][i],
//	  4. residual: ε = |b − A·x| against the ORIGINAL matrix.
//
// ✨ Key properties:
//   - the caller's matrix is never mutated; Solve works on a private clone
//   - generic over float32 and float64 element types (matrix.Real)
//   - deterministic loop order; float32 results are reproducible bit for bit
//   - observer hooks (WithOnPivot, WithOnRow) for tracing elimination steps
//
// ⚠️ No pivoting:
//
//	A zero on the diagonal aborts with ErrUnableToCalculate; rows are never
//	swapped. This keeps failure behaviour and residuals stable, but it is a
//	numerical-robustness gap: some solvable systems (e.g. a zero in the top
//	left corner) are rejected, and small pivots can amplify rounding error.
//	Reorder rows upstream when that matters.
//
// ⚙️ Usage:
//
//	aug := matrix.MustFromRows([][]float64{
//	  {2, 1, 5},
//	  {1, 3, 10},
//	})
//	res, err := gauss.Solve(aug)
//	if err != nil { ... }
//	fmt.Print(res.Roots, res.Epsilon)
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) for the working clone
package gauss
