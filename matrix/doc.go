// SPDX-License-Identifier: MIT

// Package matrix provides a generic dense matrix over real floating-point
// element types, sized for small linear systems.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major container with a fixed shape, live row slices
//     (Row) and bounds-checked accessors (At/Set).
//   - Augmented-system helpers: RHS extracts the right-hand-side column of
//     [A | b], CalculateRight reproduces A·x for a candidate solution x.
//   - Elementwise helpers used by residual computation: SubAssign, Sub,
//     Apply, Abs, MaxAbs.
//   - Interop with gonum (ToGonum/FromGonum) for cross-checking results.
//
// Numeric policy:
//
//	T is any type whose underlying type is float32 or float64 (see Real).
//	Equality is exact; use EqualApprox when rounding noise is expected.
//
// Error policy:
//
//	Constructors and At/Set return sentinel errors (errors.Is-compatible).
//	SubAssign and Row treat shape or index violations as programmer errors
//	and panic; use Sub or At/Set for the error-returning variants.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set/Row: O(1); Clone/Equal/String: O(r*c);
//     CalculateRight: O(r*k) where k = roots.Rows().
package matrix
