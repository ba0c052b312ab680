// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense tests and benchmarks.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gauss/matrix"
)

// mustNew allocates an r×c Dense or fails the test.
func mustNew[T matrix.Real](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// fillRand fills m with values in [-1, 1) from a seeded source.
// Same seed, same matrix.
func fillRand[T matrix.Real](m *matrix.Dense[T], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)
		for j := range row {
			row[j] = T(rng.Float64()*2 - 1)
		}
	}
}
