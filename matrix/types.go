// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the element constraint for Dense: any type whose underlying type
// is float32 or float64. Such types support +, -, *, /, comparison and have
// a zero value; absolute value is provided by abs below.
type Real interface {
	constraints.Float
}

// abs returns |v|. The float64 round trip is exact for both widths.
func abs[T Real](v T) T {
	return T(math.Abs(float64(v)))
}
