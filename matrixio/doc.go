// SPDX-License-Identifier: MIT

// Package matrixio reads and writes augmented matrices for the solver.
//
// Two formats are supported:
//
//   - Text: one row per line (or rows separated by ';'), values separated
//     by whitespace or ','; '#' starts a comment running to end of line.
//     This mirrors how literal matrices are written in source code:
//
//     # 2x + y = 5 ; x + 3y = 10
//     2 1 5
//     1 3 10
//
//   - Binary: a 16-byte little-endian header followed by the elements in
//     row-major order, read and written through a memory mapping:
//
//     offset size field
//     0      4    magic "GAUS"
//     4      2    version (1)
//     6      2    element width in bits (32 or 64)
//     8      4    rows
//     12     4    cols
//     16     ...  rows*cols IEEE-754 values
//
// The element width stored in a binary file must match the T requested
// by Open; conversions between widths are explicit and left to callers.
package matrixio
