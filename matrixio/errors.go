// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a token in text input that is not a number.
	ErrSyntax = errors.New("matrixio: invalid number")

	// ErrBadHeader indicates a binary file with wrong magic or version.
	ErrBadHeader = errors.New("matrixio: bad binary header")

	// ErrElemWidth indicates that a binary file stores a different element
	// width than the requested type.
	ErrElemWidth = errors.New("matrixio: element width mismatch")

	// ErrTruncated indicates a binary file shorter than its header declares.
	ErrTruncated = errors.New("matrixio: file truncated")
)

// Operation tags for error wrapping.
const (
	opReadText  = "ReadText"
	opWriteText = "WriteText"
	opSave      = "Save"
	opOpen      = "Open"
)

func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
