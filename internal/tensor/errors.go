package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when operand shapes are incompatible with an
// operation. Operations check shapes before writing, so a failed in-place
// operation leaves its receiver untouched.
var ErrShapeMismatch = errors.New("shape mismatch")

func mismatch(op string, a, b Shape) error {
	return fmt.Errorf("%s: %v vs %v: %w", op, a, b, ErrShapeMismatch)
}
