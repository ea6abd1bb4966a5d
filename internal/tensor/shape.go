package tensor

import "fmt"

// Shape holds the dimensions of a 2-D tensor.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks if the shape is valid (both dimensions > 0).
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("invalid shape %v (dimensions must be > 0): %w", s, ErrShapeMismatch)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// T returns the shape with its axes swapped.
func (s Shape) T() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// String formats the shape as [rows, cols].
func (s Shape) String() string {
	return fmt.Sprintf("[%d, %d]", s.Rows, s.Cols)
}

// broadcastable reports whether other can be applied cell-by-cell against s.
//
// Rules:
//   - Column counts must match.
//   - Row counts must match, or other must have exactly one row, which is
//     then reused for every row of s.
func (s Shape) broadcastable(other Shape) bool {
	if s.Cols != other.Cols {
		return false
	}
	return other.Rows == s.Rows || other.Rows == 1
}
