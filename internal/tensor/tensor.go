package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense two-dimensional grid of float64 values.
//
// The shape is fixed at construction and every row has the same length.
// A Tensor exclusively owns its grid. Operations either produce a new tensor
// and leave their operands untouched, or work in place and return the
// receiver (see Mode).
//
// Example:
//
//	x := tensor.MustNew([][]float64{{0, 1}, {1, 0}})
//	w := tensor.Random(2, 3)
//	h, err := x.Dot(w) // Shape: [2, 3]
type Tensor struct {
	data [][]float64
}

// New creates a tensor from an explicit grid.
// The grid is copied. An empty grid or ragged rows fail with ErrShapeMismatch.
func New(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("new: empty grid: %w", ErrShapeMismatch)
	}

	cols := len(rows[0])
	data := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("new: row %d has %d columns, row 0 has %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
		data[i] = append([]float64(nil), row...)
	}

	return &Tensor{data: data}, nil
}

// MustNew is like New but panics on an invalid grid.
// Intended for literals in tests and examples.
func MustNew(rows [][]float64) *Tensor {
	t, err := New(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// alloc creates a zero tensor without validation.
func alloc(rows, cols int) *Tensor {
	backing := make([]float64, rows*cols)
	data := make([][]float64, rows)
	for i := range data {
		data[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return &Tensor{data: data}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return Shape{Rows: len(t.data), Cols: len(t.data[0])}
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int {
	return len(t.data)
}

// Cols returns the number of columns.
func (t *Tensor) Cols() int {
	return len(t.data[0])
}

// At returns the element at row i, column j.
// Panics if indices are out of bounds.
func (t *Tensor) At(i, j int) float64 {
	t.checkIndex(i, j)
	return t.data[i][j]
}

// Set sets the element at row i, column j.
// Panics if indices are out of bounds.
func (t *Tensor) Set(i, j int, value float64) {
	t.checkIndex(i, j)
	t.data[i][j] = value
}

func (t *Tensor) checkIndex(i, j int) {
	if i < 0 || i >= t.Rows() || j < 0 || j >= t.Cols() {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for shape %v", i, j, t.Shape()))
	}
}

// Row returns a copy of row i.
func (t *Tensor) Row(i int) []float64 {
	t.checkIndex(i, 0)
	return append([]float64(nil), t.data[i]...)
}

// Values returns a deep copy of the grid.
func (t *Tensor) Values() [][]float64 {
	out := make([][]float64, len(t.data))
	for i, row := range t.data {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := alloc(t.Rows(), t.Cols())
	for i, row := range t.data {
		copy(out.data[i], row)
	}
	return out
}

// Zero sets every element to zero in place and returns the receiver.
// The allocation is kept, only the contents are cleared.
func (t *Tensor) Zero() *Tensor {
	for _, row := range t.data {
		clear(row)
	}
	return t
}

// SliceCols returns a new tensor holding columns [from, to).
func (t *Tensor) SliceCols(from, to int) (*Tensor, error) {
	if from < 0 || to > t.Cols() || from >= to {
		return nil, fmt.Errorf("slice columns [%d, %d) of %v: %w", from, to, t.Shape(), ErrShapeMismatch)
	}
	out := alloc(t.Rows(), to-from)
	for i, row := range t.data {
		copy(out.data[i], row[from:to])
	}
	return out, nil
}

// EqualApprox reports whether both tensors have the same shape and every
// pair of elements is within tol, absolutely or relatively.
func (t *Tensor) EqualApprox(other *Tensor, tol float64) bool {
	if !t.Shape().Equal(other.Shape()) {
		return false
	}
	for i, row := range t.data {
		if !floats.EqualApprox(row, other.data[i], tol) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.Shape(), t.data)
}
