package tensor

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/densenet/internal/parallel"
)

// rowConfig controls how Dot splits output rows across goroutines.
var rowConfig = parallel.DefaultConfig()

// T returns a new tensor with rows and columns swapped.
// The receiver is untouched.
//
// Example:
//
//	t := tensor.Random(3, 4)
//	transposed := t.T() // Shape: [4, 3]
func (t *Tensor) T() *Tensor {
	out := alloc(t.Cols(), t.Rows())
	for i, row := range t.data {
		for j, v := range row {
			out.data[j][i] = v
		}
	}
	return out
}

// Dot performs matrix multiplication.
//
// Requirements:
//   - (R, K) · (K, C) → (R, C)
//
// Every output cell is the dot product of a row of t with a row of the
// transposed other. The inner dimensions must agree, otherwise
// ErrShapeMismatch is returned.
//
// Example:
//
//	a := tensor.Random(3, 4)
//	b := tensor.Random(4, 5)
//	c, err := a.Dot(b) // Shape: [3, 5]
func (t *Tensor) Dot(other *Tensor) (*Tensor, error) {
	return t.dot(other, rowConfig)
}

func (t *Tensor) dot(other *Tensor, cfg parallel.Config) (*Tensor, error) {
	if t.Cols() != other.Rows() {
		return nil, mismatch("dot", t.Shape(), other.Shape())
	}

	bt := other.T()
	out := alloc(t.Rows(), other.Cols())

	parallel.ForRows(t.Rows(), t.Cols()*other.Cols(), func(i int) {
		a := t.data[i]
		dst := out.data[i]
		for j, b := range bt.data {
			dst[j] = floats.Dot(a, b)
		}
	}, cfg)

	return out, nil
}
