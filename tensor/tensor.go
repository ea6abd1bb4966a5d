// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/densenet/internal/tensor"
)

// Type aliases for public API

// Tensor is a dense [rows, cols] matrix of float64.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{Rows: 2, Cols: 3} is a 2×3 matrix.
type Shape = tensor.Shape

// Mode selects whether an operation allocates its result or overwrites
// the receiver.
type Mode = tensor.Mode

// Evaluation modes.
const (
	Copy    Mode = tensor.Copy
	InPlace Mode = tensor.InPlace
)

// Operand is a tensor, scalar or absent argument of an element-wise operation.
type Operand = tensor.Operand

// Value is one operand element as seen by an Operator.
type Value = tensor.Value

// Operator computes one output element from the receiver element and the
// matching operand elements.
type Operator = tensor.Operator

// ErrShapeMismatch is returned when operand shapes are incompatible.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// Operands

// Of wraps a tensor as an operand. A nil tensor is an absent operand.
func Of(t *Tensor) Operand {
	return tensor.Of(t)
}

// Scalar wraps a constant as an operand.
func Scalar(x float64) Operand {
	return tensor.Scalar(x)
}

// None is an absent operand.
func None() Operand {
	return tensor.None()
}

// Construction

// New creates a tensor from a copy of rows.
//
// Example:
//
//	t, err := tensor.New([][]float64{{1, 2, 3}, {4, 5, 6}})
func New(rows [][]float64) (*Tensor, error) {
	return tensor.New(rows)
}

// MustNew is like New but panics on error.
func MustNew(rows [][]float64) *Tensor {
	return tensor.MustNew(rows)
}

// Full creates a tensor with every element set to value.
func Full(rows, cols int, value float64) *Tensor {
	return tensor.Full(rows, cols, value)
}

// Generate creates a tensor filled by calling fn once per element.
func Generate(rows, cols int, fn func() float64) *Tensor {
	return tensor.Generate(rows, cols, fn)
}

// Random creates a tensor with elements drawn uniformly from [-1, 1).
func Random(rows, cols int) *Tensor {
	return tensor.Random(rows, cols)
}

// RandomFrom is like Random but draws from rng.
func RandomFrom(rng *rand.Rand, rows, cols int) *Tensor {
	return tensor.RandomFrom(rng, rows, cols)
}

// Zeros creates a tensor filled with zeros.
func Zeros(rows, cols int) *Tensor {
	return tensor.Zeros(rows, cols)
}

// Ones creates a tensor filled with ones.
func Ones(rows, cols int) *Tensor {
	return tensor.Ones(rows, cols)
}

// FullLike creates a tensor shaped like t with every element set to value.
func FullLike(t *Tensor, value float64) *Tensor {
	return tensor.FullLike(t, value)
}

// ZerosLike creates a zero tensor shaped like t.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// OnesLike creates a tensor of ones shaped like t.
func OnesLike(t *Tensor) *Tensor {
	return tensor.OnesLike(t)
}

// RandomLike creates a random tensor shaped like t.
func RandomLike(t *Tensor) *Tensor {
	return tensor.RandomLike(t)
}

// Custom operations

// Apply evaluates op over t and operands into a new tensor.
func Apply(op Operator, t *Tensor, operands ...Operand) (*Tensor, error) {
	return tensor.Apply(op, t, operands...)
}

// ApplyInPlace evaluates op over t and operands, overwriting t.
func ApplyInPlace(op Operator, t *Tensor, operands ...Operand) (*Tensor, error) {
	return tensor.ApplyInPlace(op, t, operands...)
}
