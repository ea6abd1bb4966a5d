package tensor

import "math/rand"

// Full creates a tensor filled with a specific value.
// Panics if either dimension is not positive.
//
// Example:
//
//	t := tensor.Full(3, 3, 3.14)
func Full(rows, cols int, value float64) *Tensor {
	t := Zeros(rows, cols)
	if value == 0 {
		return t
	}
	for _, row := range t.data {
		for j := range row {
			row[j] = value
		}
	}
	return t
}

// Generate creates a tensor whose elements are produced by fn, row by row.
// Panics if either dimension is not positive.
//
// Example:
//
//	n := 0.0
//	t := tensor.Generate(2, 2, func() float64 { n++; return n }) // [[1 2] [3 4]]
func Generate(rows, cols int, fn func() float64) *Tensor {
	t := Zeros(rows, cols)
	for _, row := range t.data {
		for j := range row {
			row[j] = fn()
		}
	}
	return t
}

// Random creates a tensor with values uniformly distributed in [-1, 1).
// Note: Uses math/rand (not crypto/rand) - appropriate for weight initialization.
func Random(rows, cols int) *Tensor {
	return Generate(rows, cols, func() float64 {
		return rand.Float64()*2 - 1 //nolint:gosec // G404: weight initialization is not security-critical
	})
}

// RandomFrom is like Random but draws from rng, for reproducible runs.
func RandomFrom(rng *rand.Rand, rows, cols int) *Tensor {
	return Generate(rows, cols, func() float64 {
		return rng.Float64()*2 - 1
	})
}

// Zeros creates a tensor filled with zeros.
// Panics if either dimension is not positive.
func Zeros(rows, cols int) *Tensor {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		panic(err)
	}
	return alloc(rows, cols)
}

// Ones creates a tensor filled with ones.
func Ones(rows, cols int) *Tensor {
	return Full(rows, cols, 1)
}

// FullLike creates a tensor with the shape of t filled with value.
func FullLike(t *Tensor, value float64) *Tensor {
	return Full(t.Rows(), t.Cols(), value)
}

// GenerateLike creates a tensor with the shape of t filled by fn.
func GenerateLike(t *Tensor, fn func() float64) *Tensor {
	return Generate(t.Rows(), t.Cols(), fn)
}

// RandomLike creates a tensor with the shape of t and uniform values in [-1, 1).
func RandomLike(t *Tensor) *Tensor {
	return Random(t.Rows(), t.Cols())
}

// ZerosLike creates a zero tensor with the shape of t.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.Rows(), t.Cols())
}

// OnesLike creates a tensor of ones with the shape of t.
func OnesLike(t *Tensor) *Tensor {
	return Ones(t.Rows(), t.Cols())
}
