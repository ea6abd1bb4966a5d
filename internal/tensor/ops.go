package tensor

import "math"

// binary builds the operator for a two-input elementwise op.
// An absent operand leaves the value unchanged.
func binary(fn func(a, b float64) float64) Operator {
	return func(v float64, aux []Value) float64 {
		if !aux[0].OK {
			return v
		}
		return fn(v, aux[0].X)
	}
}

var (
	addOp = binary(func(a, b float64) float64 { return a + b })
	subOp = binary(func(a, b float64) float64 { return a - b })
	mulOp = binary(func(a, b float64) float64 { return a * b })
	divOp = binary(func(a, b float64) float64 { return a / b })
)

// Add performs element-wise addition with row broadcasting.
//
// Example:
//
//	a := tensor.Ones(3, 5)
//	b := tensor.Ones(1, 5)
//	c, err := a.Add(tensor.Of(b), tensor.Copy) // Shape: [3, 5], b reused per row
func (t *Tensor) Add(o Operand, mode Mode) (*Tensor, error) {
	return apply("add", addOp, t, mode, []Operand{o})
}

// Subtract performs element-wise subtraction with row broadcasting.
func (t *Tensor) Subtract(o Operand, mode Mode) (*Tensor, error) {
	return apply("subtract", subOp, t, mode, []Operand{o})
}

// Multiply performs element-wise multiplication with row broadcasting.
func (t *Tensor) Multiply(o Operand, mode Mode) (*Tensor, error) {
	return apply("multiply", mulOp, t, mode, []Operand{o})
}

// Divide performs element-wise division with row broadcasting.
func (t *Tensor) Divide(o Operand, mode Mode) (*Tensor, error) {
	return apply("divide", divOp, t, mode, []Operand{o})
}

// Scale multiplies every element by x. It is Multiply with a scalar operand,
// which cannot fail.
func (t *Tensor) Scale(x float64, mode Mode) *Tensor {
	return applyUnary(func(v float64) float64 { return v * x }, t, mode)
}

// Map applies fn to every element.
func (t *Tensor) Map(fn func(float64) float64, mode Mode) *Tensor {
	return applyUnary(fn, t, mode)
}

// Round rounds every element to the nearest integer, halves toward +Inf.
func (t *Tensor) Round(mode Mode) *Tensor {
	return applyUnary(func(v float64) float64 { return math.Floor(v + 0.5) }, t, mode)
}

// Abs takes the absolute value of every element.
func (t *Tensor) Abs(mode Mode) *Tensor {
	return applyUnary(math.Abs, t, mode)
}

// Square squares every element.
func (t *Tensor) Square(mode Mode) *Tensor {
	return applyUnary(func(v float64) float64 { return v * v }, t, mode)
}
