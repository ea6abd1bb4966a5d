package tensor

import "fmt"

// Mode selects whether an operation allocates its result or overwrites the
// receiver.
type Mode int

const (
	// Copy produces a new tensor and leaves every operand untouched.
	Copy Mode = iota
	// InPlace writes into the receiver and returns it.
	InPlace
)

// Value is one auxiliary input to an Operator.
// OK is false when the operand is absent.
type Value struct {
	X  float64
	OK bool
}

// Operator computes one output cell from the primary value and the
// auxiliary values at the same position. aux is reused between cells and
// must not be retained.
type Operator func(v float64, aux []Value) float64

type operandKind int

const (
	operandNone operandKind = iota
	operandTensor
	operandScalar
)

// Operand is an auxiliary input to Apply: a tensor (full-shape or a single
// broadcast row), a scalar applied to every cell, or nothing.
type Operand struct {
	kind   operandKind
	tensor *Tensor
	scalar float64
}

// Of wraps a tensor operand. A nil tensor is treated as absent.
func Of(t *Tensor) Operand {
	if t == nil {
		return None()
	}
	return Operand{kind: operandTensor, tensor: t}
}

// Scalar wraps a scalar operand.
func Scalar(x float64) Operand {
	return Operand{kind: operandScalar, scalar: x}
}

// None is an absent operand. Operators see it as Value{OK: false}.
func None() Operand {
	return Operand{}
}

func (o Operand) check(op string, s Shape) error {
	if o.kind != operandTensor {
		return nil
	}
	if !s.broadcastable(o.tensor.Shape()) {
		return mismatch(op, s, o.tensor.Shape())
	}
	return nil
}

// row returns the row of a tensor operand used for output row i.
// Single-row operands broadcast row 0.
func (o Operand) row(i int) []float64 {
	if len(o.tensor.data) == 1 {
		return o.tensor.data[0]
	}
	return o.tensor.data[i]
}

// Apply computes op over every cell of t and returns a new tensor.
//
// Each operand is looked up at the same (row, column): full-shape tensors
// directly, single-row tensors through row 0 for every row, scalars as the
// same value everywhere, and absent operands as Value{OK: false}.
//
// Example:
//
//	// clamp(x + bias, 0, hi) with a broadcast bias row
//	out, err := tensor.Apply(func(v float64, aux []tensor.Value) float64 {
//	    return min(max(v+aux[0].X, 0), aux[1].X)
//	}, x, tensor.Of(bias), tensor.Scalar(hi))
func Apply(op Operator, t *Tensor, operands ...Operand) (*Tensor, error) {
	return apply("apply", op, t, Copy, operands)
}

// ApplyInPlace is like Apply but writes into t and returns it.
// On a shape mismatch t is left untouched.
func ApplyInPlace(op Operator, t *Tensor, operands ...Operand) (*Tensor, error) {
	return apply("apply", op, t, InPlace, operands)
}

func apply(name string, op Operator, t *Tensor, mode Mode, operands []Operand) (*Tensor, error) {
	shape := t.Shape()
	for _, o := range operands {
		if err := o.check(name, shape); err != nil {
			return nil, err
		}
	}

	out := t
	switch mode {
	case Copy:
		out = alloc(shape.Rows, shape.Cols)
	case InPlace:
	default:
		return nil, fmt.Errorf("%s: unknown mode %d", name, mode)
	}

	aux := make([]Value, len(operands))
	for i, src := range t.data {
		dst := out.data[i]
		for j, v := range src {
			for k, o := range operands {
				switch o.kind {
				case operandTensor:
					aux[k] = Value{X: o.row(i)[j], OK: true}
				case operandScalar:
					aux[k] = Value{X: o.scalar, OK: true}
				default:
					aux[k] = Value{}
				}
			}
			dst[j] = op(v, aux)
		}
	}

	return out, nil
}

// applyUnary maps fn over t without operands. It cannot fail.
func applyUnary(fn func(float64) float64, t *Tensor, mode Mode) *Tensor {
	out := t
	if mode != InPlace {
		out = alloc(t.Rows(), t.Cols())
	}
	for i, src := range t.data {
		dst := out.data[i]
		for j, v := range src {
			dst[j] = fn(v)
		}
	}
	return out
}
