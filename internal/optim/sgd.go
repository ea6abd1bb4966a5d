package optim

import (
	"fmt"

	"github.com/born-ml/densenet/internal/tensor"
)

// Step performs one gradient descent update in place:
//
//	param = param - lr * grad
//
// grad must have the same shape as param and is not modified. Shapes are
// checked before anything is written, so on error param is untouched.
//
// Example:
//
//	w := tensor.MustNew([][]float64{{2}})
//	g := tensor.MustNew([][]float64{{1}})
//	_ = optim.Step(w, g, 0.1) // w = [[1.9]]
func Step(param, grad *tensor.Tensor, lr float64) error {
	if err := CheckStep(param, grad); err != nil {
		return err
	}

	_, err := tensor.ApplyInPlace(func(p float64, aux []tensor.Value) float64 {
		return p - lr*aux[0].X
	}, param, tensor.Of(grad))
	return err
}

// CheckStep reports whether Step(param, grad, ...) would succeed.
// Callers updating several tensors together use it to validate all of them
// before the first write.
func CheckStep(param, grad *tensor.Tensor) error {
	if grad == nil {
		return fmt.Errorf("sgd step: nil gradient for %v parameter", param.Shape())
	}
	if !param.Shape().Equal(grad.Shape()) {
		return fmt.Errorf("sgd step: parameter %v, gradient %v: %w",
			param.Shape(), grad.Shape(), tensor.ErrShapeMismatch)
	}
	return nil
}
