// Package nn implements dense feed-forward networks for densenet.
//
// This package provides building blocks for constructing networks:
//   - Layer interface: Base interface for all layers in a chain
//   - Graph: arena of layers linked into head-to-tail chains
//   - States: per-layer current state plus a LIFO history for step-wise reuse
//   - Dense: Fully connected layer with activation and gradient accumulator
//   - Network: chain of Dense layers with forward/backward passes and Fit
//
// Layers are driven explicitly: Forward stores the intermediates that the
// matching Backward needs, Backward accumulates gradients, and UpdateWeights
// applies and clears them. There is no automatic differentiation.
package nn

import (
	"errors"

	"github.com/born-ml/densenet/internal/tensor"
)

// Common errors.
var (
	ErrUninitializedGradient = errors.New("no gradient accumulated since the last update")
	ErrBrokenLink            = errors.New("broken chain link")
	ErrNotForwarded          = errors.New("backward without a stored forward state")
)

// Layer is the base interface for all nodes of a layer chain.
//
// Every layer must implement:
//   - Forward: compute the output and store the intermediates Backward needs
//   - Backward: propagate an error to the previous layer, accumulating gradients
//   - UpdateWeights: apply and clear the accumulated gradients
//   - Remember/Recall: push and pop the current state (see ForwardSequential)
type Layer interface {
	// Type is the short layer type name shown in summaries.
	Type() string

	// FeaturesIn is the width of the input rows.
	FeaturesIn() int

	// FeaturesOut is the width of the output rows.
	FeaturesOut() int

	// Info returns diagnostic key/value pairs for this layer.
	Info() Info

	// Forward computes the output for a [batch, FeaturesIn] input.
	Forward(features *tensor.Tensor) (*tensor.Tensor, error)

	// Backward takes the error at the output, [batch, FeaturesOut], and
	// returns the error at the input, [batch, FeaturesIn].
	Backward(err *tensor.Tensor) (*tensor.Tensor, error)

	// UpdateWeights applies the accumulated gradients with learning rate lr.
	UpdateWeights(lr float64) error

	// Output returns the output stored by the last Forward, or nil.
	Output() *tensor.Tensor

	// Remember pushes the current state onto the history.
	Remember()

	// Recall pops the most recent history entry back into the current state.
	Recall()

	// Depth is the number of states on the history.
	Depth() int
}

// ForwardSequential saves the layer's current state, then runs Forward.
//
// Pair every call with one BackwardSequential, in reverse order. This lets a
// single layer be applied over several time steps while keeping each step's
// intermediates for its own backward call:
//
//	for _, x := range steps {
//	    nn.ForwardSequential(layer, x)
//	}
//	for i := len(steps) - 1; i >= 0; i-- {
//	    nn.BackwardSequential(layer, errs[i])
//	}
func ForwardSequential(l Layer, features *tensor.Tensor) (*tensor.Tensor, error) {
	l.Remember()
	return l.Forward(features)
}

// BackwardSequential runs Backward, then restores the state saved by the
// matching ForwardSequential. The state is restored even if Backward fails.
func BackwardSequential(l Layer, err *tensor.Tensor) (*tensor.Tensor, error) {
	defer l.Recall()
	return l.Backward(err)
}
