package nn

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/born-ml/densenet/internal/activation"
	"github.com/born-ml/densenet/internal/optim"
	"github.com/born-ml/densenet/internal/tensor"
)

// BiasReduction selects how a batch of deltas is reduced to a bias gradient.
type BiasReduction int

const (
	// BiasRowMean averages every delta row over its features, giving one
	// value per sample, and uses the first FeaturesOut of them as the bias
	// gradient. Batches with fewer rows than FeaturesOut fail with
	// tensor.ErrShapeMismatch.
	//
	// This pairs bias j with sample j rather than with output feature j and is
	// most likely not what a bias gradient should be. It is the default to
	// keep the established training behavior. Use BiasBatchMean for the
	// conventional gradient.
	BiasRowMean BiasReduction = iota

	// BiasBatchMean averages every delta column over the batch.
	BiasBatchMean
)

// String implements fmt.Stringer.
func (b BiasReduction) String() string {
	switch b {
	case BiasRowMean:
		return "row-mean"
	case BiasBatchMean:
		return "batch-mean"
	default:
		return fmt.Sprintf("BiasReduction(%d)", int(b))
	}
}

// DenseConfig holds configuration for a Dense layer.
type DenseConfig struct {
	Activation   string        // Catalog name (default: "sigmoid")
	BiasGradient BiasReduction // Bias gradient reduction (default: BiasRowMean)
	Rand         *rand.Rand    // Source for weight initialization (default: math/rand)
}

// Gradients is a Dense layer's gradient accumulator.
// Either field is nil until the first backward call.
type Gradients struct {
	Weights *tensor.Tensor // [in_features, out_features]
	Bias    *tensor.Tensor // [1, out_features]
}

type phase int

const (
	phaseIdle phase = iota
	phaseForwarded
	phaseBackwarded
)

// denseState is what Forward stores for the matching Backward.
type denseState struct {
	phase         phase
	input         *tensor.Tensor
	weightedInput *tensor.Tensor
	output        *tensor.Tensor
}

// Dense implements a fully connected (dense) layer.
//
// Performs the transformation: y = f(x · W + b)
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over the batch
//   - f is the activation, applied element-wise
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights and bias are initialized uniformly in [-1, 1).
//
// Gradients accumulate across Backward calls until UpdateWeights applies
// and clears them, so several backward passes can feed one update.
//
// Example:
//
//	g := nn.NewGraph()
//	layer, err := nn.NewDense(g, nn.Size(784), nn.Size(128), nn.DenseConfig{Activation: "tanh"})
//
//	output, err := layer.Forward(input)    // shape: [32, 128]
//	inputErr, err := layer.Backward(e)     // shape: [32, 784]
//	err = layer.UpdateWeights(0.1)
type Dense struct {
	States[denseState]

	id           uuid.UUID
	node         NodeID
	featuresIn   int
	featuresOut  int
	kind         activation.Kind
	act          activation.Activation
	biasGradient BiasReduction

	weights *tensor.Tensor // [in_features, out_features]
	bias    *tensor.Tensor // [1, out_features]

	grads   Gradients
	pending int // backward contributions since the last update
}

// NewDense creates a Dense layer in g between in and out.
//
// Node endpoints are linked at construction and supply the layer's feature
// count on that side. On error the graph is unchanged.
//
// Parameters:
//   - g: Graph that owns the layer
//   - in: Size(n) or Neighbor(id) of the previous layer
//   - out: Size(n) or Neighbor(id) of the next layer
//   - cfg: Activation, bias gradient and initialization options
//
// Returns a new Dense layer.
func NewDense(g *Graph, in, out Endpoint, cfg DenseConfig) (*Dense, error) {
	kind, err := activation.Parse(cfg.Activation)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}

	featuresIn, featuresOut, err := g.Resolve(in, out)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}

	random := tensor.Random
	if cfg.Rand != nil {
		random = func(rows, cols int) *tensor.Tensor {
			return tensor.RandomFrom(cfg.Rand, rows, cols)
		}
	}

	d := &Dense{
		id:           uuid.New(),
		featuresIn:   featuresIn,
		featuresOut:  featuresOut,
		kind:         kind,
		act:          activation.Get(kind),
		biasGradient: cfg.BiasGradient,
		weights:      random(featuresIn, featuresOut),
		bias:         random(1, featuresOut),
	}

	d.node, err = g.Insert(d, in, out)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	return d, nil
}

// Type returns "Dense".
func (d *Dense) Type() string {
	return "Dense"
}

// ID returns the layer's unique identity.
func (d *Dense) ID() uuid.UUID {
	return d.id
}

// Node returns the layer's position in its graph.
func (d *Dense) Node() NodeID {
	return d.node
}

// FeaturesIn returns the number of input features.
func (d *Dense) FeaturesIn() int {
	return d.featuresIn
}

// FeaturesOut returns the number of output features.
func (d *Dense) FeaturesOut() int {
	return d.featuresOut
}

// Activation returns the layer's activation kind.
func (d *Dense) Activation() activation.Kind {
	return d.kind
}

// Weights returns the weight matrix. It is owned by the layer.
func (d *Dense) Weights() *tensor.Tensor {
	return d.weights
}

// Bias returns the bias row. It is owned by the layer.
func (d *Dense) Bias() *tensor.Tensor {
	return d.bias
}

// Gradients returns the gradient accumulator. It is owned by the layer.
func (d *Dense) Gradients() Gradients {
	return d.grads
}

// Output returns the output of the last Forward, or nil.
func (d *Dense) Output() *tensor.Tensor {
	return d.state().output
}

// Info reports the parameter count and activation title.
func (d *Dense) Info() Info {
	return Info{
		"parameters": (d.featuresIn + 1) * d.featuresOut,
		"activation": d.act.Title,
	}
}

// Forward computes the output of the dense layer.
//
// Stores the input, x · W + b and the activated output as the current state
// and returns the output. A pending state that was never backwarded is
// replaced; use ForwardSequential to keep it.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (d *Dense) Forward(features *tensor.Tensor) (*tensor.Tensor, error) {
	if features.Cols() != d.featuresIn {
		return nil, fmt.Errorf("dense forward: expected input with %d features, got %v: %w",
			d.featuresIn, features.Shape(), tensor.ErrShapeMismatch)
	}

	weighted, err := features.Dot(d.weights)
	if err != nil {
		return nil, err
	}
	if _, err := weighted.Add(tensor.Of(d.bias), tensor.InPlace); err != nil {
		return nil, err
	}
	output := weighted.Map(d.act.Forward, tensor.Copy)

	*d.state() = denseState{
		phase:         phaseForwarded,
		input:         features,
		weightedInput: weighted,
		output:        output,
	}
	return output, nil
}

// Backward propagates outErr through the layer.
//
// Computes delta = outErr ⊙ f'(x · W + b) from the stored forward state,
// accumulates gradients from delta and returns delta · Wᵀ, the error at the
// layer's input. Fails with ErrNotForwarded when no forward state is stored.
//
// Input shape: [batch_size, out_features]
// Output shape: [batch_size, in_features]
func (d *Dense) Backward(outErr *tensor.Tensor) (*tensor.Tensor, error) {
	st := d.state()
	if st.phase == phaseIdle {
		return nil, fmt.Errorf("dense backward: %w", ErrNotForwarded)
	}
	if !outErr.Shape().Equal(st.output.Shape()) {
		return nil, fmt.Errorf("dense backward: error %v, output %v: %w",
			outErr.Shape(), st.output.Shape(), tensor.ErrShapeMismatch)
	}

	slope := st.weightedInput.Map(d.act.Backward, tensor.Copy)
	delta, err := outErr.Multiply(tensor.Of(slope), tensor.Copy)
	if err != nil {
		return nil, err
	}

	if err := d.CalculateGradients(delta); err != nil {
		return nil, err
	}

	inErr, err := delta.Dot(d.weights.T())
	if err != nil {
		return nil, err
	}
	st.phase = phaseBackwarded
	return inErr, nil
}

// CalculateGradients adds the gradients for delta to the accumulator.
//
// The weight gradient is inputᵀ · delta, using the stored input. The bias
// gradient is reduced from delta as selected by DenseConfig.BiasGradient.
// The first call after construction allocates the accumulator; later calls
// add to it in place. Both gradients are computed before either is added.
func (d *Dense) CalculateGradients(delta *tensor.Tensor) error {
	st := d.state()
	if st.input == nil {
		return fmt.Errorf("dense gradients: %w", ErrNotForwarded)
	}
	if delta.Rows() != st.input.Rows() || delta.Cols() != d.featuresOut {
		return fmt.Errorf("dense gradients: delta %v for input %v: %w",
			delta.Shape(), st.input.Shape(), tensor.ErrShapeMismatch)
	}

	gradWeights, err := st.input.T().Dot(delta)
	if err != nil {
		return err
	}
	gradBias, err := d.reduceBias(delta)
	if err != nil {
		return err
	}

	if d.grads.Weights == nil || d.grads.Bias == nil {
		d.grads = Gradients{Weights: gradWeights, Bias: gradBias}
	} else {
		if _, err := d.grads.Weights.Add(tensor.Of(gradWeights), tensor.InPlace); err != nil {
			return err
		}
		if _, err := d.grads.Bias.Add(tensor.Of(gradBias), tensor.InPlace); err != nil {
			return err
		}
	}
	d.pending++
	return nil
}

func (d *Dense) reduceBias(delta *tensor.Tensor) (*tensor.Tensor, error) {
	switch d.biasGradient {
	case BiasRowMean:
		means := delta.MeanRows() // [1, batch_size]
		if means.Cols() < d.featuresOut {
			return nil, fmt.Errorf("row-mean bias gradient: batch of %d rows for %d features: %w",
				means.Cols(), d.featuresOut, tensor.ErrShapeMismatch)
		}
		return means.SliceCols(0, d.featuresOut)
	case BiasBatchMean:
		return delta.MeanColumns().T(), nil
	default:
		return nil, fmt.Errorf("unknown bias reduction %v", d.biasGradient)
	}
}

// UpdateWeights applies the accumulated gradients and clears them:
//
//	W = W - lr * gradW
//	b = b - lr * gradB
//
// The accumulators are zeroed in place and reused by the next cycle.
// Fails with ErrUninitializedGradient if nothing was accumulated since the
// last update. On any error the weights are unchanged and the accumulator
// is discarded.
func (d *Dense) UpdateWeights(lr float64) error {
	if d.pending == 0 || d.grads.Weights == nil || d.grads.Bias == nil {
		d.discardGradients()
		return fmt.Errorf("dense update: %w", ErrUninitializedGradient)
	}
	if err := d.checkUpdate(); err != nil {
		d.discardGradients()
		return fmt.Errorf("dense update: %w", err)
	}

	if err := optim.Step(d.weights, d.grads.Weights, lr); err != nil {
		return err
	}
	if err := optim.Step(d.bias, d.grads.Bias, lr); err != nil {
		return err
	}

	d.grads.Weights.Zero()
	d.grads.Bias.Zero()
	d.pending = 0
	return nil
}

func (d *Dense) checkUpdate() error {
	if err := optim.CheckStep(d.weights, d.grads.Weights); err != nil {
		return err
	}
	return optim.CheckStep(d.bias, d.grads.Bias)
}

func (d *Dense) discardGradients() {
	d.grads = Gradients{}
	d.pending = 0
}
