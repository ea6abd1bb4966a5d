package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/densenet/internal/tensor"
)

// Hidden describes one hidden layer of a Network.
type Hidden struct {
	Features   int    // Output width of the layer
	Activation string // Catalog name (default: the network activation)
}

// NetworkConfig holds configuration for Build.
type NetworkConfig struct {
	FeaturesIn   int
	FeaturesOut  int
	Activation   string        // Output activation and hidden default (default: "sigmoid")
	Hidden       []Hidden      // Hidden layers, input side first
	BiasGradient BiasReduction // Passed to every Dense layer
	Rand         *rand.Rand    // Source for weight initialization (default: math/rand)
}

// Network is a chain of Dense layers.
//
// The chain is built once and its layers are listed from the head and cached,
// so passes are plain loops over the list.
//
// Example:
//
//	net, err := nn.NewNetwork(2, 1, "sigmoid", nn.Hidden{Features: 3, Activation: "tanh"})
//
//	report, err := net.Fit(x, y, nn.FitConfig{Epochs: 2000, Schedule: optim.Constant(0.5)})
type Network struct {
	graph       *Graph
	layers      []Layer
	featuresIn  int
	featuresOut int
}

// NewNetwork builds a Network from in → hidden... → out.
func NewNetwork(featuresIn, featuresOut int, activation string, hidden ...Hidden) (*Network, error) {
	return Build(NetworkConfig{
		FeaturesIn:  featuresIn,
		FeaturesOut: featuresOut,
		Activation:  activation,
		Hidden:      hidden,
	})
}

// Build creates a Network from cfg.
//
// The first layer maps FeaturesIn to the first hidden width (or straight to
// FeaturesOut without hidden layers), each further Hidden entry adds a layer,
// and a final layer of width FeaturesOut uses the network activation.
func Build(cfg NetworkConfig) (*Network, error) {
	type plan struct {
		features   int
		activation string
	}

	plans := make([]plan, 0, len(cfg.Hidden)+1)
	for _, h := range cfg.Hidden {
		act := h.Activation
		if act == "" {
			act = cfg.Activation
		}
		plans = append(plans, plan{features: h.Features, activation: act})
	}
	plans = append(plans, plan{features: cfg.FeaturesOut, activation: cfg.Activation})

	g := NewGraph()
	in := Size(cfg.FeaturesIn)
	var last *Dense
	for i, p := range plans {
		d, err := NewDense(g, in, Size(p.features), DenseConfig{
			Activation:   p.activation,
			BiasGradient: cfg.BiasGradient,
			Rand:         cfg.Rand,
		})
		if err != nil {
			return nil, fmt.Errorf("build layer %d: %w", i, err)
		}
		in = Neighbor(d.Node())
		last = d
	}

	return &Network{
		graph:       g,
		layers:      g.Layers(last.Node()),
		featuresIn:  cfg.FeaturesIn,
		featuresOut: cfg.FeaturesOut,
	}, nil
}

// FeaturesIn returns the width of the network input.
func (n *Network) FeaturesIn() int {
	return n.featuresIn
}

// FeaturesOut returns the width of the network output.
func (n *Network) FeaturesOut() int {
	return n.featuresOut
}

// Graph returns the graph that owns the layers.
func (n *Network) Graph() *Graph {
	return n.graph
}

// Layers returns the layers, input side first.
func (n *Network) Layers() []Layer {
	return append([]Layer(nil), n.layers...)
}

// Summary returns every layer's Info with its type, input side first.
func (n *Network) Summary() []Info {
	return Summarize(n.layers)
}

// Output returns the output of the last Forward, or nil.
func (n *Network) Output() *tensor.Tensor {
	return n.layers[len(n.layers)-1].Output()
}

// Forward runs every layer from input to output.
//
// Input shape: [batch_size, FeaturesIn]
// Output shape: [batch_size, FeaturesOut]
func (n *Network) Forward(features *tensor.Tensor) (*tensor.Tensor, error) {
	return forwardAll(n.layers, features)
}

// Backward runs every layer from output to input and returns the error at
// the network input.
func (n *Network) Backward(err *tensor.Tensor) (*tensor.Tensor, error) {
	return backwardAll(n.layers, err)
}

// FullPass runs Forward, computes error = prediction - target and runs
// Backward on it. Returns the raw error.
func (n *Network) FullPass(features, target *tensor.Tensor) (*tensor.Tensor, error) {
	prediction, err := n.Forward(features)
	if err != nil {
		return nil, err
	}
	if !prediction.Shape().Equal(target.Shape()) {
		return nil, fmt.Errorf("full pass: prediction %v, target %v: %w",
			prediction.Shape(), target.Shape(), tensor.ErrShapeMismatch)
	}

	diff, err := prediction.Subtract(tensor.Of(target), tensor.Copy)
	if err != nil {
		return nil, err
	}
	if _, err := n.Backward(diff); err != nil {
		return nil, err
	}
	return diff, nil
}

// UpdateWeights updates every layer, input side first, and stops at the
// first failure.
func (n *Network) UpdateWeights(lr float64) error {
	for i, l := range n.layers {
		if err := l.UpdateWeights(lr); err != nil {
			return fmt.Errorf("update: layer %d (%s): %w", i, l.Type(), err)
		}
	}
	return nil
}

// Loss runs Forward and returns the mean squared error against target.
// Gradients are not touched.
func (n *Network) Loss(features, target *tensor.Tensor) (float64, error) {
	prediction, err := n.Forward(features)
	if err != nil {
		return 0, err
	}
	if !prediction.Shape().Equal(target.Shape()) {
		return 0, fmt.Errorf("loss: prediction %v, target %v: %w",
			prediction.Shape(), target.Shape(), tensor.ErrShapeMismatch)
	}
	diff, err := prediction.Subtract(tensor.Of(target), tensor.Copy)
	if err != nil {
		return 0, err
	}
	return MSE(diff), nil
}

// MSE reduces an error tensor to its mean squared value.
func MSE(diff *tensor.Tensor) float64 {
	return diff.Square(tensor.Copy).Mean()
}
