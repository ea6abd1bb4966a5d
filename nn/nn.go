// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/densenet/internal/activation"
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/tensor"
)

// Errors returned by layers and graphs.
var (
	ErrUninitializedGradient = nn.ErrUninitializedGradient
	ErrBrokenLink            = nn.ErrBrokenLink
	ErrNotForwarded          = nn.ErrNotForwarded
	ErrUnknownActivation     = activation.ErrUnknownActivation
)

// Layer is the interface every node of a layer chain implements.
type Layer = nn.Layer

// Info is a layer's diagnostic summary.
type Info = nn.Info

// States holds a layer's current state and its saved history.
// Embed it in custom layers.
type States[S any] = nn.States[S]

// ForwardSequential saves the layer's current state, then runs Forward.
func ForwardSequential(l Layer, features *tensor.Tensor) (*tensor.Tensor, error) {
	return nn.ForwardSequential(l, features)
}

// BackwardSequential runs Backward, then restores the state saved by the
// matching ForwardSequential.
func BackwardSequential(l Layer, err *tensor.Tensor) (*tensor.Tensor, error) {
	return nn.BackwardSequential(l, err)
}

// Summarize returns the Info of every layer with its type added.
func Summarize(layers []Layer) []Info {
	return nn.Summarize(layers)
}

// Graph

// Graph owns layers and the links between them.
type Graph = nn.Graph

// NodeID identifies a layer within its Graph.
type NodeID = nn.NodeID

// NoNode marks a missing neighbor.
const NoNode = nn.NoNode

// Endpoint is one side of a new layer: a feature count or a neighbor node.
type Endpoint = nn.Endpoint

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return nn.NewGraph()
}

// Size is an endpoint with a fixed feature count and no neighbor.
func Size(features int) Endpoint {
	return nn.Size(features)
}

// Neighbor is an endpoint that links to an existing node.
func Neighbor(id NodeID) Endpoint {
	return nn.Neighbor(id)
}

// Layers

// Dense represents a fully connected layer with activation.
type Dense = nn.Dense

// DenseConfig holds configuration for a Dense layer.
type DenseConfig = nn.DenseConfig

// Gradients is a Dense layer's gradient accumulator.
type Gradients = nn.Gradients

// BiasReduction selects how deltas are reduced to a bias gradient.
type BiasReduction = nn.BiasReduction

// Bias gradient reductions.
const (
	BiasRowMean   BiasReduction = nn.BiasRowMean
	BiasBatchMean BiasReduction = nn.BiasBatchMean
)

// NewDense creates a Dense layer in g between in and out.
//
// Example:
//
//	g := nn.NewGraph()
//	layer, err := nn.NewDense(g, nn.Size(784), nn.Size(128), nn.DenseConfig{Activation: "tanh"})
func NewDense(g *Graph, in, out Endpoint, cfg DenseConfig) (*Dense, error) {
	return nn.NewDense(g, in, out, cfg)
}

// Activations

// Activation is a named element-wise function with its derivative.
type Activation = activation.Activation

// ActivationKind identifies a catalog activation.
type ActivationKind = activation.Kind

// Catalog activations.
const (
	Sigmoid ActivationKind = activation.Sigmoid
	Tanh    ActivationKind = activation.Tanh
)

// LookupActivation returns the catalog entry for name.
func LookupActivation(name string) (Activation, error) {
	return activation.Lookup(name)
}

// Network

// Network is a chain of Dense layers.
type Network = nn.Network

// NetworkConfig holds configuration for Build.
type NetworkConfig = nn.NetworkConfig

// Hidden describes one hidden layer.
type Hidden = nn.Hidden

// FitConfig holds configuration for Network.Fit.
type FitConfig = nn.FitConfig

// Report is the outcome of Network.Fit.
type Report = nn.Report

// NewNetwork builds a Network from in → hidden... → out.
func NewNetwork(featuresIn, featuresOut int, act string, hidden ...Hidden) (*Network, error) {
	return nn.NewNetwork(featuresIn, featuresOut, act, hidden...)
}

// Build creates a Network from cfg.
func Build(cfg NetworkConfig) (*Network, error) {
	return nn.Build(cfg)
}

// MSE reduces an error tensor to its mean squared value.
func MSE(diff *tensor.Tensor) float64 {
	return nn.MSE(diff)
}
