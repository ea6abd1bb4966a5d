// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides dense feed-forward networks.
//
// # Overview
//
// This package contains:
//   - Layers: Dense, linked into chains by a Graph
//   - Activations: Sigmoid, Tanh
//   - Network: a chain of Dense layers with Fit for full-batch training
//   - Step-wise passes: ForwardSequential and BackwardSequential
//
// # Basic Usage
//
//	net, err := nn.NewNetwork(2, 1, "sigmoid", nn.Hidden{Features: 3, Activation: "tanh"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := net.Fit(x, y, nn.FitConfig{
//	    Epochs:   2000,
//	    Schedule: optim.Constant(0.5),
//	})
//
// # Layers
//
// Layers are created inside a Graph. Each side of a new layer is either a
// feature count or an existing node, which links the two at construction:
//
//	g := nn.NewGraph()
//	first, err := nn.NewDense(g, nn.Size(3), nn.Size(7), nn.DenseConfig{Activation: "tanh"})
//	second, err := nn.NewDense(g, nn.Neighbor(first.Node()), nn.Size(4), nn.DenseConfig{})
//
//	out, err := g.Propagate(second.Node(), x) // any node of the chain works
//
// # Training Cycle
//
// Forward stores what Backward needs, Backward accumulates gradients and
// UpdateWeights applies and clears them:
//
//	diff, err := net.FullPass(x, y) // forward, prediction - y, backward
//	err = net.UpdateWeights(0.1)
package nn
