// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense two-dimensional float64 matrices.
//
// # Overview
//
// Tensors are the data structure every densenet layer consumes and produces.
// This package provides:
//   - Construction from row slices, constants, generators and random values
//   - Element-wise arithmetic with row broadcasting
//   - Copy or in-place evaluation of every element-wise operation
//   - Matrix product, transpose and row/column reductions
//
// # Basic Usage
//
//	x := tensor.MustNew([][]float64{{1, 2}, {3, 4}})
//	w := tensor.Ones(2, 3)
//
//	y, err := x.Dot(w)                                  // [2, 3]
//	y, err = y.Add(tensor.Scalar(0.5), tensor.InPlace) // y += 0.5
//
// # Broadcasting
//
// An operand shaped [1, C] is repeated for every row of an [R, C] tensor:
//
//	a := tensor.Ones(3, 4)
//	b := tensor.MustNew([][]float64{{1, 2, 3, 4}})
//	c, err := a.Multiply(tensor.Of(b), tensor.Copy) // (3, 4)
//
// Any other shape mismatch fails with ErrShapeMismatch before anything is
// written.
//
// # Custom Operations
//
// Apply evaluates an Operator over a tensor and any number of operands:
//
//	clip := func(v float64, aux []tensor.Value) float64 {
//	    return math.Min(v, aux[0].X)
//	}
//	y, err := tensor.Apply(clip, x, tensor.Scalar(1))
package tensor
