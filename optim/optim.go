// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/densenet/internal/optim"
	"github.com/born-ml/densenet/tensor"
)

// DefaultLR is the learning rate used when none is given.
const DefaultLR = optim.DefaultLR

// Schedule maps an epoch to a learning rate.
type Schedule = optim.Schedule

// Constant is a schedule with a fixed learning rate.
type Constant = optim.Constant

// PiecewiseSchedule switches the learning rate at given epochs.
type PiecewiseSchedule = optim.PiecewiseSchedule

// Piecewise creates a schedule from epoch → learning rate pairs.
//
// Example:
//
//	sched := optim.Piecewise(map[int]float64{0: 0.001, 100: 0.01, 500: 0.1})
//	sched.LR(250) // 0.01
func Piecewise(steps map[int]float64) *PiecewiseSchedule {
	return optim.Piecewise(steps)
}

// Step performs param = param - lr * grad in place.
func Step(param, grad *tensor.Tensor, lr float64) error {
	return optim.Step(param, grad, lr)
}
