// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient descent updates and learning-rate
// schedules for training densenet networks.
//
// # Overview
//
// This package contains:
//   - Step: in-place gradient descent, param = param - lr * grad
//   - Schedule: interface mapping an epoch to a learning rate
//   - Constant and Piecewise schedules
//
// # Basic Usage
//
//	sched := optim.Piecewise(map[int]float64{0: 0.001, 100: 0.01, 500: 0.1})
//
//	report, err := net.Fit(x, y, nn.FitConfig{Epochs: 1500, Schedule: sched})
package optim
