// Package optim implements the parameter update rule and learning-rate
// schedules used to train dense networks.
//
// This package provides:
//   - Step: plain gradient descent on one parameter tensor
//   - Schedule interface: learning rate per epoch
//   - Constant and Piecewise schedules
//
// Example usage:
//
//	schedule := optim.Piecewise(map[int]float64{0: 0.001, 100: 0.01, 500: 0.1})
//
//	for epoch := range epochs {
//	    net.FullPass(x, y)
//	    if err := net.UpdateWeights(schedule.LR(epoch)); err != nil {
//	        return err
//	    }
//	}
package optim

// Schedule yields the learning rate for an epoch.
//
// Implementations must be pure: LR may be called for any epoch, in any order.
type Schedule interface {
	// LR returns the learning rate for the given zero-based epoch.
	LR(epoch int) float64
}

// DefaultLR is the learning rate used when nothing else is specified.
const DefaultLR = 0.01
