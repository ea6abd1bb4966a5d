package optim

import (
	"fmt"
	"sort"
)

// Constant is a schedule with a fixed learning rate.
type Constant float64

// LR returns the fixed rate.
func (c Constant) LR(int) float64 {
	return float64(c)
}

// String implements fmt.Stringer.
func (c Constant) String() string {
	return fmt.Sprintf("constant(%g)", float64(c))
}

// PiecewiseSchedule holds each rate from its epoch until the next listed
// epoch. See Piecewise.
type PiecewiseSchedule struct {
	epochs  []int
	rates   []float64
	initial float64
}

// Piecewise builds a step schedule from an epoch → rate mapping.
//
// A rate applies from its epoch until the next listed epoch. Before the first
// listed epoch the rate for epoch 0 is used if present, otherwise DefaultLR.
//
// Example:
//
//	s := optim.Piecewise(map[int]float64{0: 0.001, 100: 0.01, 500: 0.1})
//	s.LR(99)  // 0.001
//	s.LR(100) // 0.01
//	s.LR(900) // 0.1
func Piecewise(steps map[int]float64) *PiecewiseSchedule {
	s := &PiecewiseSchedule{initial: DefaultLR}
	if lr, ok := steps[0]; ok {
		s.initial = lr
	}

	s.epochs = make([]int, 0, len(steps))
	for epoch := range steps {
		s.epochs = append(s.epochs, epoch)
	}
	sort.Ints(s.epochs)

	s.rates = make([]float64, len(s.epochs))
	for i, epoch := range s.epochs {
		s.rates[i] = steps[epoch]
	}
	return s
}

// LR returns the rate of the last listed epoch at or before epoch.
func (s *PiecewiseSchedule) LR(epoch int) float64 {
	// Index of the first listed epoch strictly after epoch.
	i := sort.SearchInts(s.epochs, epoch+1)
	if i == 0 {
		return s.initial
	}
	return s.rates[i-1]
}

// String implements fmt.Stringer.
func (s *PiecewiseSchedule) String() string {
	return fmt.Sprintf("piecewise(%v → %v)", s.epochs, s.rates)
}
