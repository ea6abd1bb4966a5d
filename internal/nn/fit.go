package nn

import (
	"fmt"
	"log"

	"github.com/born-ml/densenet/internal/optim"
	"github.com/born-ml/densenet/internal/tensor"
)

// FitConfig holds configuration for Network.Fit.
type FitConfig struct {
	Epochs       int            // Number of full passes (default: 1000)
	LearningRate float64        // Constant rate, used when Schedule is nil (default: optim.DefaultLR)
	Schedule     optim.Schedule // Rate per epoch; overrides LearningRate
	Logger       *log.Logger    // Progress sink (default: log.Default())
	ReportEvery  int            // Epochs between progress lines (default: ceil(Epochs/20))
}

// withDefaults fills zero fields.
func (c FitConfig) withDefaults() FitConfig {
	if c.Epochs <= 0 {
		c.Epochs = 1000
	}
	if c.Schedule == nil {
		lr := c.LearningRate
		if lr == 0 {
			lr = optim.DefaultLR
		}
		c.Schedule = optim.Constant(lr)
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	if c.ReportEvery <= 0 {
		c.ReportEvery = (c.Epochs + 19) / 20
	}
	return c
}

// Report is the outcome of Fit.
type Report struct {
	// Losses holds the mean squared error of every epoch, measured by that
	// epoch's full pass before its weight update.
	Losses []float64
}

// Initial returns the loss of the first epoch.
func (r Report) Initial() float64 {
	if len(r.Losses) == 0 {
		return 0
	}
	return r.Losses[0]
}

// Final returns the loss of the last completed epoch.
func (r Report) Final() float64 {
	if len(r.Losses) == 0 {
		return 0
	}
	return r.Losses[len(r.Losses)-1]
}

// Fit trains the network on one batch with full-batch gradient descent.
//
// Each epoch runs FullPass, records mean(square(error)), and calls
// UpdateWeights with the schedule's rate for the epoch. Every ReportEvery
// epochs a progress line is written to the logger.
//
// The first error aborts training. The report then holds the losses of the
// epochs completed so far.
//
// Example:
//
//	report, err := net.Fit(x, y, nn.FitConfig{
//	    Epochs:   1500,
//	    Schedule: optim.Piecewise(map[int]float64{0: 0.001, 100: 0.01, 500: 0.1}),
//	})
func (n *Network) Fit(features, target *tensor.Tensor, cfg FitConfig) (Report, error) {
	cfg = cfg.withDefaults()

	report := Report{Losses: make([]float64, 0, cfg.Epochs)}
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		diff, err := n.FullPass(features, target)
		if err != nil {
			return report, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		loss := MSE(diff)

		if err := n.UpdateWeights(cfg.Schedule.LR(epoch)); err != nil {
			return report, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		report.Losses = append(report.Losses, loss)

		if epoch%cfg.ReportEvery == 0 {
			cfg.Logger.Printf("Epoch %d: %v", epoch, loss)
		}
	}
	return report, nil
}
