package nn

import (
	"bytes"
	"io"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/densenet/internal/optim"
	"github.com/born-ml/densenet/internal/tensor"
)

var discard = log.New(io.Discard, "", 0)

type recordingSchedule struct {
	epochs []int
}

func (r *recordingSchedule) LR(epoch int) float64 {
	r.epochs = append(r.epochs, epoch)
	return 0.1
}

func xorData() (*tensor.Tensor, *tensor.Tensor) {
	x := tensor.MustNew([][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	y := tensor.MustNew([][]float64{{0}, {1}, {1}, {0}})
	return x, y
}

func TestFitConfig_Defaults(t *testing.T) {
	cfg := FitConfig{}.withDefaults()

	assert.Equal(t, 1000, cfg.Epochs)
	assert.Equal(t, optim.Constant(optim.DefaultLR), cfg.Schedule)
	assert.Equal(t, log.Default(), cfg.Logger)
	assert.Equal(t, 50, cfg.ReportEvery)

	cfg = FitConfig{Epochs: 45, LearningRate: 0.3}.withDefaults()
	assert.Equal(t, optim.Constant(0.3), cfg.Schedule)
	assert.Equal(t, 3, cfg.ReportEvery)
}

func TestFit_Progress(t *testing.T) {
	net, err := NewNetwork(2, 1, "sigmoid", Hidden{Features: 3, Activation: "tanh"})
	require.NoError(t, err)
	x, y := xorData()

	var buf bytes.Buffer
	report, err := net.Fit(x, y, FitConfig{Epochs: 45, Logger: log.New(&buf, "", 0)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 15)
	assert.True(t, strings.HasPrefix(lines[0], "Epoch 0: "), lines[0])
	assert.True(t, strings.HasPrefix(lines[14], "Epoch 42: "), lines[14])
	assert.Len(t, report.Losses, 45)
	assert.Equal(t, report.Losses[0], report.Initial())
	assert.Equal(t, report.Losses[44], report.Final())
}

func TestFit_UsesSchedulePerEpoch(t *testing.T) {
	net, err := NewNetwork(2, 1, "sigmoid", Hidden{Features: 3})
	require.NoError(t, err)
	x, y := xorData()

	sched := &recordingSchedule{}
	_, err = net.Fit(x, y, FitConfig{Epochs: 5, Schedule: sched, Logger: discard})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, sched.epochs)
}

func TestFit_TargetMismatch(t *testing.T) {
	net, err := NewNetwork(2, 1, "sigmoid")
	require.NoError(t, err)
	x, _ := xorData()

	report, err := net.Fit(x, tensor.Zeros(4, 2), FitConfig{Epochs: 3, Logger: discard})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "epoch 0")
	assert.Empty(t, report.Losses)
	assert.Equal(t, 0.0, report.Final())
}

// TestFit_XOR trains 2 → 3 (tanh) → 1 (sigmoid) on XOR from many seeds and
// expects nearly every run to end with a lower loss than it started.
func TestFit_XOR(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping training run in short mode")
	}

	const seeds = 40
	x, y := xorData()

	for _, mode := range []BiasReduction{BiasRowMean, BiasBatchMean} {
		t.Run(mode.String(), func(t *testing.T) {
			improved := 0
			for seed := int64(0); seed < seeds; seed++ {
				net, err := Build(NetworkConfig{
					FeaturesIn:   2,
					FeaturesOut:  1,
					Activation:   "sigmoid",
					Hidden:       []Hidden{{Features: 3, Activation: "tanh"}},
					BiasGradient: mode,
					Rand:         rand.New(rand.NewSource(seed)),
				})
				require.NoError(t, err)

				report, err := net.Fit(x, y, FitConfig{
					Epochs:   2000,
					Schedule: optim.Constant(0.5),
					Logger:   discard,
				})
				require.NoError(t, err)
				if report.Final() < report.Initial() {
					improved++
				}
			}
			assert.GreaterOrEqual(t, improved, seeds*95/100)
		})
	}
}
