// Package main provides the densenet demo CLI.
//
// It trains a 3 → 7 → 8 → 4 network on 3-bit parity data and prints the
// layer table, predictions and targets.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/born-ml/densenet/internal/report"
	"github.com/born-ml/densenet/nn"
	"github.com/born-ml/densenet/optim"
	"github.com/born-ml/densenet/tensor"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("densenet %s\n", version)
		return
	}

	epochs := flag.Int("epochs", 1500, "Number of training epochs")
	seed := flag.Int64("seed", 0, "Weight initialization seed (0 = time based)")
	bias := flag.String("bias", "row", "Bias gradient reduction: row or batch")
	flag.Parse()

	reduction, err := parseBias(*bias)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	net, err := nn.Build(nn.NetworkConfig{
		FeaturesIn:  3,
		FeaturesOut: 4,
		Activation:  "sigmoid",
		Hidden: []nn.Hidden{
			{Features: 7, Activation: "tanh"},
			{Features: 8, Activation: "tanh"},
		},
		BiasGradient: reduction,
		Rand:         rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}

	x, y := parityData()
	res, err := net.Fit(x, y, nn.FitConfig{
		Epochs:   *epochs,
		Schedule: optim.Piecewise(map[int]float64{0: 0.001, 100: 0.01, 500: 0.1}),
	})
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	log.Printf("Loss: %.6f -> %.6f", res.Initial(), res.Final())

	fmt.Println()
	if err := report.PrintLayers(os.Stdout, net.Layers()); err != nil {
		log.Fatal(err)
	}

	if _, err := net.Forward(x); err != nil {
		log.Fatalf("Prediction failed: %v", err)
	}
	prediction := net.Output()

	fmt.Printf("\nFeatures:   %v\n", x.Values())
	fmt.Printf("\nPrediction: %v\n", prediction.Values())
	fmt.Printf("\nRounded:    %v\n", prediction.Round(tensor.Copy).Values())
	fmt.Printf("\nTarget:     %v\n", y.Values())
}

func parseBias(name string) (nn.BiasReduction, error) {
	switch name {
	case "row":
		return nn.BiasRowMean, nil
	case "batch":
		return nn.BiasBatchMean, nil
	default:
		return 0, fmt.Errorf("unknown bias reduction %q (want row or batch)", name)
	}
}

// parityData returns every 3-bit input and, per row, whether one, two or
// three bits are set and whether the count is not a multiple of three.
func parityData() (*tensor.Tensor, *tensor.Tensor) {
	features := make([][]float64, 0, 8)
	targets := make([][]float64, 0, 8)
	for n := 0; n < 8; n++ {
		row := []float64{float64(n >> 2 & 1), float64(n >> 1 & 1), float64(n & 1)}
		count := int(row[0] + row[1] + row[2])
		features = append(features, row)
		targets = append(targets, []float64{
			indicator(count == 1),
			indicator(count == 2),
			indicator(count == 3),
			indicator(count%3 != 0),
		})
	}
	return tensor.MustNew(features), tensor.MustNew(targets)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
