// Package activation is the catalog of elementwise activation functions used
// by dense layers.
//
// The catalog is closed: every activation is a Kind, mapped to a fixed
// (title, forward, backward) record. Both functions are clamped to declared
// bounds so large-magnitude inputs can never leave the range.
package activation

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownActivation is returned when a name is not in the catalog.
var ErrUnknownActivation = errors.New("unknown activation")

// Kind identifies an activation in the catalog.
type Kind int

const (
	// Sigmoid is 1 / (1 + exp(-x)), in [0, 1].
	Sigmoid Kind = iota
	// Tanh is the hyperbolic tangent, in [-1, 1].
	Tanh
)

// Default is the activation used when none is named.
const Default = Sigmoid

// Activation pairs a forward function with its derivative.
type Activation struct {
	Title    string
	Forward  func(x float64) float64
	Backward func(x float64) float64
}

// limit clamps fn to [lo, hi].
func limit(fn func(float64) float64, lo, hi float64) func(float64) float64 {
	return func(x float64) float64 {
		out := fn(x)
		if out > hi {
			return hi
		}
		if out < lo {
			return lo
		}
		return out
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func sech2(x float64) float64 {
	c := math.Cosh(x)
	return 1 / (c * c)
}

var catalog = [...]struct {
	name string
	act  Activation
}{
	Sigmoid: {
		name: "sigmoid",
		act: Activation{
			Title:   "Sigmoid",
			Forward: limit(sigmoid, 0, 1),
			Backward: limit(func(x float64) float64 {
				f := sigmoid(x)
				return f * (1 - f)
			}, 0, 1),
		},
	},
	Tanh: {
		name: "tanh",
		act: Activation{
			Title:    "Tanh",
			Forward:  limit(math.Tanh, -1, 1),
			Backward: limit(sech2, 0, 1),
		},
	},
}

// String returns the catalog name of k.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].name
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(catalog)
}

// Kinds returns every catalog member in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(catalog))
	for i := range catalog {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Parse resolves a catalog name. An empty name resolves to Default.
func Parse(name string) (Kind, error) {
	if name == "" {
		return Default, nil
	}
	for i, entry := range catalog {
		if entry.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownActivation)
}

// Get returns the record for k.
// Panics if k is not a catalog member.
func Get(k Kind) Activation {
	if !k.valid() {
		panic(fmt.Sprintf("activation: %v is not in the catalog", k))
	}
	return catalog[k].act
}

// Lookup resolves a name straight to its record.
func Lookup(name string) (Activation, error) {
	k, err := Parse(name)
	if err != nil {
		return Activation{}, err
	}
	return Get(k), nil
}
