package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/densenet/internal/tensor"
)

// buildChain creates a chain of Dense layers with the given widths.
func buildChain(t *testing.T, g *Graph, widths ...int) []*Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(11))

	var layers []*Dense
	in := Size(widths[0])
	for _, w := range widths[1:] {
		d, err := NewDense(g, in, Size(w), DenseConfig{Activation: "tanh", Rand: rng})
		require.NoError(t, err)
		layers = append(layers, d)
		in = Neighbor(d.Node())
	}
	return layers
}

func TestGraph_LinkingAtConstruction(t *testing.T) {
	g := NewGraph()
	layers := buildChain(t, g, 2, 3, 4)
	a, b := layers[0], layers[1]

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, b.FeaturesIn(), "size taken from the neighbor")
	assert.Equal(t, NoNode, g.Prev(a.Node()))
	assert.Equal(t, b.Node(), g.Next(a.Node()))
	assert.Equal(t, a.Node(), g.Prev(b.Node()))
	assert.Equal(t, NoNode, g.Next(b.Node()))
	assert.Same(t, b, g.Layer(b.Node()))
}

func TestGraph_NeighborOnOutputSide(t *testing.T) {
	g := NewGraph()
	tail, err := NewDense(g, Size(5), Size(1), DenseConfig{})
	require.NoError(t, err)

	head, err := NewDense(g, Size(2), Neighbor(tail.Node()), DenseConfig{})
	require.NoError(t, err)

	assert.Equal(t, 5, head.FeaturesOut())
	assert.Equal(t, head.Node(), g.Head(tail.Node()))
	assert.Equal(t, tail.Node(), g.Tail(head.Node()))
}

func TestGraph_ListFromAnyNode(t *testing.T) {
	g := NewGraph()
	layers := buildChain(t, g, 2, 3, 4, 5, 6)

	want := make([]NodeID, len(layers))
	for i, l := range layers {
		want[i] = l.Node()
	}

	for _, l := range layers {
		assert.Equal(t, want, g.List(l.Node()))
		listed := g.Layers(l.Node())
		require.Len(t, listed, len(layers))
		for i := range listed {
			assert.Same(t, layers[i], listed[i])
		}
	}
}

func TestGraph_ListIsRecomputed(t *testing.T) {
	g := NewGraph()
	layers := buildChain(t, g, 2, 3)
	assert.Len(t, g.List(layers[0].Node()), 1)

	_, err := NewDense(g, Neighbor(layers[0].Node()), Size(1), DenseConfig{})
	require.NoError(t, err)
	assert.Len(t, g.List(layers[0].Node()), 2)
}

func TestGraph_SeparateChains(t *testing.T) {
	g := NewGraph()
	first := buildChain(t, g, 2, 3, 4)
	second := buildChain(t, g, 4, 1)

	assert.Len(t, g.List(first[0].Node()), 2)
	assert.Len(t, g.List(second[0].Node()), 1)

	require.NoError(t, g.Link(first[1].Node(), second[0].Node()))
	assert.Len(t, g.List(second[0].Node()), 3)
	assert.Equal(t, first[0].Node(), g.Head(second[0].Node()))
}

func TestGraph_LinkErrors(t *testing.T) {
	g := NewGraph()
	a := buildChain(t, g, 2, 3)[0]
	b := buildChain(t, g, 4, 5)[0]
	c := buildChain(t, g, 3, 3)[0]
	d := buildChain(t, g, 3, 2)[0]

	tests := []struct {
		name       string
		prev, next NodeID
	}{
		{"width mismatch", a.Node(), b.Node()},
		{"self link", c.Node(), c.Node()},
		{"unknown node", a.Node(), NodeID(99)},
		{"unknown prev", NodeID(-7), c.Node()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, g.Link(tt.prev, tt.next), ErrBrokenLink)
		})
	}

	require.NoError(t, g.Link(a.Node(), c.Node()))
	assert.ErrorIs(t, g.Link(a.Node(), d.Node()), ErrBrokenLink, "prev already linked")

	e := buildChain(t, g, 2, 3)[0]
	assert.ErrorIs(t, g.Link(e.Node(), c.Node()), ErrBrokenLink, "next already linked")

	require.NoError(t, g.Link(c.Node(), d.Node()))
	f := buildChain(t, g, 2, 2)[0]
	require.NoError(t, g.Link(d.Node(), f.Node()))
	assert.Error(t, g.Link(f.Node(), a.Node()), "widths 2 → 2 match, but the link closes a cycle")
	assert.ErrorIs(t, g.Link(f.Node(), a.Node()), ErrBrokenLink)
}

func TestGraph_FailedInsertLeavesGraphUnchanged(t *testing.T) {
	g := NewGraph()
	a := buildChain(t, g, 2, 3)[0]
	_ = buildChain(t, g, 2, 3, 4)

	before := g.Len()
	_, err := NewDense(g, Neighbor(a.Node()), Neighbor(a.Node()), DenseConfig{})
	assert.ErrorIs(t, err, ErrBrokenLink)

	_, err = NewDense(g, Neighbor(NodeID(42)), Size(1), DenseConfig{})
	assert.ErrorIs(t, err, ErrBrokenLink)

	_, err = NewDense(g, Size(0), Size(1), DenseConfig{})
	assert.Error(t, err)

	assert.Equal(t, before, g.Len())
	assert.Equal(t, NoNode, g.Next(a.Node()))
}

func TestGraph_InsertIntoLinkedSlot(t *testing.T) {
	g := NewGraph()
	layers := buildChain(t, g, 2, 3, 4)

	_, err := NewDense(g, Neighbor(layers[0].Node()), Size(4), DenseConfig{})
	assert.ErrorIs(t, err, ErrBrokenLink)
	assert.Equal(t, layers[1].Node(), g.Next(layers[0].Node()))
}

func TestGraph_PanicsOnUnknownNode(t *testing.T) {
	g := NewGraph()
	assert.Panics(t, func() { g.Layer(0) })
	assert.Panics(t, func() { g.Head(NoNode) })
}

func TestGraph_PropagateMatchesManualChain(t *testing.T) {
	g := NewGraph()
	layers := buildChain(t, g, 2, 3, 1)
	x := tensor.MustNew([][]float64{{0, 1}, {1, 0}, {1, 1}})

	// Start from the tail: propagation always begins at the head.
	out, err := g.Propagate(layers[1].Node(), x)
	require.NoError(t, err)

	h, err := layers[0].Forward(x)
	require.NoError(t, err)
	want, err := layers[1].Forward(h)
	require.NoError(t, err)

	assert.True(t, out.EqualApprox(want, 1e-12))
	assert.Same(t, layers[1].Output(), want)
}

func TestGraph_BackpropagateMatchesManualChain(t *testing.T) {
	g := NewGraph()
	layers := buildChain(t, g, 2, 3, 1)
	x := tensor.MustNew([][]float64{{0, 1}, {1, 0}, {1, 1}})
	e := tensor.MustNew([][]float64{{0.5}, {-0.25}, {1}})

	_, err := g.Propagate(layers[0].Node(), x)
	require.NoError(t, err)
	got, err := g.Backpropagate(layers[0].Node(), e)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{Rows: 3, Cols: 2}, got.Shape())

	// Same computation by hand on a twin chain with identical weights.
	g2 := NewGraph()
	twins := buildChain(t, g2, 2, 3, 1)
	for i := range twins {
		require.Equal(t, layers[i].Weights().Values(), twins[i].Weights().Values())
	}
	h, err := twins[0].Forward(x)
	require.NoError(t, err)
	_, err = twins[1].Forward(h)
	require.NoError(t, err)
	e1, err := twins[1].Backward(e)
	require.NoError(t, err)
	want, err := twins[0].Backward(e1)
	require.NoError(t, err)

	assert.True(t, got.EqualApprox(want, 1e-12))
}

func TestGraph_PropagateWrapsLayerErrors(t *testing.T) {
	g := NewGraph()
	layers := buildChain(t, g, 2, 3)

	_, err := g.Propagate(layers[0].Node(), tensor.Ones(1, 5))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "layer 0 (Dense)")

	_, err = g.Backpropagate(layers[0].Node(), tensor.Ones(1, 3))
	assert.ErrorIs(t, err, ErrNotForwarded)
}
