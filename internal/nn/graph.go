package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/tensor"
)

// NodeID addresses a layer inside a Graph. IDs are stable for the lifetime
// of the graph.
type NodeID int

// NoNode marks a missing neighbor.
const NoNode NodeID = -1

// Endpoint is one side of a new layer: either a raw feature count or an
// existing node to link to.
type Endpoint struct {
	features int
	node     NodeID
}

// Size is an endpoint with a raw feature count and no neighbor.
func Size(features int) Endpoint {
	return Endpoint{features: features, node: NoNode}
}

// Neighbor is an endpoint linking to an existing node. The new layer takes
// its feature count from the neighbor.
func Neighbor(id NodeID) Endpoint {
	return Endpoint{node: id}
}

// IsNode reports whether the endpoint refers to an existing node.
func (e Endpoint) IsNode() bool {
	return e.node != NoNode
}

type node struct {
	layer Layer
	prev  NodeID
	next  NodeID
}

// Graph is an arena of layers linked into doubly-linked chains.
//
// Links are stored as node indices rather than pointers between layers.
// A node without a previous neighbor is the head of its chain, a node
// without a next neighbor its tail.
//
// Example:
//
//	g := nn.NewGraph()
//	first, _ := nn.NewDense(g, nn.Size(2), nn.Size(3), nn.DenseConfig{Activation: "tanh"})
//	last, _ := nn.NewDense(g, nn.Neighbor(first.Node()), nn.Size(1), nn.DenseConfig{})
//	out, err := g.Propagate(last.Node(), x) // runs first, then last
type Graph struct {
	nodes []node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Graph) mustNode(id NodeID) *node {
	if !g.valid(id) {
		panic(fmt.Sprintf("nn.Graph: node %d out of range [0, %d)", id, len(g.nodes)))
	}
	return &g.nodes[id]
}

// Layer returns the layer stored at id.
// Panics if id is not in the graph.
func (g *Graph) Layer(id NodeID) Layer {
	return g.mustNode(id).layer
}

// Prev returns the previous neighbor of id, or NoNode.
func (g *Graph) Prev(id NodeID) NodeID {
	return g.mustNode(id).prev
}

// Next returns the next neighbor of id, or NoNode.
func (g *Graph) Next(id NodeID) NodeID {
	return g.mustNode(id).next
}

// Resolve returns the feature counts a layer between in and out must have.
// A node endpoint on the input side supplies its FeaturesOut, on the output
// side its FeaturesIn.
func (g *Graph) Resolve(in, out Endpoint) (featuresIn, featuresOut int, err error) {
	featuresIn, err = g.resolve(in, func(l Layer) int { return l.FeaturesOut() })
	if err != nil {
		return 0, 0, fmt.Errorf("input side: %w", err)
	}
	featuresOut, err = g.resolve(out, func(l Layer) int { return l.FeaturesIn() })
	if err != nil {
		return 0, 0, fmt.Errorf("output side: %w", err)
	}
	return featuresIn, featuresOut, nil
}

func (g *Graph) resolve(e Endpoint, size func(Layer) int) (int, error) {
	if !e.IsNode() {
		if e.features <= 0 {
			return 0, fmt.Errorf("feature count %d must be positive", e.features)
		}
		return e.features, nil
	}
	if !g.valid(e.node) {
		return 0, fmt.Errorf("node %d not in graph: %w", e.node, ErrBrokenLink)
	}
	return size(g.nodes[e.node].layer), nil
}

// Insert adds l to the graph and links it to the node endpoints of in and
// out. All links are validated before anything changes, so on error the
// graph is untouched.
func (g *Graph) Insert(l Layer, in, out Endpoint) (NodeID, error) {
	id := NodeID(len(g.nodes))
	if in.IsNode() {
		if err := g.checkLink(in.node, l, id); err != nil {
			return NoNode, err
		}
	}
	if out.IsNode() {
		if err := g.checkLinkTo(out.node, l, id); err != nil {
			return NoNode, err
		}
	}
	if in.IsNode() && out.IsNode() && g.Head(in.node) == out.node {
		return NoNode, fmt.Errorf("linking node %d to %d closes a cycle: %w", in.node, out.node, ErrBrokenLink)
	}

	g.nodes = append(g.nodes, node{layer: l, prev: NoNode, next: NoNode})
	if in.IsNode() {
		g.nodes[in.node].next = id
		g.nodes[id].prev = in.node
	}
	if out.IsNode() {
		g.nodes[id].next = out.node
		g.nodes[out.node].prev = id
	}
	return id, nil
}

// checkLink validates prev → (l at id).
func (g *Graph) checkLink(prev NodeID, l Layer, id NodeID) error {
	if !g.valid(prev) {
		return fmt.Errorf("node %d not in graph: %w", prev, ErrBrokenLink)
	}
	p := g.nodes[prev]
	if p.next != NoNode {
		return fmt.Errorf("node %d already linked to %d: %w", prev, p.next, ErrBrokenLink)
	}
	if p.layer.FeaturesOut() != l.FeaturesIn() {
		return fmt.Errorf("node %d outputs %d features, node %d expects %d: %w",
			prev, p.layer.FeaturesOut(), id, l.FeaturesIn(), ErrBrokenLink)
	}
	return nil
}

// checkLinkTo validates (l at id) → next.
func (g *Graph) checkLinkTo(next NodeID, l Layer, id NodeID) error {
	if !g.valid(next) {
		return fmt.Errorf("node %d not in graph: %w", next, ErrBrokenLink)
	}
	n := g.nodes[next]
	if n.prev != NoNode {
		return fmt.Errorf("node %d already linked from %d: %w", next, n.prev, ErrBrokenLink)
	}
	if l.FeaturesOut() != n.layer.FeaturesIn() {
		return fmt.Errorf("node %d outputs %d features, node %d expects %d: %w",
			id, l.FeaturesOut(), next, n.layer.FeaturesIn(), ErrBrokenLink)
	}
	return nil
}

// Link connects two existing nodes so that next follows prev.
//
// Fails with ErrBrokenLink if prev's output width differs from next's input
// width, if prev already has a next neighbor or next a previous one, or if
// the link would close a cycle.
func (g *Graph) Link(prev, next NodeID) error {
	if !g.valid(next) {
		return fmt.Errorf("node %d not in graph: %w", next, ErrBrokenLink)
	}
	if prev == next {
		return fmt.Errorf("node %d linked to itself: %w", prev, ErrBrokenLink)
	}
	n := g.nodes[next]
	if n.prev != NoNode {
		return fmt.Errorf("node %d already linked from %d: %w", next, n.prev, ErrBrokenLink)
	}
	if err := g.checkLink(prev, n.layer, next); err != nil {
		return err
	}
	if g.Head(prev) == next {
		return fmt.Errorf("linking node %d to %d closes a cycle: %w", prev, next, ErrBrokenLink)
	}

	g.nodes[prev].next = next
	g.nodes[next].prev = prev
	return nil
}

// Head returns the first node of the chain containing id.
func (g *Graph) Head(id NodeID) NodeID {
	for g.mustNode(id).prev != NoNode {
		id = g.nodes[id].prev
	}
	return id
}

// Tail returns the last node of the chain containing id.
func (g *Graph) Tail(id NodeID) NodeID {
	for g.mustNode(id).next != NoNode {
		id = g.nodes[id].next
	}
	return id
}

// List returns the nodes of the chain containing id, head to tail.
// The chain is walked on every call.
func (g *Graph) List(id NodeID) []NodeID {
	var ids []NodeID
	for cur := g.Head(id); cur != NoNode; cur = g.nodes[cur].next {
		ids = append(ids, cur)
	}
	return ids
}

// Layers returns the layers of the chain containing id, head to tail.
func (g *Graph) Layers(id NodeID) []Layer {
	ids := g.List(id)
	layers := make([]Layer, len(ids))
	for i, n := range ids {
		layers[i] = g.nodes[n].layer
	}
	return layers
}

// Propagate runs Forward on every layer of the chain containing id, from
// head to tail, feeding each output into the next layer.
// Returns the tail's output.
func (g *Graph) Propagate(id NodeID, features *tensor.Tensor) (*tensor.Tensor, error) {
	return forwardAll(g.Layers(id), features)
}

// Backpropagate runs Backward on every layer of the chain containing id,
// from tail to head. Returns the error at the head's input.
func (g *Graph) Backpropagate(id NodeID, err *tensor.Tensor) (*tensor.Tensor, error) {
	return backwardAll(g.Layers(id), err)
}

func forwardAll(layers []Layer, x *tensor.Tensor) (*tensor.Tensor, error) {
	for i, l := range layers {
		var err error
		x, err = l.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("forward: layer %d (%s): %w", i, l.Type(), err)
		}
	}
	return x, nil
}

func backwardAll(layers []Layer, e *tensor.Tensor) (*tensor.Tensor, error) {
	for i := len(layers) - 1; i >= 0; i-- {
		var err error
		e, err = layers[i].Backward(e)
		if err != nil {
			return nil, fmt.Errorf("backward: layer %d (%s): %w", i, layers[i].Type(), err)
		}
	}
	return e, nil
}
