package graph

import "slices"

// Edge is a weighted transition to another node.
type Edge struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Node owns the outgoing edges of one board state. Edge destinations are unique
// and remember the order they were first added in.
type Node struct {
	name  string
	edges map[string]float64
	order []string
}

// NewNode - creates a node; a repeated destination keeps the last weight.
func NewNode(name string, edges ...Edge) *Node {
	node := &Node{
		name:  name,
		edges: make(map[string]float64, len(edges)),
		order: make([]string, 0, len(edges)),
	}

	for _, edge := range edges {
		node.set(edge.To, edge.Weight)
	}

	return node
}

func (that *Node) Name() string {
	return that.name
}

func (that *Node) Len() int {
	return len(that.order)
}

func (that *Node) Weight(to string) (float64, bool) {
	weight, ok := that.edges[to]
	return weight, ok
}

// Edges - returns a copy of the edges in insertion order.
func (that *Node) Edges() []Edge {
	edges := make([]Edge, 0, len(that.order))
	for _, to := range that.order {
		edges = append(edges, Edge{To: to, Weight: that.edges[to]})
	}

	return edges
}

// AddConnections - adds edges, resolving existing destinations with policy.
func (that *Node) AddConnections(edges []Edge, policy ConflictPolicy) error {
	if err := policy.validate(); err != nil {
		return err
	}

	that.addConnections(edges, policy)

	return nil
}

func (that *Node) addConnections(edges []Edge, policy ConflictPolicy) {
	for _, edge := range edges {
		if old, ok := that.edges[edge.To]; ok {
			that.edges[edge.To] = policy.resolve(old, edge.Weight)
			continue
		}

		that.set(edge.To, edge.Weight)
	}
}

// RemoveConnections - drops edges by destination; unknown names are ignored.
func (that *Node) RemoveConnections(names ...string) {
	for _, name := range names {
		if _, ok := that.edges[name]; !ok {
			continue
		}

		delete(that.edges, name)
		that.order = slices.DeleteFunc(that.order, func(to string) bool { return to == name })
	}
}

func (that *Node) set(to string, weight float64) {
	if _, ok := that.edges[to]; !ok {
		that.order = append(that.order, to)
	}

	that.edges[to] = weight
}
