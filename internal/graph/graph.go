// Package graph holds the weighted directed graph used as the CPU's memory.
//
// Nodes are keyed by perspective encoded board states and their edges point at the
// states that followed them, weighted by the rewards of the games they were played in.
// A Graph is not safe for concurrent mutation; merges into a shared graph must be serialized.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

var (
	ErrMismatchedEdges = errors.New("number of edge lists does not match number of nodes")
	ErrSelfMerge       = errors.New("graph cannot be merged into itself")
)

// BadReference is an edge pointing at a node missing from the graph.
type BadReference struct {
	Node   string `json:"node"`
	BadRef string `json:"bad_ref"`
}

type Graph struct {
	nodes map[string]*Node
}

func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

func (that *Graph) Len() int {
	return len(that.nodes)
}

// EdgeCount - total number of edges over all nodes.
func (that *Graph) EdgeCount() int {
	count := 0
	for _, node := range that.nodes {
		count += node.Len()
	}

	return count
}

// Names - node keys in ascending order.
func (that *Graph) Names() []string {
	names := make([]string, 0, len(that.nodes))
	for name := range that.nodes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (that *Graph) Node(name string) (*Node, bool) {
	node, ok := that.nodes[name]
	return node, ok
}

// Lookup - like Node, but a missing key is reported as apperror.ErrLookupMiss.
func (that *Graph) Lookup(name string) (*Node, error) {
	node, ok := that.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrLookupMiss, name)
	}

	return node, nil
}

// AddNode - inserts the node, replacing any node with the same name.
func (that *Graph) AddNode(name string, edges ...Edge) {
	that.nodes[name] = NewNode(name, edges...)
}

// AddNodes - inserts or replaces nodes. edges is either nil, giving every node
// an empty edge set, or holds one edge list per name.
func (that *Graph) AddNodes(names []string, edges [][]Edge) error {
	if edges != nil && len(edges) != len(names) {
		return fmt.Errorf("%w: %d names, %d edge lists", ErrMismatchedEdges, len(names), len(edges))
	}

	for i, name := range names {
		if edges == nil {
			that.AddNode(name)
			continue
		}

		that.AddNode(name, edges[i]...)
	}

	return nil
}

// RemoveNodes - deletes nodes by name. With removeEdges, edges left pointing at
// the deleted nodes are removed as well.
func (that *Graph) RemoveNodes(removeEdges bool, names ...string) {
	for _, name := range names {
		delete(that.nodes, name)
	}

	if removeEdges {
		that.Validate(true)
	}
}

// AddConnection - sets the edge a -> b, creating either node when missing.
// An existing edge is resolved with policy.
func (that *Graph) AddConnection(a, b string, weight float64, policy ConflictPolicy) error {
	if err := policy.validate(); err != nil {
		return err
	}

	that.connect(a, b, weight, policy)

	return nil
}

// AddBidirectionalConnection - sets both a -> b and b -> a.
func (that *Graph) AddBidirectionalConnection(a, b string, weight float64, policy ConflictPolicy) error {
	if err := policy.validate(); err != nil {
		return err
	}

	that.connect(a, b, weight, policy)
	that.connect(b, a, weight, policy)

	return nil
}

func (that *Graph) connect(a, b string, weight float64, policy ConflictPolicy) {
	if _, ok := that.nodes[a]; !ok {
		that.AddNode(a)
	}

	if _, ok := that.nodes[b]; !ok {
		that.AddNode(b)
	}

	that.nodes[a].addConnections([]Edge{{To: b, Weight: weight}}, policy)
}

// RemoveConnection - drops the edge a -> b, and b -> a when biDirectional.
func (that *Graph) RemoveConnection(a, b string, biDirectional bool) {
	if node, ok := that.nodes[a]; ok {
		node.RemoveConnections(b)
	}

	if !biDirectional {
		return
	}

	if node, ok := that.nodes[b]; ok {
		node.RemoveConnections(a)
	}
}

// Merge - folds other into the graph. Edges of shared nodes are combined with policy;
// nodes only present in other are moved over as they are.
//
// Ownership of other's nodes transfers to the receiver: other is left empty.
// Merging the same episode twice counts its rewards twice.
func (that *Graph) Merge(other *Graph, policy ConflictPolicy) error {
	if err := policy.validate(); err != nil {
		return err
	}

	if other == that {
		return ErrSelfMerge
	}

	if other == nil {
		return nil
	}

	for _, name := range other.Names() {
		donor := other.nodes[name]

		node, ok := that.nodes[name]
		if !ok {
			that.nodes[name] = donor
			continue
		}

		node.addConnections(donor.Edges(), policy)
	}

	other.nodes = make(map[string]*Node)

	return nil
}

// SetAllWeights - stamps every existing edge with value. Edge sets are kept.
func (that *Graph) SetAllWeights(value float64) {
	for _, node := range that.nodes {
		for to := range node.edges {
			node.edges[to] = value
		}
	}
}

// Validate - lists edges that reference nodes missing from the graph and, with clean, removes them.
func (that *Graph) Validate(clean bool) []BadReference {
	var badRefs []BadReference

	for _, name := range that.Names() {
		for _, to := range that.nodes[name].order {
			if _, ok := that.nodes[to]; !ok {
				badRefs = append(badRefs, BadReference{Node: name, BadRef: to})
			}
		}
	}

	if clean {
		for _, ref := range badRefs {
			that.RemoveConnection(ref.Node, ref.BadRef, false)
		}
	}

	return badRefs
}

func (that *Graph) String() string {
	return fmt.Sprintf("<Graph with %d nodes>", len(that.nodes))
}
