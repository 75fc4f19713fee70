package graph

import (
	"encoding/json"
	"fmt"
)

type nodeJSON struct {
	Name  string `json:"name"`
	Edges []Edge `json:"edges"`
}

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
}

// MarshalJSON - nodes sorted by name, edges in insertion order.
func (that *Graph) MarshalJSON() ([]byte, error) {
	out := graphJSON{Nodes: make([]nodeJSON, 0, len(that.nodes))}
	for _, name := range that.Names() {
		out.Nodes = append(out.Nodes, nodeJSON{Name: name, Edges: that.nodes[name].Edges()})
	}

	return json.Marshal(out)
}

func (that *Graph) UnmarshalJSON(data []byte) error {
	var in graphJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("failed to unmarshal graph: %w", err)
	}

	that.nodes = make(map[string]*Node, len(in.Nodes))
	for _, node := range in.Nodes {
		that.AddNode(node.Name, node.Edges...)
	}

	return nil
}

func (that *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{Name: that.name, Edges: that.Edges()})
}
