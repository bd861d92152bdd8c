// Package topology binds the generic observable-graph containers to the
// concrete node/edge representations used by the scenario runner, and adds
// name-indexed lookup on top of the owning graph.
package topology

import (
	"fmt"

	"github.com/vk/graphwatch/internal/graph"
	"github.com/vk/graphwatch/internal/observer"
)

// NodeData is the payload carried by scenario nodes and groups.
type NodeData struct {
	Name string
}

// EdgeData is the payload carried by scenario edges.
type EdgeData struct {
	Label string
}

// Concrete instantiations of the generic containers and observer contracts.
type (
	Node          = graph.Node[NodeData, EdgeData]
	Edge          = graph.Edge[NodeData, EdgeData]
	Group         = graph.Group[NodeData, EdgeData]
	NodeObserver  = observer.NodeObserver[Node, Edge]
	GroupObserver = observer.GroupObserver[Group, Node]
)

// NodeName renders a node for logs and reports.
func NodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Data.Name
}

// Graph is the scenario-facing graph: the generic owning root plus
// name-to-container indexes for declarative lookup.
type Graph struct {
	*graph.Graph[NodeData, EdgeData]

	nodesByName  map[string]*Node
	groupsByName map[string]*Group
}

// New returns an empty, indexed graph.
func New() *Graph {
	return &Graph{
		Graph:        graph.New[NodeData, EdgeData](),
		nodesByName:  make(map[string]*Node),
		groupsByName: make(map[string]*Group),
	}
}

// AddNode creates a node under the given name. Adding the same name twice is
// idempotent and returns the existing node.
func (t *Graph) AddNode(name string) *Node {
	if n, ok := t.nodesByName[name]; ok {
		return n
	}
	n := t.CreateNode(NodeData{Name: name})
	t.nodesByName[name] = n
	return n
}

// AddGroup creates a group under the given name. Adding the same name twice
// is idempotent and returns the existing group.
func (t *Graph) AddGroup(name string) *Group {
	if g, ok := t.groupsByName[name]; ok {
		return g
	}
	g := t.CreateGroup(NodeData{Name: name})
	t.groupsByName[name] = g
	return g
}

// NodeByName looks a node up by its declared name.
func (t *Graph) NodeByName(name string) (*Node, bool) {
	n, ok := t.nodesByName[name]
	return n, ok
}

// GroupByName looks a group up by its declared name.
func (t *Graph) GroupByName(name string) (*Group, bool) {
	g, ok := t.groupsByName[name]
	return g, ok
}

// InsertEdge links two nodes, resolved by name, with a labelled edge.
func (t *Graph) InsertEdge(from, to, label string) (*Edge, error) {
	src, ok := t.nodesByName[from]
	if !ok {
		return nil, fmt.Errorf("source node %q not found", from)
	}
	dst, ok := t.nodesByName[to]
	if !ok {
		return nil, fmt.Errorf("destination node %q not found", to)
	}
	return t.CreateEdge(src, dst, EdgeData{Label: label})
}

// EdgeBetween returns the first live edge from one named node to another.
func (t *Graph) EdgeBetween(from, to string) (*Edge, bool) {
	src, ok := t.nodesByName[from]
	if !ok {
		return nil, false
	}
	for _, e := range src.OutEdges() {
		if tgt := e.Target(); tgt != nil && tgt.Data.Name == to {
			return e, true
		}
	}
	return nil, false
}

// DropNode removes a named node (with all incident edges and memberships)
// and its index entry.
func (t *Graph) DropNode(name string) error {
	n, ok := t.nodesByName[name]
	if !ok {
		return fmt.Errorf("node %q not found", name)
	}
	if err := t.RemoveNode(n); err != nil {
		return err
	}
	delete(t.nodesByName, name)
	return nil
}
