package graph

import "fmt"

// Graph is the owning root of a topology: it creates and destroys nodes,
// edges, and groups, and drives the notification protocol at each structural
// mutation. P is the node/group payload type, Q the edge payload type.
type Graph[P, Q any] struct {
	nodes  []*Node[P, Q]
	edges  []*Edge[P, Q]
	groups []*Group[P, Q]
}

// New returns an empty graph.
func New[P, Q any]() *Graph[P, Q] {
	return &Graph[P, Q]{}
}

// CreateNode adds a new node carrying the given payload and returns it.
func (g *Graph[P, Q]) CreateNode(data P) *Node[P, Q] {
	n := &Node[P, Q]{Data: data, owner: g}
	g.nodes = append(g.nodes, n)
	return n
}

// CreateGroup adds a new, empty group carrying the given payload.
func (g *Graph[P, Q]) CreateGroup(data P) *Group[P, Q] {
	grp := &Group[P, Q]{Data: data, owner: g}
	g.groups = append(g.groups, grp)
	return grp
}

// CreateEdge links source to target with a new directed edge, then notifies
// the source's behaviors (out-edge inserted) followed by the target's
// (in-edge inserted). Self-referential edges are rejected, as are nodes that
// do not belong to this graph.
func (g *Graph[P, Q]) CreateEdge(source, target *Node[P, Q], data Q) (*Edge[P, Q], error) {
	if source == nil || target == nil {
		return nil, fmt.Errorf("edge endpoints must not be nil")
	}
	if source == target {
		return nil, fmt.Errorf("self-referential edge not allowed")
	}
	if source.owner != g || target.owner != g {
		return nil, fmt.Errorf("edge endpoints must belong to this graph")
	}

	e := &Edge[P, Q]{Data: data, source: source, target: target}
	source.outEdges = append(source.outEdges, e)
	target.inEdges = append(target.inEdges, e)
	g.edges = append(g.edges, e)

	source.notifyOutEdgeInserted(target, e)
	target.notifyInEdgeInserted(source, e)
	return e, nil
}

// RemoveEdge destroys an edge with the two-phase protocol: the detailed
// removal callbacks fire on both endpoints while the edge is still linked,
// the edge is unlinked, then the summary callbacks fire. The edge's endpoint
// accessors return nil afterwards.
func (g *Graph[P, Q]) RemoveEdge(e *Edge[P, Q]) error {
	if e == nil {
		return fmt.Errorf("edge must not be nil")
	}
	idx := -1
	for i, cur := range g.edges {
		if cur == e {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("edge not found in graph")
	}

	source, target := e.source, e.target
	source.notifyOutEdgeRemoved(target, e)
	target.notifyInEdgeRemoved(source, e)

	source.removeOutEdge(e)
	target.removeInEdge(e)
	g.edges = append(g.edges[:idx], g.edges[idx+1:]...)

	source.notifyOutEdgeRemovedPost()
	target.notifyInEdgeRemovedPost()

	e.source = nil
	e.target = nil
	return nil
}

// RemoveNode destroys a node: every incident edge is removed with the full
// two-phase protocol, every group membership is dissolved with a membership
// notification, and the node's own behaviors are released.
func (g *Graph[P, Q]) RemoveNode(n *Node[P, Q]) error {
	if n == nil || n.owner != g {
		return fmt.Errorf("node does not belong to this graph")
	}

	for _, e := range n.InEdges() {
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	for _, e := range n.OutEdges() {
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	for _, grp := range g.groups {
		if grp.Has(n) {
			grp.removeNode(n)
		}
	}

	for i, cur := range g.nodes {
		if cur == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	n.detachAll()
	n.owner = nil
	return nil
}

// RemoveGroup destroys a group. Members are not destroyed; each remaining
// membership is dissolved with a membership notification first.
func (g *Graph[P, Q]) RemoveGroup(grp *Group[P, Q]) error {
	if grp == nil || grp.owner != g {
		return fmt.Errorf("group does not belong to this graph")
	}
	for _, n := range grp.Nodes() {
		grp.removeNode(n)
	}
	for i, cur := range g.groups {
		if cur == grp {
			g.groups = append(g.groups[:i], g.groups[i+1:]...)
			break
		}
	}
	grp.detachAll()
	grp.owner = nil
	return nil
}

// GroupNode inserts a node into a group and notifies the group's behaviors.
// Inserting a node that is already a member is an error.
func (g *Graph[P, Q]) GroupNode(grp *Group[P, Q], n *Node[P, Q]) error {
	if grp == nil || grp.owner != g {
		return fmt.Errorf("group does not belong to this graph")
	}
	if n == nil || n.owner != g {
		return fmt.Errorf("node does not belong to this graph")
	}
	if grp.Has(n) {
		return fmt.Errorf("node is already a member of the group")
	}
	grp.insertNode(n)
	return nil
}

// UngroupNode removes a node from a group and notifies the group's
// behaviors. Removing a non-member is an error.
func (g *Graph[P, Q]) UngroupNode(grp *Group[P, Q], n *Node[P, Q]) error {
	if grp == nil || grp.owner != g {
		return fmt.Errorf("group does not belong to this graph")
	}
	if !grp.Has(n) {
		return fmt.Errorf("node is not a member of the group")
	}
	grp.removeNode(n)
	return nil
}

// Nodes returns a snapshot of all nodes in creation order.
func (g *Graph[P, Q]) Nodes() []*Node[P, Q] {
	return append([]*Node[P, Q]{}, g.nodes...)
}

// Edges returns a snapshot of all live edges in creation order.
func (g *Graph[P, Q]) Edges() []*Edge[P, Q] {
	return append([]*Edge[P, Q]{}, g.edges...)
}

// Groups returns a snapshot of all groups in creation order.
func (g *Graph[P, Q]) Groups() []*Group[P, Q] {
	return append([]*Group[P, Q]{}, g.groups...)
}
