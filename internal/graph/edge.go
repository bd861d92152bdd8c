package graph

// Edge is an immutable view of a directed connection between two nodes,
// carrying an arbitrary payload of type Q. Edges are created only through
// Graph.CreateEdge; after the edge has been removed from its graph the
// endpoint accessors return nil.
type Edge[P, Q any] struct {
	// Data is the user payload carried by the edge.
	Data Q

	source *Node[P, Q]
	target *Node[P, Q]
}

// Source returns the node the edge originates from, or nil once removed.
func (e *Edge[P, Q]) Source() *Node[P, Q] { return e.source }

// Target returns the node the edge points at, or nil once removed.
func (e *Edge[P, Q]) Target() *Node[P, Q] { return e.target }
