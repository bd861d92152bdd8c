package observer

// Observer is the management surface shared by all behaviors attached to a
// container of type T: the enabled gate, the diagnostic name, and the
// non-owning target back-reference. Base[T] implements it.
type Observer[T any] interface {
	Enable()
	Disable()
	IsEnabled() bool
	Name() string
	Target() *T
	SetTarget(*T)
}

// NodeObserver reacts to edge-topology changes on a single observed node.
// N is the concrete node representation and E the concrete edge
// representation, so the same behavior code is reusable across graph
// element types.
//
// Removal is a two-phase notification. The detailed callback fires before
// the edge is unlinked, so the behavior can still inspect the edge and the
// adjacent node; the summary callback fires immediately after, once the
// node's adjacency reflects the removal (for example to recompute a degree).
// The edge and adjacent-node arguments are valid only for the duration of
// the callback.
//
// Callbacks are invoked only by the owning container, only at its structural
// mutation points, and only while the behavior is enabled.
type NodeObserver[N, E any] interface {
	Observer[N]

	// OnInEdgeInserted fires immediately after an edge targeting the
	// observed node has been created.
	OnInEdgeInserted(target, source *N, edge *E)

	// OnInEdgeRemoved fires when an in-edge is about to be destroyed,
	// while it is still structurally present.
	OnInEdgeRemoved(target, source *N, edge *E)

	// OnInEdgeRemovedPost fires immediately after an in-edge has been
	// destroyed.
	OnInEdgeRemovedPost(target *N)

	// OnOutEdgeInserted fires immediately after an edge sourced from the
	// observed node has been created.
	OnOutEdgeInserted(target, dest *N, edge *E)

	// OnOutEdgeRemoved fires when an out-edge is about to be destroyed,
	// while it is still structurally present.
	OnOutEdgeRemoved(target, dest *N, edge *E)

	// OnOutEdgeRemovedPost fires immediately after an out-edge has been
	// destroyed.
	OnOutEdgeRemovedPost(target *N)
}

// NodeBase is the embeddable default NodeObserver implementation: every
// reaction point is a no-op, so concrete behaviors override only what they
// need.
type NodeBase[N, E any] struct {
	Base[N]
}

// NewNodeBase returns a NodeBase carrying the given diagnostic name.
func NewNodeBase[N, E any](name string) NodeBase[N, E] {
	return NodeBase[N, E]{Base: NewBase[N](name)}
}

func (NodeBase[N, E]) OnInEdgeInserted(target, source *N, edge *E)  {}
func (NodeBase[N, E]) OnInEdgeRemoved(target, source *N, edge *E)   {}
func (NodeBase[N, E]) OnInEdgeRemovedPost(target *N)                {}
func (NodeBase[N, E]) OnOutEdgeInserted(target, dest *N, edge *E)   {}
func (NodeBase[N, E]) OnOutEdgeRemoved(target, dest *N, edge *E)    {}
func (NodeBase[N, E]) OnOutEdgeRemovedPost(target *N)               {}
