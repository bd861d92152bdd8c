package observer

// GroupObserver reacts to membership changes on a single observed group.
// G is the concrete group representation and N the concrete node
// representation.
//
// Callbacks fire immediately after the membership change has been applied,
// and only while the behavior is enabled.
type GroupObserver[G, N any] interface {
	Observer[G]

	// OnNodeInserted fires after a node has been inserted into the
	// observed group.
	OnNodeInserted(target *G, node *N)

	// OnNodeRemoved fires after a node has been removed from the
	// observed group.
	OnNodeRemoved(target *G, node *N)
}

// GroupBase is the embeddable default GroupObserver implementation with
// no-op reaction points.
type GroupBase[G, N any] struct {
	Base[G]
}

// NewGroupBase returns a GroupBase carrying the given diagnostic name.
func NewGroupBase[G, N any](name string) GroupBase[G, N] {
	return GroupBase[G, N]{Base: NewBase[G](name)}
}

func (GroupBase[G, N]) OnNodeInserted(target *G, node *N) {}
func (GroupBase[G, N]) OnNodeRemoved(target *G, node *N)  {}
