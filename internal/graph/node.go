package graph

import "github.com/vk/graphwatch/internal/observer"

// Node is an observable vertex carrying an arbitrary payload of type P. It
// owns its in/out adjacency and an ordered sequence of attached behaviors,
// and it notifies those behaviors at each of its structural mutation points.
//
// Nodes are created only through Graph.CreateNode. Structural mutations go
// through the owning Graph; the notify entry points are unexported so no
// code outside this package can trigger a dispatch and bypass the enabled
// gate.
type Node[P, Q any] struct {
	// Data is the user payload carried by the node.
	Data P

	owner       *Graph[P, Q]
	inEdges     []*Edge[P, Q]
	outEdges    []*Edge[P, Q]
	observers   []observer.NodeObserver[Node[P, Q], Edge[P, Q]]
	dispatching bool
}

// Attach appends a behavior to the node's dispatch sequence and binds its
// target back-reference to this node. Attachment order is dispatch order.
// The node takes ownership of the behavior; a behavior must not be shared
// across containers. Panics if obs is nil, if the behavior is already
// attached somewhere, or when called from inside a behavior callback.
func (n *Node[P, Q]) Attach(obs observer.NodeObserver[Node[P, Q], Edge[P, Q]]) {
	if obs == nil {
		panic("graph: attach of nil behavior")
	}
	n.checkNotDispatching("attach")
	obs.SetTarget(n)
	n.observers = append(n.observers, obs)
}

// Detach removes a previously attached behavior, identified by interface
// identity, and clears its target back-reference. It reports whether the
// behavior was found. Panics when called from inside a behavior callback.
func (n *Node[P, Q]) Detach(obs observer.NodeObserver[Node[P, Q], Edge[P, Q]]) bool {
	n.checkNotDispatching("detach")
	for i, cur := range n.observers {
		if cur == obs {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			obs.SetTarget(nil)
			return true
		}
	}
	return false
}

// ObserverCount returns the number of attached behaviors.
func (n *Node[P, Q]) ObserverCount() int { return len(n.observers) }

// InDegree returns the number of edges targeting this node.
func (n *Node[P, Q]) InDegree() int { return len(n.inEdges) }

// OutDegree returns the number of edges sourced from this node.
func (n *Node[P, Q]) OutDegree() int { return len(n.outEdges) }

// InEdges returns a snapshot of the edges targeting this node, in insertion
// order.
func (n *Node[P, Q]) InEdges() []*Edge[P, Q] {
	return append([]*Edge[P, Q]{}, n.inEdges...)
}

// OutEdges returns a snapshot of the edges sourced from this node, in
// insertion order.
func (n *Node[P, Q]) OutEdges() []*Edge[P, Q] {
	return append([]*Edge[P, Q]{}, n.outEdges...)
}

func (n *Node[P, Q]) checkNotDispatching(op string) {
	if n.dispatching {
		panic("graph: behavior list mutated (" + op + ") during dispatch")
	}
}

// The notify helpers below are the only dispatch entry points. They iterate
// the behavior sequence in attachment order and skip disabled behaviors
// without invoking them.

func (n *Node[P, Q]) notifyInEdgeInserted(source *Node[P, Q], e *Edge[P, Q]) {
	n.dispatching = true
	for _, obs := range n.observers {
		if obs.IsEnabled() {
			obs.OnInEdgeInserted(n, source, e)
		}
	}
	n.dispatching = false
}

func (n *Node[P, Q]) notifyInEdgeRemoved(source *Node[P, Q], e *Edge[P, Q]) {
	n.dispatching = true
	for _, obs := range n.observers {
		if obs.IsEnabled() {
			obs.OnInEdgeRemoved(n, source, e)
		}
	}
	n.dispatching = false
}

func (n *Node[P, Q]) notifyInEdgeRemovedPost() {
	n.dispatching = true
	for _, obs := range n.observers {
		if obs.IsEnabled() {
			obs.OnInEdgeRemovedPost(n)
		}
	}
	n.dispatching = false
}

func (n *Node[P, Q]) notifyOutEdgeInserted(dest *Node[P, Q], e *Edge[P, Q]) {
	n.dispatching = true
	for _, obs := range n.observers {
		if obs.IsEnabled() {
			obs.OnOutEdgeInserted(n, dest, e)
		}
	}
	n.dispatching = false
}

func (n *Node[P, Q]) notifyOutEdgeRemoved(dest *Node[P, Q], e *Edge[P, Q]) {
	n.dispatching = true
	for _, obs := range n.observers {
		if obs.IsEnabled() {
			obs.OnOutEdgeRemoved(n, dest, e)
		}
	}
	n.dispatching = false
}

func (n *Node[P, Q]) notifyOutEdgeRemovedPost() {
	n.dispatching = true
	for _, obs := range n.observers {
		if obs.IsEnabled() {
			obs.OnOutEdgeRemovedPost(n)
		}
	}
	n.dispatching = false
}

// detachAll clears the behavior sequence and every target back-reference.
// Used when the owning graph destroys the node.
func (n *Node[P, Q]) detachAll() {
	n.checkNotDispatching("detach")
	for _, obs := range n.observers {
		obs.SetTarget(nil)
	}
	n.observers = nil
}

func (n *Node[P, Q]) removeInEdge(e *Edge[P, Q]) {
	for i, cur := range n.inEdges {
		if cur == e {
			n.inEdges = append(n.inEdges[:i], n.inEdges[i+1:]...)
			return
		}
	}
}

func (n *Node[P, Q]) removeOutEdge(e *Edge[P, Q]) {
	for i, cur := range n.outEdges {
		if cur == e {
			n.outEdges = append(n.outEdges[:i], n.outEdges[i+1:]...)
			return
		}
	}
}
