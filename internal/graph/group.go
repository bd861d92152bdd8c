package graph

import "github.com/vk/graphwatch/internal/observer"

// Group is an observable membership container carrying a payload of type P.
// It owns an ordered member list and an ordered sequence of attached
// behaviors, and notifies those behaviors when a node enters or leaves.
//
// Groups are created only through Graph.CreateGroup; membership mutations go
// through Graph.GroupNode and Graph.UngroupNode.
type Group[P, Q any] struct {
	// Data is the user payload carried by the group.
	Data P

	owner       *Graph[P, Q]
	nodes       []*Node[P, Q]
	observers   []observer.GroupObserver[Group[P, Q], Node[P, Q]]
	dispatching bool
}

// Attach appends a behavior to the group's dispatch sequence and binds its
// target back-reference to this group. Attachment order is dispatch order.
// Panics if obs is nil, already attached, or when called from inside a
// behavior callback.
func (g *Group[P, Q]) Attach(obs observer.GroupObserver[Group[P, Q], Node[P, Q]]) {
	if obs == nil {
		panic("graph: attach of nil behavior")
	}
	g.checkNotDispatching("attach")
	obs.SetTarget(g)
	g.observers = append(g.observers, obs)
}

// Detach removes a previously attached behavior, identified by interface
// identity, and clears its target back-reference. It reports whether the
// behavior was found. Panics when called from inside a behavior callback.
func (g *Group[P, Q]) Detach(obs observer.GroupObserver[Group[P, Q], Node[P, Q]]) bool {
	g.checkNotDispatching("detach")
	for i, cur := range g.observers {
		if cur == obs {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)
			obs.SetTarget(nil)
			return true
		}
	}
	return false
}

// ObserverCount returns the number of attached behaviors.
func (g *Group[P, Q]) ObserverCount() int { return len(g.observers) }

// Has reports whether the node is currently a member of the group.
func (g *Group[P, Q]) Has(n *Node[P, Q]) bool {
	for _, cur := range g.nodes {
		if cur == n {
			return true
		}
	}
	return false
}

// Nodes returns a snapshot of the members in insertion order.
func (g *Group[P, Q]) Nodes() []*Node[P, Q] {
	return append([]*Node[P, Q]{}, g.nodes...)
}

// Len returns the number of members.
func (g *Group[P, Q]) Len() int { return len(g.nodes) }

func (g *Group[P, Q]) checkNotDispatching(op string) {
	if g.dispatching {
		panic("graph: behavior list mutated (" + op + ") during dispatch")
	}
}

func (g *Group[P, Q]) insertNode(n *Node[P, Q]) {
	g.nodes = append(g.nodes, n)
	g.dispatching = true
	for _, obs := range g.observers {
		if obs.IsEnabled() {
			obs.OnNodeInserted(g, n)
		}
	}
	g.dispatching = false
}

func (g *Group[P, Q]) removeNode(n *Node[P, Q]) {
	for i, cur := range g.nodes {
		if cur == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	g.dispatching = true
	for _, obs := range g.observers {
		if obs.IsEnabled() {
			obs.OnNodeRemoved(g, n)
		}
	}
	g.dispatching = false
}

// detachAll clears the behavior sequence and every target back-reference.
func (g *Group[P, Q]) detachAll() {
	g.checkNotDispatching("detach")
	for _, obs := range g.observers {
		obs.SetTarget(nil)
	}
	g.observers = nil
}
