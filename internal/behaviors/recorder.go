package behaviors

import "github.com/vk/graphwatch/internal/observer"

// EventKind identifies which reaction point fired.
type EventKind int

const (
	InEdgeInserted EventKind = iota
	InEdgeRemoved
	InEdgeRemovedPost
	OutEdgeInserted
	OutEdgeRemoved
	OutEdgeRemovedPost
	NodeInserted
	NodeRemoved
)

func (k EventKind) String() string {
	switch k {
	case InEdgeInserted:
		return "in_edge_inserted"
	case InEdgeRemoved:
		return "in_edge_removed"
	case InEdgeRemovedPost:
		return "in_edge_removed_post"
	case OutEdgeInserted:
		return "out_edge_inserted"
	case OutEdgeRemoved:
		return "out_edge_removed"
	case OutEdgeRemovedPost:
		return "out_edge_removed_post"
	case NodeInserted:
		return "node_inserted"
	case NodeRemoved:
		return "node_removed"
	default:
		return "unknown"
	}
}

// NodeEvent is one recorded edge-topology event. Other is the adjacent node
// and Edge the edge view, both nil for summary events.
type NodeEvent[N, E any] struct {
	Kind   EventKind
	Target *N
	Other  *N
	Edge   *E
}

// Recorder keeps an append-only trace of every event reaching the observed
// node. It backs assertions in tests and the scenario report.
type Recorder[N, E any] struct {
	observer.NodeBase[N, E]

	events []NodeEvent[N, E]
}

// NewRecorder returns a named, enabled recorder.
func NewRecorder[N, E any](name string) *Recorder[N, E] {
	return &Recorder[N, E]{NodeBase: observer.NewNodeBase[N, E](name)}
}

// Events returns a snapshot of the trace in dispatch order.
func (r *Recorder[N, E]) Events() []NodeEvent[N, E] {
	return append([]NodeEvent[N, E]{}, r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder[N, E]) Len() int { return len(r.events) }

func (r *Recorder[N, E]) OnInEdgeInserted(target, source *N, edge *E) {
	r.events = append(r.events, NodeEvent[N, E]{Kind: InEdgeInserted, Target: target, Other: source, Edge: edge})
}

func (r *Recorder[N, E]) OnInEdgeRemoved(target, source *N, edge *E) {
	r.events = append(r.events, NodeEvent[N, E]{Kind: InEdgeRemoved, Target: target, Other: source, Edge: edge})
}

func (r *Recorder[N, E]) OnInEdgeRemovedPost(target *N) {
	r.events = append(r.events, NodeEvent[N, E]{Kind: InEdgeRemovedPost, Target: target})
}

func (r *Recorder[N, E]) OnOutEdgeInserted(target, dest *N, edge *E) {
	r.events = append(r.events, NodeEvent[N, E]{Kind: OutEdgeInserted, Target: target, Other: dest, Edge: edge})
}

func (r *Recorder[N, E]) OnOutEdgeRemoved(target, dest *N, edge *E) {
	r.events = append(r.events, NodeEvent[N, E]{Kind: OutEdgeRemoved, Target: target, Other: dest, Edge: edge})
}

func (r *Recorder[N, E]) OnOutEdgeRemovedPost(target *N) {
	r.events = append(r.events, NodeEvent[N, E]{Kind: OutEdgeRemovedPost, Target: target})
}

// GroupEvent is one recorded membership event.
type GroupEvent[G, N any] struct {
	Kind   EventKind
	Target *G
	Node   *N
}

// GroupRecorder keeps an append-only trace of membership events reaching the
// observed group.
type GroupRecorder[G, N any] struct {
	observer.GroupBase[G, N]

	events []GroupEvent[G, N]
}

// NewGroupRecorder returns a named, enabled membership recorder.
func NewGroupRecorder[G, N any](name string) *GroupRecorder[G, N] {
	return &GroupRecorder[G, N]{GroupBase: observer.NewGroupBase[G, N](name)}
}

// Events returns a snapshot of the trace in dispatch order.
func (r *GroupRecorder[G, N]) Events() []GroupEvent[G, N] {
	return append([]GroupEvent[G, N]{}, r.events...)
}

func (r *GroupRecorder[G, N]) OnNodeInserted(target *G, node *N) {
	r.events = append(r.events, GroupEvent[G, N]{Kind: NodeInserted, Target: target, Node: node})
}

func (r *GroupRecorder[G, N]) OnNodeRemoved(target *G, node *N) {
	r.events = append(r.events, GroupEvent[G, N]{Kind: NodeRemoved, Target: target, Node: node})
}
