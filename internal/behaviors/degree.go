package behaviors

import "github.com/vk/graphwatch/internal/observer"

// DegreeCache maintains cached in/out degree counts for the observed node so
// collaborators can read degrees without walking adjacency. Counts are
// updated from the summary removal callbacks, once the node's adjacency
// already reflects the removal.
//
// The cache only sees mutations dispatched while it is enabled; disabling it
// during mutations leaves the counts stale by design (no replay).
type DegreeCache[N, E any] struct {
	observer.NodeBase[N, E]

	in  int
	out int
}

// NewDegreeCache returns a named, enabled degree cache.
func NewDegreeCache[N, E any](name string) *DegreeCache[N, E] {
	return &DegreeCache[N, E]{NodeBase: observer.NewNodeBase[N, E](name)}
}

// In returns the cached in-degree.
func (d *DegreeCache[N, E]) In() int { return d.in }

// Out returns the cached out-degree.
func (d *DegreeCache[N, E]) Out() int { return d.out }

func (d *DegreeCache[N, E]) OnInEdgeInserted(target, source *N, edge *E) { d.in++ }

func (d *DegreeCache[N, E]) OnInEdgeRemovedPost(target *N) { d.in-- }

func (d *DegreeCache[N, E]) OnOutEdgeInserted(target, dest *N, edge *E) { d.out++ }

func (d *DegreeCache[N, E]) OnOutEdgeRemovedPost(target *N) { d.out-- }
