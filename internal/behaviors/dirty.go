package behaviors

import "github.com/vk/graphwatch/internal/observer"

// DirtyMarker raises a flag on any structural change to the observed node,
// the way a rendering layer invalidates a cached visual. Reset clears the
// flag after the consumer has reacted.
type DirtyMarker[N, E any] struct {
	observer.NodeBase[N, E]

	dirty bool
}

// NewDirtyMarker returns a named, enabled dirty marker.
func NewDirtyMarker[N, E any](name string) *DirtyMarker[N, E] {
	return &DirtyMarker[N, E]{NodeBase: observer.NewNodeBase[N, E](name)}
}

// Dirty reports whether a structural change was observed since the last
// Reset.
func (d *DirtyMarker[N, E]) Dirty() bool { return d.dirty }

// Reset clears the dirty flag.
func (d *DirtyMarker[N, E]) Reset() { d.dirty = false }

func (d *DirtyMarker[N, E]) OnInEdgeInserted(target, source *N, edge *E) { d.dirty = true }

func (d *DirtyMarker[N, E]) OnInEdgeRemoved(target, source *N, edge *E) { d.dirty = true }

func (d *DirtyMarker[N, E]) OnOutEdgeInserted(target, dest *N, edge *E) { d.dirty = true }

func (d *DirtyMarker[N, E]) OnOutEdgeRemoved(target, dest *N, edge *E) { d.dirty = true }
