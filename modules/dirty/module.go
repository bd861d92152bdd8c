// Package dirty provides the 'dirty' behavior: a flag that is raised when
// any edge is inserted at or removed from the observed node, so callers can
// cheaply detect topology changes between inspection points.
package dirty

import (
	"context"

	"github.com/vk/graphwatch/internal/behaviors"
	"github.com/vk/graphwatch/internal/registry"
	"github.com/vk/graphwatch/internal/topology"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the behavior factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterNodeBehavior("dirty", &registry.NodeFactory{
		New: func(ctx context.Context, name string, input any) (topology.NodeObserver, error) {
			return behaviors.NewDirtyMarker[topology.Node, topology.Edge](name), nil
		},
	})
}
