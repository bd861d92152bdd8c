// Package degree provides the 'degree' behavior: an incremental in/out
// degree cache maintained from edge notifications, without rescanning the
// node's edge lists.
package degree

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
	r.RegisterNodeBehavior("degree", &registry.NodeFactory{
		New: func(ctx context.Context, name string, input any) (topology.NodeObserver, error) {
			return behaviors.NewDegreeCache[topology.Node, topology.Edge](name), nil
		},
	})
}
