// Package membership provides the 'membership' group behavior: a running
// member count with a high-water mark, maintained from group notifications.
package membership

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
	r.RegisterGroupBehavior("membership", &registry.GroupFactory{
		New: func(ctx context.Context, name string, input any) (topology.GroupObserver, error) {
			return behaviors.NewMemberCount[topology.Group, topology.Node](name), nil
		},
	})
}
