// Package registry maps behavior kind names, as written in scenario files,
// to the Go factories that construct them. Modules register their factories
// at startup; the scenario runner resolves kinds through the registry when
// attaching behaviors.
package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/graphwatch/internal/topology"
)

// Module is the interface every compiled-in behavior module implements to
// contribute its factories.
type Module interface {
	Register(r *Registry)
}

// NodeFactory constructs node behaviors of one kind. NewInput returns a new
// arguments struct to decode into, or nil when the kind takes no arguments;
// New builds the behavior carrying the given instance name.
type NodeFactory struct {
	NewInput func() any
	New      func(ctx context.Context, name string, input any) (topology.NodeObserver, error)
}

// GroupFactory constructs group behaviors of one kind.
type GroupFactory struct {
	NewInput func() any
	New      func(ctx context.Context, name string, input any) (topology.GroupObserver, error)
}

// Registry holds the behavior factories for a single application instance.
type Registry struct {
	NodeBehaviors  map[string]*NodeFactory
	GroupBehaviors map[string]*GroupFactory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		NodeBehaviors:  make(map[string]*NodeFactory),
		GroupBehaviors: make(map[string]*GroupFactory),
	}
}

// RegisterNodeBehavior registers a node-behavior factory under a kind name.
// Registering the same kind twice is a programmer error and panics.
func (r *Registry) RegisterNodeBehavior(kind string, f *NodeFactory) {
	if _, exists := r.NodeBehaviors[kind]; exists {
		panic(fmt.Sprintf("node behavior with kind '%s' already registered", kind))
	}
	slog.Debug("Registering node behavior.", "kind", kind)
	r.NodeBehaviors[kind] = f
}

// RegisterGroupBehavior registers a group-behavior factory under a kind
// name. Registering the same kind twice is a programmer error and panics.
func (r *Registry) RegisterGroupBehavior(kind string, f *GroupFactory) {
	if _, exists := r.GroupBehaviors[kind]; exists {
		panic(fmt.Sprintf("group behavior with kind '%s' already registered", kind))
	}
	slog.Debug("Registering group behavior.", "kind", kind)
	r.GroupBehaviors[kind] = f
}
