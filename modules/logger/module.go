// Package logger provides the 'logger' behavior in node and group variants.
// It writes one structured log record per topology event reaching the
// observed container.
package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/graphwatch/internal/behaviors"
	"github.com/vk/graphwatch/internal/ctxlog"
	"github.com/vk/graphwatch/internal/registry"
	"github.com/vk/graphwatch/internal/topology"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the logger behavior.
type Input struct {
	Level string `gwatch:"level"`
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid level '%s': must be 'debug', 'info', 'warn', or 'error'", s)
	}
}

// Register registers the node and group variants with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterNodeBehavior("logger", &registry.NodeFactory{
		NewInput: func() any { return new(Input) },
		New: func(ctx context.Context, name string, input any) (topology.NodeObserver, error) {
			level, err := parseLevel(input.(*Input).Level)
			if err != nil {
				return nil, err
			}
			log := ctxlog.FromContext(ctx)
			return behaviors.NewChangeLog[topology.Node, topology.Edge](name, log, level, topology.NodeName), nil
		},
	})

	r.RegisterGroupBehavior("logger", &registry.GroupFactory{
		NewInput: func() any { return new(Input) },
		New: func(ctx context.Context, name string, input any) (topology.GroupObserver, error) {
			level, err := parseLevel(input.(*Input).Level)
			if err != nil {
				return nil, err
			}
			log := ctxlog.FromContext(ctx)
			return behaviors.NewGroupChangeLog[topology.Group, topology.Node](name, log, level, topology.NodeName), nil
		},
	})
}
