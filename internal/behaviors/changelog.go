package behaviors

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/graphwatch/internal/observer"
)

// ChangeLog emits a structured log record for every topology event reaching
// the observed node. The label function renders a node for log output; when
// nil, nodes are rendered by pointer.
type ChangeLog[N, E any] struct {
	observer.NodeBase[N, E]

	logger *slog.Logger
	level  slog.Level
	label  func(*N) string
}

// NewChangeLog returns a named, enabled change logger writing to logger at
// the given level.
func NewChangeLog[N, E any](name string, logger *slog.Logger, level slog.Level, label func(*N) string) *ChangeLog[N, E] {
	if label == nil {
		label = func(n *N) string { return fmt.Sprintf("%p", n) }
	}
	return &ChangeLog[N, E]{
		NodeBase: observer.NewNodeBase[N, E](name),
		logger:   logger.With("behavior", name),
		level:    level,
		label:    label,
	}
}

func (c *ChangeLog[N, E]) log(msg string, args ...any) {
	c.logger.Log(context.Background(), c.level, msg, args...)
}

func (c *ChangeLog[N, E]) OnInEdgeInserted(target, source *N, edge *E) {
	c.log("in-edge inserted", "node", c.label(target), "source", c.label(source))
}

func (c *ChangeLog[N, E]) OnInEdgeRemoved(target, source *N, edge *E) {
	c.log("in-edge removing", "node", c.label(target), "source", c.label(source))
}

func (c *ChangeLog[N, E]) OnInEdgeRemovedPost(target *N) {
	c.log("in-edge removed", "node", c.label(target))
}

func (c *ChangeLog[N, E]) OnOutEdgeInserted(target, dest *N, edge *E) {
	c.log("out-edge inserted", "node", c.label(target), "dest", c.label(dest))
}

func (c *ChangeLog[N, E]) OnOutEdgeRemoved(target, dest *N, edge *E) {
	c.log("out-edge removing", "node", c.label(target), "dest", c.label(dest))
}

func (c *ChangeLog[N, E]) OnOutEdgeRemovedPost(target *N) {
	c.log("out-edge removed", "node", c.label(target))
}

// GroupChangeLog is the membership counterpart of ChangeLog.
type GroupChangeLog[G, N any] struct {
	observer.GroupBase[G, N]

	logger *slog.Logger
	level  slog.Level
	label  func(*N) string
}

// NewGroupChangeLog returns a named, enabled membership logger.
func NewGroupChangeLog[G, N any](name string, logger *slog.Logger, level slog.Level, label func(*N) string) *GroupChangeLog[G, N] {
	if label == nil {
		label = func(n *N) string { return fmt.Sprintf("%p", n) }
	}
	return &GroupChangeLog[G, N]{
		GroupBase: observer.NewGroupBase[G, N](name),
		logger:    logger.With("behavior", name),
		level:     level,
		label:     label,
	}
}

func (c *GroupChangeLog[G, N]) OnNodeInserted(target *G, node *N) {
	c.logger.Log(context.Background(), c.level, "member inserted", "node", c.label(node))
}

func (c *GroupChangeLog[G, N]) OnNodeRemoved(target *G, node *N) {
	c.logger.Log(context.Background(), c.level, "member removed", "node", c.label(node))
}
