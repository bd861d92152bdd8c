package socketio

import (
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/graphwatch/internal/observer"
	"github.com/vk/graphwatch/internal/topology"
)

// Emitter forwards every topology event on its node as a Socket.IO event
// carrying a small JSON payload. It holds the connection open until Close.
type Emitter struct {
	observer.NodeBase[topology.Node, topology.Edge]

	event string
	io    *socket.Socket
}

func newEmitter(name, event string, io *socket.Socket) *Emitter {
	return &Emitter{
		NodeBase: observer.NewNodeBase[topology.Node, topology.Edge](name),
		event:    event,
		io:       io,
	}
}

// Close disconnects the underlying socket. The scenario runner calls this
// once the run finishes.
func (e *Emitter) Close() error {
	e.io.Disconnect()
	return nil
}

func (e *Emitter) emit(change string, payload map[string]any) {
	payload["change"] = change
	e.io.Emit(e.event, payload)
}

func edgePayload(target, other *topology.Node, edge *topology.Edge) map[string]any {
	p := map[string]any{
		"node":  topology.NodeName(target),
		"other": topology.NodeName(other),
	}
	if edge != nil {
		p["label"] = edge.Data.Label
	}
	return p
}

func (e *Emitter) OnInEdgeInserted(target, source *topology.Node, edge *topology.Edge) {
	e.emit("in_edge_inserted", edgePayload(target, source, edge))
}

func (e *Emitter) OnInEdgeRemoved(target, source *topology.Node, edge *topology.Edge) {
	e.emit("in_edge_removed", edgePayload(target, source, edge))
}

func (e *Emitter) OnInEdgeRemovedPost(target *topology.Node) {
	e.emit("in_edge_removed_post", map[string]any{"node": topology.NodeName(target)})
}

func (e *Emitter) OnOutEdgeInserted(target, dest *topology.Node, edge *topology.Edge) {
	e.emit("out_edge_inserted", edgePayload(target, dest, edge))
}

func (e *Emitter) OnOutEdgeRemoved(target, dest *topology.Node, edge *topology.Edge) {
	e.emit("out_edge_removed", edgePayload(target, dest, edge))
}

func (e *Emitter) OnOutEdgeRemovedPost(target *topology.Node) {
	e.emit("out_edge_removed_post", map[string]any{"node": topology.NodeName(target)})
}
