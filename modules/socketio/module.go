// Package socketio provides the 'socketio' behavior: a bridge that forwards
// topology events on the observed node to a Socket.IO server, one emitted
// event per notification.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/graphwatch/internal/ctxlog"
	"github.com/vk/graphwatch/internal/registry"
	"github.com/vk/graphwatch/internal/topology"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the socketio behavior.
type Input struct {
	URL                string `gwatch:"url"`
	Namespace          string `gwatch:"namespace"`
	EmitEvent          string `gwatch:"emit_event"`
	Timeout            string `gwatch:"timeout"`
	InsecureSkipVerify bool   `gwatch:"insecure_skip_verify"`
}

// connect dials the server and blocks until the connection is established,
// the server rejects it, or the timeout elapses.
func connect(ctx context.Context, input *Input) (*socket.Socket, error) {
	logger := ctxlog.FromContext(ctx).With("behavior", "socketio", "url", input.URL)
	logger.Debug("Connecting to Socket.IO server.")

	timeout, err := time.ParseDuration(input.Timeout)
	if err != nil {
		logger.Warn("Failed to parse timeout, using default 10s", "inputTimeout", input.Timeout, "error", err)
		timeout = 10 * time.Second
	}

	parsedURL, err := url.Parse(input.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if input.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(input.Namespace, opts)

	done := make(chan error, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	io.On(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "namespace", input.Namespace, "sid", io.Id())
		done <- nil
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		done <- errs[0].(error)
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("timed out while waiting for initial connection")
	case err := <-done:
		if err != nil {
			io.Disconnect()
			return nil, err
		}
		return io, nil
	}
}

// Register registers the behavior factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterNodeBehavior("socketio", &registry.NodeFactory{
		NewInput: func() any { return new(Input) },
		New: func(ctx context.Context, name string, input any) (topology.NodeObserver, error) {
			in := input.(*Input)
			if in.EmitEvent == "" {
				in.EmitEvent = "topology_change"
			}
			io, err := connect(ctx, in)
			if err != nil {
				return nil, err
			}
			return newEmitter(name, in.EmitEvent, io), nil
		},
	})
}
