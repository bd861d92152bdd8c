// Package scenario executes a loaded scenario model: it builds the declared
// topology, constructs and attaches the declared behaviors, then applies the
// mutation steps in order. Execution is synchronous and single-threaded;
// every behavior callback runs inline on the mutating call, which is the
// framework's dispatch contract.
package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/graphwatch/internal/config"
	"github.com/vk/graphwatch/internal/ctxlog"
	"github.com/vk/graphwatch/internal/registry"
	"github.com/vk/graphwatch/internal/topology"
)

// Runner executes scenario models against fresh graphs.
type Runner struct {
	reg *registry.Registry
	dec config.Decoder
}

// New creates a runner using the given behavior registry and argument
// decoder.
func New(reg *registry.Registry, dec config.Decoder) *Runner {
	return &Runner{reg: reg, dec: dec}
}

// Report summarizes one scenario run. Graph is the final topology, exposed
// for inspection by callers and tests.
type Report struct {
	Graph *topology.Graph

	NodesDeclared     int
	GroupsDeclared    int
	BehaviorsAttached int
	StepsApplied      int
}

// attachment tracks one constructed behavior so toggle/detach steps can
// resolve it by instance name. Exactly one of nodeObs/groupObs is set.
type attachment struct {
	nodeObs  topology.NodeObserver
	groupObs topology.GroupObserver
	node     *topology.Node
	group    *topology.Group
	detached bool
}

// Run builds the graph, attaches behaviors, and applies every step in file
// order. Behaviors implementing io.Closer are closed before Run returns.
func (r *Runner) Run(ctx context.Context, model *config.Scenario) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Runner: starting scenario construction.")

	g := topology.New()
	report := &Report{Graph: g}

	// First pass: declared topology.
	for _, name := range model.Nodes {
		if _, exists := g.NodeByName(name); exists {
			logger.Warn("Duplicate node declaration, reusing existing node.", "node", name)
			continue
		}
		g.AddNode(name)
		report.NodesDeclared++
	}
	for _, name := range model.Groups {
		if _, exists := g.GroupByName(name); exists {
			logger.Warn("Duplicate group declaration, reusing existing group.", "group", name)
			continue
		}
		g.AddGroup(name)
		report.GroupsDeclared++
	}
	logger.Debug("Runner: topology declared.", "nodes", report.NodesDeclared, "groups", report.GroupsDeclared)

	// Second pass: construct and attach behaviors.
	attachments := make(map[string]*attachment, len(model.Behaviors))
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Warn("Failed to close behavior.", "error", err)
			}
		}
	}()

	for _, b := range model.Behaviors {
		att, err := r.attach(ctx, g, b)
		if err != nil {
			return nil, fmt.Errorf("failed to attach behavior '%s': %w", b.Name, err)
		}
		attachments[b.Name] = att
		var closeable any = att.nodeObs
		if att.groupObs != nil {
			closeable = att.groupObs
		}
		if c, ok := closeable.(io.Closer); ok {
			closers = append(closers, c)
		}
		report.BehaviorsAttached++
	}
	logger.Debug("Runner: behaviors attached.", "count", report.BehaviorsAttached)

	// Third pass: apply steps in order.
	for _, step := range model.Steps {
		if err := r.apply(ctx, g, step, attachments); err != nil {
			return nil, fmt.Errorf("step '%s' (%s): %w", step.Name, step.Action, err)
		}
		report.StepsApplied++
	}
	logger.Debug("Runner: scenario finished.", "steps", report.StepsApplied)

	return report, nil
}

// attach resolves the factory, decodes arguments, constructs the behavior,
// applies the configured enabled state, and attaches it to its container.
func (r *Runner) attach(ctx context.Context, g *topology.Graph, b *config.Behavior) (*attachment, error) {
	if b.On != "" {
		factory, ok := r.reg.NodeBehaviors[b.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown node behavior kind '%s'", b.Kind)
		}
		node, ok := g.NodeByName(b.On)
		if !ok {
			return nil, fmt.Errorf("node '%s' not found", b.On)
		}
		input, err := r.decodeInput(factory.NewInput, b)
		if err != nil {
			return nil, err
		}
		obs, err := factory.New(ctx, b.Name, input)
		if err != nil {
			return nil, err
		}
		if !b.Enabled {
			obs.Disable()
		}
		node.Attach(obs)
		return &attachment{nodeObs: obs, node: node}, nil
	}

	factory, ok := r.reg.GroupBehaviors[b.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown group behavior kind '%s'", b.Kind)
	}
	group, ok := g.GroupByName(b.Group)
	if !ok {
		return nil, fmt.Errorf("group '%s' not found", b.Group)
	}
	input, err := r.decodeInput(factory.NewInput, b)
	if err != nil {
		return nil, err
	}
	obs, err := factory.New(ctx, b.Name, input)
	if err != nil {
		return nil, err
	}
	if !b.Enabled {
		obs.Disable()
	}
	group.Attach(obs)
	return &attachment{groupObs: obs, group: group}, nil
}

func (r *Runner) decodeInput(newInput func() any, b *config.Behavior) (any, error) {
	var input any
	if newInput != nil {
		input = newInput()
	}
	if input == nil && len(b.Arguments) > 0 {
		return nil, fmt.Errorf("kind '%s' accepts no arguments", b.Kind)
	}
	if input != nil {
		if err := r.dec.DecodeArgs(input, b.Arguments); err != nil {
			return nil, err
		}
	}
	return input, nil
}

// apply executes one step against the live graph.
func (r *Runner) apply(ctx context.Context, g *topology.Graph, step *config.Step, attachments map[string]*attachment) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Applying step.", "step", step.Name, "action", step.Action)

	switch step.Action {
	case config.ActionInsertEdge:
		_, err := g.InsertEdge(step.From, step.To, step.Label)
		return err

	case config.ActionRemoveEdge:
		edge, ok := g.EdgeBetween(step.From, step.To)
		if !ok {
			return fmt.Errorf("no edge from '%s' to '%s'", step.From, step.To)
		}
		return g.RemoveEdge(edge)

	case config.ActionRemoveNode:
		return g.DropNode(step.Node)

	case config.ActionInsertMember, config.ActionRemoveMember:
		group, ok := g.GroupByName(step.Group)
		if !ok {
			return fmt.Errorf("group '%s' not found", step.Group)
		}
		node, ok := g.NodeByName(step.Node)
		if !ok {
			return fmt.Errorf("node '%s' not found", step.Node)
		}
		if step.Action == config.ActionInsertMember {
			return g.GroupNode(group, node)
		}
		return g.UngroupNode(group, node)

	case config.ActionEnable, config.ActionDisable, config.ActionDetach:
		att, ok := attachments[step.Behavior]
		if !ok {
			return fmt.Errorf("behavior '%s' not found", step.Behavior)
		}
		return applyToggle(step.Action, step.Behavior, att)

	default:
		return fmt.Errorf("unknown action '%s'", step.Action)
	}
}

func applyToggle(action, name string, att *attachment) error {
	switch action {
	case config.ActionEnable:
		if att.nodeObs != nil {
			att.nodeObs.Enable()
		} else {
			att.groupObs.Enable()
		}
	case config.ActionDisable:
		if att.nodeObs != nil {
			att.nodeObs.Disable()
		} else {
			att.groupObs.Disable()
		}
	case config.ActionDetach:
		if att.detached {
			return fmt.Errorf("behavior '%s' is already detached", name)
		}
		if att.nodeObs != nil {
			att.node.Detach(att.nodeObs)
		} else {
			att.group.Detach(att.groupObs)
		}
		att.detached = true
	}
	return nil
}
