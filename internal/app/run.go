package app

import (
	"context"
	"fmt"

	"github.com/vk/graphwatch/internal/ctxlog"
	"github.com/vk/graphwatch/internal/scenario"
)

// Run executes the loaded scenario and writes a short summary of the
// resulting topology to the application's output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	runner := scenario.New(a.registry, a.decoder)
	report, err := runner.Run(ctx, a.model)
	if err != nil {
		return fmt.Errorf("scenario execution failed: %w", err)
	}

	a.logger.Info("Scenario finished.",
		"nodes_declared", report.NodesDeclared,
		"groups_declared", report.GroupsDeclared,
		"behaviors_attached", report.BehaviorsAttached,
		"steps_applied", report.StepsApplied,
	)

	fmt.Fprintf(a.outW, "scenario complete: %d nodes, %d edges, %d groups (%d steps applied)\n",
		len(report.Graph.Nodes()), len(report.Graph.Edges()), len(report.Graph.Groups()),
		report.StepsApplied,
	)

	a.logger.Debug("App.Run method finished.")
	return nil
}
