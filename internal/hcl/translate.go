package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/graphwatch/internal/config"
	"github.com/vk/graphwatch/internal/schema"
)

// translate converts the HCL-specific scenario schema into the agnostic
// model, appending to whatever earlier files already contributed.
func translate(s *schema.Scenario, filePath string, model *config.Scenario) error {
	for _, n := range s.Nodes {
		model.Nodes = append(model.Nodes, n.Name)
	}
	for _, g := range s.Groups {
		model.Groups = append(model.Groups, g.Name)
	}
	for _, b := range s.Behaviors {
		translated, err := translateBehavior(b)
		if err != nil {
			return fmt.Errorf("in file %s: %w", filePath, err)
		}
		model.Behaviors = append(model.Behaviors, translated)
	}
	for _, st := range s.Steps {
		model.Steps = append(model.Steps, &config.Step{
			Action:   st.Action,
			Name:     st.Name,
			From:     st.From,
			To:       st.To,
			Label:    st.Label,
			Node:     st.Node,
			Group:    st.Group,
			Behavior: st.Behavior,
		})
	}
	return nil
}

// translateBehavior converts a behavior block, evaluating its argument
// expressions. Scenario arguments are static values, so evaluation uses a
// nil context.
func translateBehavior(b *schema.Behavior) (*config.Behavior, error) {
	enabled := true
	if b.Enabled != nil {
		enabled = *b.Enabled
	}

	var body hcl.Body
	if b.Arguments != nil {
		body = b.Arguments.Body
	}
	args, err := extractArguments(body)
	if err != nil {
		return nil, fmt.Errorf("behavior %q %q: %w", b.Kind, b.Name, err)
	}

	return &config.Behavior{
		Kind:      b.Kind,
		Name:      b.Name,
		On:        b.On,
		Group:     b.Group,
		Enabled:   enabled,
		Arguments: args,
	}, nil
}

// extractArguments evaluates every attribute of an arguments body into a
// cty.Value keyed by attribute name.
func extractArguments(body hcl.Body) (map[string]cty.Value, error) {
	args := make(map[string]cty.Value)
	if body == nil {
		return args, nil
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid arguments block: %w", diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid value for argument %q: %w", name, diags)
		}
		args[name] = val
	}
	return args, nil
}
