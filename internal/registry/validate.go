package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/graphwatch/internal/config"
	"github.com/vk/graphwatch/internal/ctxlog"
)

// Validate performs a static cross-check between the scenario model and the
// registered factories before anything runs: every behavior kind must
// resolve to a factory of the right flavor, every name reference must
// resolve to a declaration, and every argument must match a tagged field of
// the factory's input struct.
func (r *Registry) Validate(ctx context.Context, model *config.Scenario) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	nodes := make(map[string]struct{}, len(model.Nodes))
	for _, name := range model.Nodes {
		nodes[name] = struct{}{}
	}
	groups := make(map[string]struct{}, len(model.Groups))
	for _, name := range model.Groups {
		groups[name] = struct{}{}
	}

	behaviors := make(map[string]struct{}, len(model.Behaviors))
	for _, b := range model.Behaviors {
		if _, dup := behaviors[b.Name]; dup {
			errs = append(errs, fmt.Sprintf("behavior '%s': duplicate instance name", b.Name))
		}
		behaviors[b.Name] = struct{}{}

		switch {
		case b.On != "" && b.Group != "":
			errs = append(errs, fmt.Sprintf("behavior '%s': 'on' and 'group' are mutually exclusive", b.Name))
		case b.On == "" && b.Group == "":
			errs = append(errs, fmt.Sprintf("behavior '%s': one of 'on' or 'group' is required", b.Name))
		case b.On != "":
			if _, ok := nodes[b.On]; !ok {
				errs = append(errs, fmt.Sprintf("behavior '%s': node '%s' is not declared", b.Name, b.On))
			}
			factory, ok := r.NodeBehaviors[b.Kind]
			if !ok {
				errs = append(errs, fmt.Sprintf("behavior '%s': unknown node behavior kind '%s'", b.Name, b.Kind))
				continue
			}
			errs = append(errs, validateArguments(b, inputOf(factory.NewInput))...)
		default:
			if _, ok := groups[b.Group]; !ok {
				errs = append(errs, fmt.Sprintf("behavior '%s': group '%s' is not declared", b.Name, b.Group))
			}
			factory, ok := r.GroupBehaviors[b.Kind]
			if !ok {
				errs = append(errs, fmt.Sprintf("behavior '%s': unknown group behavior kind '%s'", b.Name, b.Kind))
				continue
			}
			errs = append(errs, validateArguments(b, inputOf(factory.NewInput))...)
		}
	}

	for _, step := range model.Steps {
		errs = append(errs, validateStep(step, nodes, groups, behaviors)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Scenario validation passed.", "behaviors", len(model.Behaviors), "steps", len(model.Steps))
	return nil
}

// inputOf materializes a factory's input struct, or nil for argument-less
// kinds.
func inputOf(newInput func() any) any {
	if newInput == nil {
		return nil
	}
	return newInput()
}

// validateArguments checks that every configured argument name matches a
// `gwatch`-tagged field of the factory's input struct.
func validateArguments(b *config.Behavior, input any) []string {
	if len(b.Arguments) == 0 {
		return nil
	}
	if input == nil {
		return []string{fmt.Sprintf("behavior '%s': kind '%s' accepts no arguments", b.Name, b.Kind)}
	}

	inputType := reflect.TypeOf(input)
	if inputType.Kind() == reflect.Ptr {
		inputType = inputType.Elem()
	}
	tags := make(map[string]struct{}, inputType.NumField())
	for i := 0; i < inputType.NumField(); i++ {
		field := inputType.Field(i)
		if !field.IsExported() {
			continue
		}
		tagName := strings.Split(field.Tag.Get("gwatch"), ",")[0]
		if tagName != "" && tagName != "-" {
			tags[tagName] = struct{}{}
		}
	}

	var errs []string
	for name := range b.Arguments {
		if _, ok := tags[name]; !ok {
			errs = append(errs, fmt.Sprintf("behavior '%s': kind '%s' has no argument '%s'", b.Name, b.Kind, name))
		}
	}
	return errs
}

// validateStep checks a step's action label and name references against the
// declarations.
func validateStep(step *config.Step, nodes, groups, behaviors map[string]struct{}) []string {
	if !config.KnownAction(step.Action) {
		return []string{fmt.Sprintf("step '%s': unknown action '%s'", step.Name, step.Action)}
	}

	var errs []string
	requireNode := func(attr, name string) {
		if name == "" {
			errs = append(errs, fmt.Sprintf("step '%s': '%s' is required for action '%s'", step.Name, attr, step.Action))
		} else if _, ok := nodes[name]; !ok {
			errs = append(errs, fmt.Sprintf("step '%s': node '%s' is not declared", step.Name, name))
		}
	}

	switch step.Action {
	case config.ActionInsertEdge, config.ActionRemoveEdge:
		requireNode("from", step.From)
		requireNode("to", step.To)
	case config.ActionRemoveNode:
		requireNode("node", step.Node)
	case config.ActionInsertMember, config.ActionRemoveMember:
		requireNode("node", step.Node)
		if step.Group == "" {
			errs = append(errs, fmt.Sprintf("step '%s': 'group' is required for action '%s'", step.Name, step.Action))
		} else if _, ok := groups[step.Group]; !ok {
			errs = append(errs, fmt.Sprintf("step '%s': group '%s' is not declared", step.Name, step.Group))
		}
	case config.ActionEnable, config.ActionDisable, config.ActionDetach:
		if step.Behavior == "" {
			errs = append(errs, fmt.Sprintf("step '%s': 'behavior' is required for action '%s'", step.Name, step.Action))
		} else if _, ok := behaviors[step.Behavior]; !ok {
			errs = append(errs, fmt.Sprintf("step '%s': behavior '%s' is not declared", step.Name, step.Behavior))
		}
	}
	return errs
}
