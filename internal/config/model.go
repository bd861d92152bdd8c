package config

import "github.com/zclconf/go-cty/cty"

// Scenario is the unified, format-agnostic representation of everything the
// runner needs: the declared topology, the behaviors to attach, and the
// mutation steps to apply in order.
type Scenario struct {
	Nodes     []string
	Groups    []string
	Behaviors []*Behavior
	Steps     []*Step
}

// Behavior is the format-agnostic representation of a `behavior` block.
// Exactly one of On or Group is set.
type Behavior struct {
	Kind      string
	Name      string
	On        string
	Group     string
	Enabled   bool
	Arguments map[string]cty.Value
}

// Step is the format-agnostic representation of a `step` block.
type Step struct {
	Action   string
	Name     string
	From     string
	To       string
	Label    string
	Node     string
	Group    string
	Behavior string
}

// Step actions understood by the runner.
const (
	ActionInsertEdge   = "insert_edge"
	ActionRemoveEdge   = "remove_edge"
	ActionRemoveNode   = "remove_node"
	ActionInsertMember = "insert_member"
	ActionRemoveMember = "remove_member"
	ActionEnable       = "enable"
	ActionDisable      = "disable"
	ActionDetach       = "detach"
)

// KnownAction reports whether the runner understands the action label.
func KnownAction(action string) bool {
	switch action {
	case ActionInsertEdge, ActionRemoveEdge, ActionRemoveNode,
		ActionInsertMember, ActionRemoveMember,
		ActionEnable, ActionDisable, ActionDetach:
		return true
	}
	return false
}
