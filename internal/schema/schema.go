// Package schema declares the HCL block structures of a scenario file. These
// structs mirror the wire format exactly; translation into the
// format-agnostic model lives in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// ArgsBlock captures the raw attribute body of an 'arguments' block.
type ArgsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Node declares a vertex of the scenario graph.
type Node struct {
	Name string `hcl:"name,label"`
}

// Group declares a membership container.
type Group struct {
	Name string `hcl:"name,label"`
}

// Behavior declares a behavior instance to construct and attach before the
// steps run. Exactly one of On (a node name) or Group (a group name) names
// the container it attaches to.
type Behavior struct {
	Kind      string     `hcl:"kind,label"`
	Name      string     `hcl:"instance_name,label"`
	On        string     `hcl:"on,optional"`
	Group     string     `hcl:"group,optional"`
	Enabled   *bool      `hcl:"enabled,optional"`
	Arguments *ArgsBlock `hcl:"arguments,block"`
}

// Step declares one topology mutation (or behavior toggle) to apply, in file
// order. Which attributes are required depends on the action label.
type Step struct {
	Action   string `hcl:"action,label"`
	Name     string `hcl:"instance_name,label"`
	From     string `hcl:"from,optional"`
	To       string `hcl:"to,optional"`
	Label    string `hcl:"label,optional"`
	Node     string `hcl:"node,optional"`
	Group    string `hcl:"group,optional"`
	Behavior string `hcl:"behavior,optional"`
}

// Scenario is the top-level structure of a scenario file.
type Scenario struct {
	Nodes     []*Node     `hcl:"node,block"`
	Groups    []*Group    `hcl:"group,block"`
	Behaviors []*Behavior `hcl:"behavior,block"`
	Steps     []*Step     `hcl:"step,block"`
	Body      hcl.Body    `hcl:",remain"`
}
