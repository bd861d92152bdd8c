// Package graph provides the observable topology containers: nodes that own
// their adjacency and dispatch edge events, groups that own their membership
// and dispatch membership events, and the Graph root that owns both.
//
// # Dispatch contract
//
// Every structural mutation notifies the attached, enabled behaviors of the
// affected containers synchronously, in attachment order, before the mutating
// call returns. Disabled behaviors are skipped entirely, not invoked as
// no-ops. Insertions notify after the structure has been updated. Removals
// are two-phase: the detailed callback fires while the edge is still linked,
// the summary callback fires once the adjacency reflects the removal.
//
// Attaching or detaching behaviors from inside a behavior callback is a
// precondition violation; the containers detect it and panic.
//
// # Concurrency
//
// The containers perform no internal locking. Mutation and dispatch are
// call-stack-local and single-threaded; callers that share a graph across
// goroutines must serialize access themselves.
package graph
