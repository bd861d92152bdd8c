// Package observer defines the behavior vocabulary for observable graph
// containers: a reusable base carrying enable/disable state, a diagnostic
// name, and a non-owning back-reference to the observed target, plus the
// reaction interfaces containers dispatch to on structural changes.
//
// Concrete behaviors embed NodeBase or GroupBase and override only the
// reaction points they care about; every reaction point defaults to a no-op.
// A disabled behavior is skipped entirely by the dispatching container, and
// re-enabling it does not replay events missed while it was disabled.
package observer

import "fmt"

// Base is the state shared by every concrete behavior. The zero value is
// enabled, unnamed, and unattached.
//
// The target back-reference is non-owning: the observable container owns the
// behavior, never the other way around. It is set exactly once by the owning
// container when the behavior is attached, and cleared when it is detached.
type Base[T any] struct {
	target   *T
	name     string
	disabled bool
}

// NewBase returns a Base carrying the given diagnostic name. The name is
// immutable afterwards.
func NewBase[T any](name string) Base[T] {
	return Base[T]{name: name}
}

// Name returns the diagnostic name given at construction, or "".
func (b *Base[T]) Name() string { return b.name }

// Enable lets future dispatches reach this behavior again. Events that
// occurred while the behavior was disabled are not replayed. Idempotent.
func (b *Base[T]) Enable() { b.disabled = false }

// Disable stops future dispatches from reaching this behavior. It has no
// effect on mutations already applied. Idempotent.
func (b *Base[T]) Disable() { b.disabled = true }

// IsEnabled reports whether dispatches currently reach this behavior.
// Behaviors are enabled by default.
func (b *Base[T]) IsEnabled() bool { return !b.disabled }

// Target returns the observed container, or nil while detached.
func (b *Base[T]) Target() *T { return b.target }

// SetTarget records the observed container. It is called by the owning
// container at attach time (with the container itself) and at detach time
// (with nil); it is not part of the behavior's own public surface. Attaching
// an already-attached behavior is a caller bug and panics: a behavior belongs
// to at most one container for its whole attached lifetime.
func (b *Base[T]) SetTarget(target *T) {
	if target != nil && b.target != nil {
		panic(fmt.Sprintf("observer: behavior %q is already attached", b.name))
	}
	b.target = target
}
