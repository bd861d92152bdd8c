package behaviors

import "github.com/vk/graphwatch/internal/observer"

// MemberCount maintains a cached member count for the observed group, plus
// the peak count seen, so collaborators can size layouts without walking the
// member list.
type MemberCount[G, N any] struct {
	observer.GroupBase[G, N]

	count int
	peak  int
}

// NewMemberCount returns a named, enabled member counter.
func NewMemberCount[G, N any](name string) *MemberCount[G, N] {
	return &MemberCount[G, N]{GroupBase: observer.NewGroupBase[G, N](name)}
}

// Count returns the cached member count.
func (m *MemberCount[G, N]) Count() int { return m.count }

// Peak returns the highest member count observed.
func (m *MemberCount[G, N]) Peak() int { return m.peak }

func (m *MemberCount[G, N]) OnNodeInserted(target *G, node *N) {
	m.count++
	if m.count > m.peak {
		m.peak = m.count
	}
}

func (m *MemberCount[G, N]) OnNodeRemoved(target *G, node *N) { m.count-- }
