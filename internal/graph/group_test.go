package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/graphwatch/internal/observer"
)

type tGroup = Group[string, string]

type groupProbe struct {
	observer.GroupBase[tGroup, tNode]

	calls []groupCall
}

type groupCall struct {
	kind   string
	target *tGroup
	node   *tNode
	size   int
}

func newGroupProbe(name string) *groupProbe {
	return &groupProbe{GroupBase: observer.NewGroupBase[tGroup, tNode](name)}
}

func (p *groupProbe) OnNodeInserted(target *tGroup, node *tNode) {
	p.calls = append(p.calls, groupCall{kind: "inserted", target: target, node: node, size: target.Len()})
}

func (p *groupProbe) OnNodeRemoved(target *tGroup, node *tNode) {
	p.calls = append(p.calls, groupCall{kind: "removed", target: target, node: node, size: target.Len()})
}

func (p *groupProbe) kinds() []string {
	out := make([]string, len(p.calls))
	for i, c := range p.calls {
		out[i] = c.kind
	}
	return out
}

func TestGroupNode_NotifiesMembershipChange(t *testing.T) {
	t.Parallel()

	g := New[string, string]()
	grp := g.CreateGroup("G")
	n := g.CreateNode("A")

	p := newGroupProbe("p")
	grp.Attach(p)

	require.NoError(t, g.GroupNode(grp, n))
	require.True(t, grp.Has(n))

	require.Equal(t, []string{"inserted"}, p.kinds())
	require.Same(t, grp, p.calls[0].target)
	require.Same(t, n, p.calls[0].node)
	require.Equal(t, 1, p.calls[0].size, "insertion callback fires after the member is added")

	require.NoError(t, g.UngroupNode(grp, n))
	require.False(t, grp.Has(n))

	require.Equal(t, []string{"inserted", "removed"}, p.kinds())
	require.Equal(t, 0, p.calls[1].size, "removal callback fires after the member is gone")
}

func TestGroupNode_MembershipErrors(t *testing.T) {
	t.Parallel()

	g := New[string, string]()
	grp := g.CreateGroup("G")
	n := g.CreateNode("A")

	require.NoError(t, g.GroupNode(grp, n))
	require.ErrorContains(t, g.GroupNode(grp, n), "already a member")

	require.NoError(t, g.UngroupNode(grp, n))
	require.ErrorContains(t, g.UngroupNode(grp, n), "not a member")
}

func TestGroup_DisabledBehaviorSkipped(t *testing.T) {
	t.Parallel()

	g := New[string, string]()
	grp := g.CreateGroup("G")
	n := g.CreateNode("A")

	p := newGroupProbe("p")
	grp.Attach(p)
	p.Disable()

	require.NoError(t, g.GroupNode(grp, n))
	require.Empty(t, p.calls)

	p.Enable()
	require.NoError(t, g.UngroupNode(grp, n))
	require.Equal(t, []string{"removed"}, p.kinds())
}

func TestGroup_DetachStopsCallbacks(t *testing.T) {
	t.Parallel()

	g := New[string, string]()
	grp := g.CreateGroup("G")
	n := g.CreateNode("A")

	p := newGroupProbe("p")
	grp.Attach(p)
	require.Equal(t, 1, grp.ObserverCount())

	require.True(t, grp.Detach(p))
	require.Nil(t, p.Target())
	require.False(t, grp.Detach(p))

	require.NoError(t, g.GroupNode(grp, n))
	require.Empty(t, p.calls)
}

func TestRemoveNode_DissolvesMemberships(t *testing.T) {
	t.Parallel()

	g := New[string, string]()
	grp := g.CreateGroup("G")
	n := g.CreateNode("A")

	p := newGroupProbe("p")
	grp.Attach(p)

	require.NoError(t, g.GroupNode(grp, n))
	require.NoError(t, g.RemoveNode(n))

	require.Equal(t, []string{"inserted", "removed"}, p.kinds())
	require.Equal(t, 0, grp.Len())
}

func TestRemoveGroup_NotifiesRemainingMembers(t *testing.T) {
	t.Parallel()

	g := New[string, string]()
	grp := g.CreateGroup("G")
	a := g.CreateNode("A")
	b := g.CreateNode("B")

	p := newGroupProbe("p")
	grp.Attach(p)

	require.NoError(t, g.GroupNode(grp, a))
	require.NoError(t, g.GroupNode(grp, b))

	require.NoError(t, g.RemoveGroup(grp))

	// Members survive; each remaining membership is dissolved with a
	// notification before the group's behaviors are released.
	require.Equal(t, []string{"inserted", "inserted", "removed", "removed"}, p.kinds())
	require.Nil(t, p.Target())
	require.Len(t, g.Nodes(), 2)
	require.Empty(t, g.Groups())
}

func TestGroup_MutationDuringDispatchPanics(t *testing.T) {
	t.Parallel()

	g := New[string, string]()
	grp := g.CreateGroup("G")
	n := g.CreateNode("A")

	reentrant := &reentrantGroupProbe{GroupBase: observer.NewGroupBase[tGroup, tNode]("reentrant")}
	grp.Attach(reentrant)

	require.PanicsWithValue(t,
		"graph: behavior list mutated (detach) during dispatch",
		func() { g.GroupNode(grp, n) },
	)
}

type reentrantGroupProbe struct {
	observer.GroupBase[tGroup, tNode]
}

func (r *reentrantGroupProbe) OnNodeInserted(target *tGroup, node *tNode) {
	target.Detach(r)
}
