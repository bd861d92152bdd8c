package behaviors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/graphwatch/internal/graph"
)

type node = graph.Node[string, string]

type edge = graph.Edge[string, string]

type group = graph.Group[string, string]

func TestDegreeCache_TracksDegreesIncrementally(t *testing.T) {
	t.Parallel()

	g := graph.New[string, string]()
	a := g.CreateNode("A")
	b := g.CreateNode("B")
	c := g.CreateNode("C")

	cache := NewDegreeCache[node, edge]("degree")
	b.Attach(cache)

	ab, err := g.CreateEdge(a, b, "a->b")
	require.NoError(t, err)
	_, err = g.CreateEdge(b, c, "b->c")
	require.NoError(t, err)

	require.Equal(t, 1, cache.In())
	require.Equal(t, 1, cache.Out())
	require.Equal(t, b.InDegree(), cache.In())
	require.Equal(t, b.OutDegree(), cache.Out())

	require.NoError(t, g.RemoveEdge(ab))
	require.Equal(t, 0, cache.In())
	require.Equal(t, 1, cache.Out())
}

func TestDegreeCache_StaleWhileDisabled(t *testing.T) {
	t.Parallel()

	g := graph.New[string, string]()
	a := g.CreateNode("A")
	b := g.CreateNode("B")

	cache := NewDegreeCache[node, edge]("degree")
	b.Attach(cache)

	cache.Disable()
	_, err := g.CreateEdge(a, b, "a->b")
	require.NoError(t, err)

	// Missed events are not replayed, so the cache diverges from reality
	// until the next observed mutation.
	require.Equal(t, 0, cache.In())
	require.Equal(t, 1, b.InDegree())
}

func TestDirtyMarker_RaisesAndResets(t *testing.T) {
	t.Parallel()

	g := graph.New[string, string]()
	a := g.CreateNode("A")
	b := g.CreateNode("B")

	marker := NewDirtyMarker[node, edge]("dirty")
	a.Attach(marker)
	require.False(t, marker.Dirty())

	e, err := g.CreateEdge(a, b, "a->b")
	require.NoError(t, err)
	require.True(t, marker.Dirty())

	marker.Reset()
	require.False(t, marker.Dirty())

	require.NoError(t, g.RemoveEdge(e))
	require.True(t, marker.Dirty())
}

func TestRecorder_CapturesDispatchOrder(t *testing.T) {
	t.Parallel()

	g := graph.New[string, string]()
	a := g.CreateNode("A")
	b := g.CreateNode("B")

	rec := NewRecorder[node, edge]("trace")
	b.Attach(rec)

	e, err := g.CreateEdge(a, b, "a->b")
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(e))

	events := rec.Events()
	require.Len(t, events, 3)
	require.Equal(t, InEdgeInserted, events[0].Kind)
	require.Equal(t, InEdgeRemoved, events[1].Kind)
	require.Equal(t, InEdgeRemovedPost, events[2].Kind)

	require.Same(t, a, events[1].Other)
	require.Same(t, e, events[1].Edge)
	require.Nil(t, events[2].Other, "summary events carry no edge detail")
	require.Nil(t, events[2].Edge)
}

func TestMemberCount_TracksPeak(t *testing.T) {
	t.Parallel()

	g := graph.New[string, string]()
	grp := g.CreateGroup("G")
	a := g.CreateNode("A")
	b := g.CreateNode("B")

	mc := NewMemberCount[group, node]("members")
	grp.Attach(mc)

	require.NoError(t, g.GroupNode(grp, a))
	require.NoError(t, g.GroupNode(grp, b))
	require.NoError(t, g.UngroupNode(grp, a))

	require.Equal(t, 1, mc.Count())
	require.Equal(t, 2, mc.Peak())
}

func TestGroupRecorder_CapturesMembershipEvents(t *testing.T) {
	t.Parallel()

	g := graph.New[string, string]()
	grp := g.CreateGroup("G")
	a := g.CreateNode("A")

	rec := NewGroupRecorder[group, node]("trace")
	grp.Attach(rec)

	require.NoError(t, g.GroupNode(grp, a))
	require.NoError(t, g.UngroupNode(grp, a))

	events := rec.Events()
	require.Len(t, events, 2)
	require.Equal(t, NodeInserted, events[0].Kind)
	require.Equal(t, NodeRemoved, events[1].Kind)
	require.Same(t, a, events[1].Node)
}

func TestChangeLog_EmitsStructuredRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := graph.New[string, string]()
	a := g.CreateNode("A")
	b := g.CreateNode("B")

	label := func(n *node) string { return n.Data }
	cl := NewChangeLog[node, edge]("audit", logger, slog.LevelInfo, label)
	b.Attach(cl)

	e, err := g.CreateEdge(a, b, "a->b")
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(e))

	out := buf.String()
	require.Contains(t, out, "in-edge inserted")
	require.Contains(t, out, "in-edge removing")
	require.Contains(t, out, "in-edge removed")
	require.Contains(t, out, "behavior=audit")
	require.Contains(t, out, "source=A")
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "in_edge_inserted", InEdgeInserted.String())
	require.Equal(t, "node_removed", NodeRemoved.String())
	require.Equal(t, "unknown", EventKind(99).String())
}
