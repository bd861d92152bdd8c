package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/graphwatch/internal/config"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_ParsesFullScenario(t *testing.T) {
	t.Parallel()

	scenarioHCL := `
		node "A" {}
		node "B" {}
		group "cluster" {}

		behavior "degree" "deg_a" {
			on = "A"
		}

		behavior "logger" "audit" {
			on      = "B"
			enabled = false

			arguments {
				level = "debug"
			}
		}

		step "insert_edge" "wire" {
			from  = "A"
			to    = "B"
			label = "a->b"
		}

		step "remove_node" "teardown" {
			node = "A"
		}
	`
	path := writeScenario(t, "main.hcl", scenarioHCL)

	model, decoder, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, decoder)

	require.Equal(t, []string{"A", "B"}, model.Nodes)
	require.Equal(t, []string{"cluster"}, model.Groups)
	require.Len(t, model.Behaviors, 2)
	require.Len(t, model.Steps, 2)

	deg := model.Behaviors[0]
	require.Equal(t, "degree", deg.Kind)
	require.Equal(t, "deg_a", deg.Name)
	require.Equal(t, "A", deg.On)
	require.True(t, deg.Enabled, "behaviors default to enabled")
	require.Empty(t, deg.Arguments)

	audit := model.Behaviors[1]
	require.False(t, audit.Enabled)
	require.Contains(t, audit.Arguments, "level")
	require.Equal(t, "debug", audit.Arguments["level"].AsString())

	wantSteps := []*config.Step{
		{Action: config.ActionInsertEdge, Name: "wire", From: "A", To: "B", Label: "a->b"},
		{Action: config.ActionRemoveNode, Name: "teardown", Node: "A"},
	}
	if diff := cmp.Diff(wantSteps, model.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_MergesFilesInSortedOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_second.hcl"), []byte(`node "B" {}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_first.hcl"), []byte(`node "A" {}`), 0600))

	model, _, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, model.Nodes)
}

func TestLoader_SyntaxError(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, "broken.hcl", `node "A" {`)

	_, _, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoader_EmptyDirectory(t *testing.T) {
	t.Parallel()

	model, decoder, err := NewLoader().Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, decoder)
	require.Empty(t, model.Nodes)
	require.Empty(t, model.Steps)
}
