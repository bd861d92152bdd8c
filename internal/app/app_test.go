package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/graphwatch/internal/hcl"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestApp_EndToEnd(t *testing.T) {
	t.Parallel()

	scenarioHCL := `
		node "api" {}
		node "db" {}
		group "backends" {}

		behavior "degree" "api_degree" {
			on = "api"
		}

		behavior "logger" "audit" {
			on = "db"

			arguments {
				level = "debug"
			}
		}

		behavior "membership" "backend_count" {
			group = "backends"
		}

		step "insert_edge" "wire" {
			from  = "api"
			to    = "db"
			label = "queries"
		}

		step "insert_member" "adopt" {
			node  = "db"
			group = "backends"
		}

		step "remove_edge" "unwire" {
			from = "api"
			to   = "db"
		}
	`
	path := writeScenario(t, scenarioHCL)

	out := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ScenarioPath: path, LogFormat: "text", LogLevel: "debug"})
	require.NoError(t, err)

	a := NewApp(out, cfg, hcl.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "scenario complete: 2 nodes, 0 edges, 1 groups (3 steps applied)")
}

func TestNewApp_PanicsOnValidationFailure(t *testing.T) {
	t.Parallel()

	scenarioHCL := `
		node "api" {}

		behavior "no_such_kind" "x" {
			on = "api"
		}
	`
	path := writeScenario(t, scenarioHCL)

	out := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ScenarioPath: path, LogFormat: "text", LogLevel: "error"})
	require.NoError(t, err)

	require.Panics(t, func() { NewApp(out, cfg, hcl.NewLoader()) })
}

func TestNewConfig_RequiresScenarioPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.ErrorContains(t, err, "ScenarioPath is a required configuration field")
}
