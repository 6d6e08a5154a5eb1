package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/config"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "antcolony.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "antcolony dev\n", out)
}

func TestRun_Headless(t *testing.T) {
	out, logs, err := execute(t, "run", "--cities", "8", "--seed", "42", "--iterations", "25", "--ants", "6")
	require.NoError(t, err)

	require.Contains(t, out, "ANT COLONY OPTIMIZATION")
	require.Contains(t, out, "Cities:           8")
	require.Contains(t, out, "RUN RESULTS")
	require.Contains(t, out, "25")
	require.Contains(t, logs, "execution finished")
}

func TestRun_Executions(t *testing.T) {
	out, _, err := execute(t, "run", "--cities", "6", "--seed", "3", "--iterations", "5", "--executions", "3")
	require.NoError(t, err)
	require.Equal(t, 3, bytes.Count([]byte(out), []byte("RUN RESULTS")))
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	path := writeConfig(t, `
cities:
  count: 5
  seed: 9
colony:
  ants: 4
run:
  iterations: 12
log:
  level: warn
`)

	out, logs, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "Ants:             4")
	require.Contains(t, out, "12")
	require.NotContains(t, logs, "execution finished") // info suppressed at warn

	out, _, err = execute(t, "run", "--config", path, "--ants", "9", "--iterations", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Ants:             9")
}

func TestRun_InvalidFlags(t *testing.T) {
	cases := [][]string{
		{"run", "--rho", "1.5"},
		{"run", "--ants", "0"},
		{"run", "--cities", "1"},
		{"run", "--q", "0"},
		{"run", "--iterations", "-1"},
		{"run", "--executions", "0"},
		{"run", "--log-level", "loud"},
		{"run", "--config", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range cases {
		_, _, err := execute(t, args...)
		require.Error(t, err, "%v", args)
	}
}

func TestRun_ColonyFlagsReachBanner(t *testing.T) {
	out, _, err := execute(t, "run",
		"--alpha", "0.5", "--beta", "3", "--rho", "0.1", "--ants", "7", "--workers", "2",
		"--cities", "4", "--seed", "11", "--iterations", "1")
	require.NoError(t, err)

	require.Contains(t, out, "Ants:             7")
	require.Contains(t, out, "Evaporation rate: 0.1")
	require.Contains(t, out, "Alpha (pheromone): 0.5")
	require.Contains(t, out, "Beta (heuristic):  3")
}

func TestRun_LogJSON(t *testing.T) {
	_, logs, err := execute(t, "run", "--cities", "4", "--seed", "2", "--iterations", "2", "--log-json")
	require.NoError(t, err)
	require.Contains(t, logs, `"msg":"execution finished"`)
}

func TestSession_MetricsEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Cities.Seed = 5
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = "127.0.0.1:0"

	sess, err := newSession(cfg, io.Discard)
	require.NoError(t, err)
	defer sess.close()
	require.NotNil(t, sess.collector)

	solver, err := sess.newSolver(1)
	require.NoError(t, err)
	_, err = solver.Run(context.Background(), 4)
	require.NoError(t, err)

	resp, err := http.Get("http://" + sess.addr.String() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "antcolony_solver_iterations_total 4")
}

func TestSession_ExecutionSeeds(t *testing.T) {
	cfg := config.Default()
	cfg.Cities.Seed = 5
	cfg.Colony.Seed = 100

	sess, err := newSession(cfg, io.Discard)
	require.NoError(t, err)

	first, err := sess.newSolver(1)
	require.NoError(t, err)
	third, err := sess.newSolver(3)
	require.NoError(t, err)

	require.Equal(t, int64(100), first.Config().Seed)
	require.Equal(t, int64(102), third.Config().Seed)
	require.Equal(t, first.Cities(), third.Cities())
}

func TestSession_UnseededExecutionsDiffer(t *testing.T) {
	cfg := config.Default()
	cfg.Cities.Seed = 5
	require.Zero(t, cfg.Colony.Seed)

	sess, err := newSession(cfg, io.Discard)
	require.NoError(t, err)
	require.NotZero(t, sess.seed)

	first, err := sess.newSolver(1)
	require.NoError(t, err)
	second, err := sess.newSolver(2)
	require.NoError(t, err)
	require.Equal(t, sess.seed, first.Config().Seed)
	require.Equal(t, sess.seed+1, second.Config().Seed)

	_, err = first.Run(context.Background(), 50)
	require.NoError(t, err)
	_, err = second.Run(context.Background(), 50)
	require.NoError(t, err)
	require.NotEqual(t, first.Pheromone(), second.Pheromone())

	// The logged seed replays execution 1.
	replay := cfg
	replay.Colony.Seed = sess.seed
	again, err := newSession(replay, io.Discard)
	require.NoError(t, err)
	third, err := again.newSolver(1)
	require.NoError(t, err)
	_, err = third.Run(context.Background(), 50)
	require.NoError(t, err)
	require.Equal(t, first.Pheromone(), third.Pheromone())
}

func TestRun_ConfigWithoutIterationsStops(t *testing.T) {
	path := writeConfig(t, `
cities:
  count: 5
  seed: 3
colony:
  ants: 2
`)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"run", "--config", path})
	require.NoError(t, root.ExecuteContext(ctx))
	require.NoError(t, ctx.Err(), "run did not stop on its own")
	require.Contains(t, out.String(), "200")
}

func TestView_SimulationScreen(t *testing.T) {
	prev := newScreen
	t.Cleanup(func() { newScreen = prev })
	newScreen = func() (tcell.Screen, error) {
		s := tcell.NewSimulationScreen("UTF-8")
		s.SetSize(80, 24)
		return s, nil
	}

	path := writeConfig(t, `
cities:
  count: 6
  seed: 4
run:
  iterations: 3
  frame_interval: 1ms
`)
	out, _, err := execute(t, "view", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "Press ESC")
	require.Contains(t, out, "RUN RESULTS")
}

func TestRun_Polish(t *testing.T) {
	out, logs, err := execute(t, "run", "--cities", "12", "--seed", "8", "--iterations", "3", "--ants", "2", "--polish")
	require.NoError(t, err)
	require.Contains(t, out, "After 2-opt")
	require.Contains(t, logs, "best tour polished")
}
