package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/geom"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()

	return NewCollector(reg), reg
}

func TestCollector_OnIteration(t *testing.T) {
	c, _ := newTestCollector(t)

	c.OnIteration(aco.IterationResult{Index: 0, BestEverDistance: 50, IterationDistance: 50, Improved: true})
	c.OnIteration(aco.IterationResult{Index: 1, BestEverDistance: 50, IterationDistance: 55})

	require.Equal(t, 2.0, testutil.ToFloat64(c.Iterations))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Improvements))
	require.Equal(t, 50.0, testutil.ToFloat64(c.BestDistance))
	require.Equal(t, 55.0, testutil.ToFloat64(c.IterationBestDistance))
	require.Equal(t, 1, testutil.CollectAndCount(c.IterationRatio))
}

func TestCollector_WiredToSolver(t *testing.T) {
	c, _ := newTestCollector(t)

	cfg := aco.DefaultConfig()
	cfg.Ants = 5
	cities := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	s, err := aco.New(cities, cfg, aco.WithObserver(c))
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		s.Step()
	}

	require.Equal(t, 7.0, testutil.ToFloat64(c.Iterations))
	require.GreaterOrEqual(t, testutil.ToFloat64(c.Improvements), 1.0)
	require.Equal(t, s.Snapshot().BestEverDistance, testutil.ToFloat64(c.BestDistance))
}

func TestHandler_ServesRegistry(t *testing.T) {
	c, reg := newTestCollector(t)
	c.OnIteration(aco.IterationResult{BestEverDistance: 40, IterationDistance: 44, Improved: true})

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(body)
	require.True(t, strings.Contains(out, "antcolony_solver_best_distance 40"), out)
	require.Contains(t, out, "antcolony_solver_iterations_total 1")
}

func TestNewCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	require.Panics(t, func() { NewCollector(reg) })
}
