package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/geom"
	"github.com/katalvlaran/antcolony/logging"
	"github.com/katalvlaran/antcolony/metrics"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// cliOptions holds the values of the persistent and colony flags.
type cliOptions struct {
	configPath  string
	logLevel    string
	logJSON     bool
	ants        int
	alpha       float64
	beta        float64
	rho         float64
	q           float64
	cities      int
	seed        int64
	workers     int
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "antcolony",
		Short: "Ant colony optimization for the travelling salesman problem",
		Long: `antcolony places random cities on a canvas and lets a colony of ants
search for a short closed tour through all of them, guided by pheromone
trails and inverse distance.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&opts.logJSON, "log-json", false, "emit logs as JSON")

	pf.IntVar(&opts.ants, "ants", 0, "ants per iteration")
	pf.Float64Var(&opts.alpha, "alpha", 0, "pheromone weight")
	pf.Float64Var(&opts.beta, "beta", 0, "inverse-distance weight")
	pf.Float64Var(&opts.rho, "rho", 0, "evaporation rate in [0,1]")
	pf.Float64Var(&opts.q, "q", 0, "deposit constant (> 0)")
	pf.IntVar(&opts.cities, "cities", 0, "number of random cities")
	pf.Int64Var(&opts.seed, "seed", 0, "seed for city layout and colony (0 = random layout)")
	pf.IntVar(&opts.workers, "workers", 0, "parallel tour builders")
	pf.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(
		newRunCmd(opts),
		newViewCmd(opts),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "antcolony %s\n", version)
			return err
		},
	}
}

// resolve loads the configuration file, if any, and applies the flags the
// user set explicitly on top of it.
func (o *cliOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = o.logJSON
	}
	if flags.Changed("ants") {
		cfg.Colony.Ants = o.ants
	}
	if flags.Changed("alpha") {
		cfg.Colony.Alpha = o.alpha
	}
	if flags.Changed("beta") {
		cfg.Colony.Beta = o.beta
	}
	if flags.Changed("rho") {
		cfg.Colony.EvaporationRate = o.rho
	}
	if flags.Changed("q") {
		cfg.Colony.DepositConstant = o.q
	}
	if flags.Changed("cities") {
		cfg.Cities.Count = o.cities
		cfg.Cities.Points = nil
	}
	if flags.Changed("seed") {
		cfg.Cities.Seed = o.seed
		cfg.Colony.Seed = o.seed
	}
	if flags.Changed("workers") {
		cfg.Colony.Workers = o.workers
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Enabled = o.metricsAddr != ""
		cfg.Metrics.Addr = o.metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// session is the state shared by the run and view commands.
type session struct {
	cfg       config.Config
	log       *logging.Logger
	cities    []geom.Point
	seed      int64 // colony seed of execution 1
	collector *metrics.Collector
	server    *http.Server
	addr      net.Addr
}

// newSession builds the logger, the city layout and the optional metrics
// endpoint. logOut receives log records.
func newSession(cfg config.Config, logOut io.Writer) (*session, error) {
	lc, err := cfg.LoggingConfig(logOut)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: logging.New(lc), seed: cfg.Colony.Seed}

	if s.cities, err = cfg.Points(nil); err != nil {
		return nil, fmt.Errorf("generate cities: %w", err)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
		s.log.Info("colony seed chosen", "seed", s.seed)
	}

	if cfg.Metrics.Enabled {
		if err = s.startMetrics(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *session) startMetrics() error {
	reg := prometheus.NewRegistry()
	s.collector = metrics.NewCollector(reg)

	ln, err := net.Listen("tcp", s.cfg.Metrics.Addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	s.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	s.addr = ln.Addr()

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("metrics server stopped", "error", err)
		}
	}()
	s.log.Info("serving metrics", "addr", s.addr.String())

	return nil
}

// newSolver builds the solver for one execution. Execution e uses the
// session seed plus e-1, so every execution draws its own streams and a
// logged seed replays it.
func (s *session) newSolver(execution int) (*aco.Solver, error) {
	cfg := s.cfg.ColonyConfig()
	cfg.Seed = s.seed + int64(execution-1)

	opts := []aco.Option{aco.WithLogger(s.log.Slog().With("execution", execution))}
	if s.collector != nil {
		opts = append(opts, aco.WithObserver(s.collector))
	}

	return aco.New(s.cities, cfg, opts...)
}

func (s *session) close() {
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Warn("metrics shutdown", "error", err)
	}
}

// logStats records the summary of a finished execution.
func logStats(l *slog.Logger, execution int, st aco.Stats) {
	l.Info("execution finished",
		"execution", execution,
		"run_id", st.RunID,
		"iterations", st.Iterations,
		"best_distance", st.BestDistance,
		"best_tour", st.BestTour,
		"elapsed", st.Elapsed,
	)
}
