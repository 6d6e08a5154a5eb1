// Package config loads the YAML run configuration for the antcolony CLI.
//
// A file only needs the keys it changes; everything else keeps the values
// from Default. Unknown keys are rejected so typos surface immediately.
//
//	cities:
//	  count: 25
//	  seed: 42
//	colony:
//	  ants: 30
//	  evaporation_rate: 0.3
//	run:
//	  iterations: 500
//	log:
//	  level: debug
//	metrics:
//	  enabled: true
//	  addr: ":9090"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/geom"
	"github.com/katalvlaran/antcolony/logging"
)

// ErrInvalidConfig wraps every validation failure returned by this package.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultIterations bounds a run when neither a flag nor the file sets it.
const DefaultIterations = 200

// configValidate is shared; validator.Validate caches struct metadata.
var configValidate = validator.New()

// Config is the full run configuration.
type Config struct {
	Cities  CitiesConfig  `yaml:"cities"`
	Colony  ColonySection `yaml:"colony"`
	Run     RunConfig     `yaml:"run"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CitiesConfig describes where the cities come from: an explicit list, or
// Count random cities placed on a Width x Height canvas.
type CitiesConfig struct {
	Count  int          `yaml:"count" validate:"gte=0"`
	Width  int          `yaml:"width" validate:"gt=0"`
	Height int          `yaml:"height" validate:"gt=0"`
	Margin int          `yaml:"margin" validate:"gte=0"`
	Seed   int64        `yaml:"seed"`
	Points []geom.Point `yaml:"points" validate:"omitempty,min=2"`
}

// ColonySection mirrors aco.Config with validation tags.
type ColonySection struct {
	Ants            int     `yaml:"ants" validate:"gte=1"`
	Alpha           float64 `yaml:"alpha" validate:"gte=0"`
	Beta            float64 `yaml:"beta" validate:"gte=0"`
	EvaporationRate float64 `yaml:"evaporation_rate" validate:"gte=0,lte=1"`
	DepositConstant float64 `yaml:"deposit_constant" validate:"gt=0"`
	Seed            int64   `yaml:"seed"`
	Workers         int     `yaml:"workers" validate:"gte=0"`
}

// RunConfig bounds a run. Iterations 0 runs until interrupted. Polish
// refines the final best tour with 2-opt before it is reported.
type RunConfig struct {
	Iterations    int           `yaml:"iterations" validate:"gte=0"`
	FrameInterval time.Duration `yaml:"frame_interval" validate:"gt=0"`
	Polish        bool          `yaml:"polish"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// MetricsConfig enables the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the stock configuration: 10 random cities on a 600x600
// canvas, the classic colony parameters, 60 frames per second.
func Default() Config {
	col := aco.DefaultConfig()

	return Config{
		Cities: CitiesConfig{
			Count:  10,
			Width:  geom.DefaultWidth,
			Height: geom.DefaultHeight,
			Margin: geom.DefaultMargin,
		},
		Colony: ColonySection{
			Ants:            col.Ants,
			Alpha:           col.Alpha,
			Beta:            col.Beta,
			EvaporationRate: col.EvaporationRate,
			DepositConstant: col.DepositConstant,
			Seed:            col.Seed,
			Workers:         col.Workers,
		},
		Run: RunConfig{
			Iterations:    DefaultIterations,
			FrameInterval: time.Second / 60,
		},
		Log: LogConfig{Level: "info"},
		Metrics: MetricsConfig{
			Addr: ":9090",
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and the cross-field rules.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Cities.Points) == 0 && c.Cities.Count < 2 {
		return fmt.Errorf("%w: cities.count must be at least 2 when no points are listed (got %d)",
			ErrInvalidConfig, c.Cities.Count)
	}
	if len(c.Cities.Points) == 0 {
		b := geom.DefaultBounds(c.Cities.Width, c.Cities.Height, c.Cities.Margin)
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("%w: metrics.addr is required when metrics are enabled", ErrInvalidConfig)
	}
	if err := c.ColonyConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ColonyConfig converts the colony section to solver parameters.
func (c Config) ColonyConfig() aco.Config {
	return aco.Config{
		Ants:            c.Colony.Ants,
		Alpha:           c.Colony.Alpha,
		Beta:            c.Colony.Beta,
		EvaporationRate: c.Colony.EvaporationRate,
		DepositConstant: c.Colony.DepositConstant,
		Seed:            c.Colony.Seed,
		Workers:         c.Colony.Workers,
	}
}

// LoggingConfig converts the log section to a logging.Config writing to out.
func (c Config) LoggingConfig(out io.Writer) (logging.Config, error) {
	lvl, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return logging.Config{Level: lvl, JSON: c.Log.JSON, Output: out, Service: "antcolony"}, nil
}

// Points returns the configured cities. An explicit list is returned as a
// copy; otherwise Count cities are generated from rng. A nil rng is seeded
// from Cities.Seed, and seed 0 draws a fresh layout from the clock.
func (c Config) Points(rng *rand.Rand) ([]geom.Point, error) {
	if len(c.Cities.Points) > 0 {
		out := make([]geom.Point, len(c.Cities.Points))
		copy(out, c.Cities.Points)
		return out, nil
	}

	if rng == nil {
		seed := c.Cities.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	b := geom.DefaultBounds(c.Cities.Width, c.Cities.Height, c.Cities.Margin)

	return geom.RandomCities(c.Cities.Count, b, rng)
}
