package selector

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"github.com/arloliu/stepreg/errs"
	"github.com/arloliu/stepreg/internal/options"
	"github.com/arloliu/stepreg/regression"
)

// Default selection settings.
const (
	DefaultThresholdIn   = 0.05
	DefaultThresholdOut  = 0.1
	DefaultMaxVars       = 12
	DefaultMinVars       = 4
	DefaultMaxIterations = 10000
)

// Config holds the settings of a Selector.
type Config struct {
	// Initial lists the features included before the first pass.
	Initial []string
	// ThresholdIn is the inclusion threshold used after the one-time reset
	// (and from the start in legacy mode).
	ThresholdIn float64
	// ThresholdOut is the exclusion threshold.
	ThresholdOut float64
	// MaxVars is the upper bound on the number of selected features.
	MaxVars int
	// MinVars is the lower bound on the number of selected features.
	MinVars int
	// MaxIterations caps the number of passes; exceeding it returns errs.ErrNotConverged.
	MaxIterations int
	// Concurrency is the number of forward-step fits run in parallel.
	Concurrency int
	// Fitter fits candidate models.
	Fitter regression.Fitter
	// Logger receives the selection trace.
	Logger *slog.Logger
	// Legacy selects the earlier loop without the forced start threshold
	// and without prefix truncation.
	Legacy bool
	// Observer, if set, is called after every pass and every tightening step.
	Observer func(Event)
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		ThresholdIn:   DefaultThresholdIn,
		ThresholdOut:  DefaultThresholdOut,
		MaxVars:       DefaultMaxVars,
		MinVars:       DefaultMinVars,
		MaxIterations: DefaultMaxIterations,
		Concurrency:   1,
		Fitter:        regression.NewOLS(),
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// validate checks constraints that involve more than one option.
func (c *Config) validate() error {
	if c.MinVars > c.MaxVars {
		return fmt.Errorf("%w: min vars %d exceeds max vars %d", errs.ErrInvalidOption, c.MinVars, c.MaxVars)
	}

	return nil
}

// WithInitial sets the features included before the first pass.
//
// Names must be unique; they are checked against the frame by Select.
func WithInitial(names ...string) Option {
	return options.New(func(cfg *Config) error {
		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			if _, ok := seen[name]; ok {
				return fmt.Errorf("%w: initial feature %q given twice", errs.ErrInvalidOption, name)
			}
			seen[name] = struct{}{}
		}
		cfg.Initial = slices.Clone(names)

		return nil
	})
}

// WithThresholdIn sets the inclusion threshold, rounded to two decimals.
//
// The value must lie in [0.01, 0.10].
func WithThresholdIn(p float64) Option {
	return options.New(func(cfg *Config) error {
		t := roundThreshold(p)
		if t < thresholdFloor || t > thresholdCeiling {
			return fmt.Errorf("%w: threshold in must be within [%.2f, %.2f], got %g",
				errs.ErrInvalidOption, thresholdFloor, thresholdCeiling, p)
		}
		cfg.ThresholdIn = t

		return nil
	})
}

// WithThresholdOut sets the exclusion threshold, which must lie in (0, 1).
func WithThresholdOut(p float64) Option {
	return options.New(func(cfg *Config) error {
		if !(p > 0 && p < 1) {
			return fmt.Errorf("%w: threshold out must be within (0, 1), got %g", errs.ErrInvalidOption, p)
		}
		cfg.ThresholdOut = p

		return nil
	})
}

// WithMaxVars sets the upper bound on the number of selected features.
func WithMaxVars(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: max vars must be positive, got %d", errs.ErrInvalidOption, n)
		}
		cfg.MaxVars = n

		return nil
	})
}

// WithMinVars sets the lower bound on the number of selected features.
func WithMinVars(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: min vars must be non-negative, got %d", errs.ErrInvalidOption, n)
		}
		cfg.MinVars = n

		return nil
	})
}

// WithMaxIterations caps the number of selection passes.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations must be positive, got %d", errs.ErrInvalidOption, n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithFitter replaces the default OLS fitter.
func WithFitter(f regression.Fitter) Option {
	return options.New(func(cfg *Config) error {
		if f == nil {
			return fmt.Errorf("%w: nil fitter", errs.ErrInvalidOption)
		}
		cfg.Fitter = f

		return nil
	})
}

// WithLogger sets the logger that receives the selection trace.
// A nil logger discards the trace.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		cfg.Logger = l
	})
}

// WithVerbose traces the selection to slog.Default() when enabled.
func WithVerbose(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		if enabled {
			cfg.Logger = slog.Default()
		}
	})
}

// WithConcurrency sets how many forward-step candidates are fitted in parallel.
// Zero uses GOMAXPROCS.
func WithConcurrency(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: concurrency must be non-negative, got %d", errs.ErrInvalidOption, n)
		}
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		cfg.Concurrency = n

		return nil
	})
}

// WithLegacy selects the earlier selection loop.
func WithLegacy(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Legacy = enabled
	})
}

// WithObserver registers a callback invoked with a snapshot after every pass
// and every tightening step. It runs on the selecting goroutine.
func WithObserver(fn func(Event)) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Observer = fn
	})
}
